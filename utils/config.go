// Copyright 2025 Sonic Labs
// This file is part of Bootmc, a Monte Carlo testing toolkit
//
// Bootmc is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bootmc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Bootmc. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"fmt"
	"math"

	"github.com/0xsoniclabs/bootmc/statistics/distribution"
	"github.com/urfave/cli/v2"
)

// Design names of the built-in experiment designs.
const (
	MeanDesignName       = "mean"
	RegressionDesignName = "regression"
)

// Resampling scheme names accepted by the configuration.
const (
	IIDResamplingName   = "iid"
	BlockResamplingName = "block"
)

// Config holds one experiment cell of the sweep grid. A Config is created
// once per cell and is read-only afterwards.
type Config struct {
	LogLevel string // level of the logging

	Design         string  // experiment design ("mean" or "regression")
	SampleSize     int     // observations per replication
	NullValue      float64 // hypothesized parameter value under the null
	Significance   float64 // nominal level of the test, in (0,1)
	MonteCarloReps int     // outer replications
	BootstrapReps  int     // inner bootstrap replications
	RandomSeed     int64   // base seed; replication i uses RandomSeed+i
	Workers        int     // parallel replication workers; <=1 is sequential

	Distribution      distribution.Distribution // sampling distribution of the design
	ErrorDistribution distribution.Distribution // error distribution (regression design)
	Intercept         float64                   // true intercept (regression design)
	Slope             float64                   // true slope (regression design)

	Resampling string // bootstrap resampling scheme
	BlockLen   int    // block length (block resampling)
}

// NewConfig reads a configuration for one experiment cell from the
// command-line context.
func NewConfig(ctx *cli.Context) (*Config, error) {
	dist, err := ParseDistribution(ctx.String(DistributionFlag.Name), ctx.Float64(DistParamFlag.Name))
	if err != nil {
		return nil, err
	}
	errDist, err := ParseDistribution(ctx.String(ErrorDistributionFlag.Name), ctx.Float64(ErrorDistParamFlag.Name))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		LogLevel:          ctx.String(LogLevelFlagName),
		Design:            ctx.String(DesignFlag.Name),
		SampleSize:        ctx.Int(SampleSizeFlag.Name),
		NullValue:         ctx.Float64(NullValueFlag.Name),
		Significance:      ctx.Float64(SignificanceFlag.Name),
		MonteCarloReps:    ctx.Int(MonteCarloRepsFlag.Name),
		BootstrapReps:     ctx.Int(BootstrapRepsFlag.Name),
		RandomSeed:        ctx.Int64(RandomSeedFlag.Name),
		Workers:           ctx.Int(WorkersFlag.Name),
		Distribution:      dist,
		ErrorDistribution: errDist,
		Intercept:         ctx.Float64(InterceptFlag.Name),
		Slope:             ctx.Float64(SlopeFlag.Name),
		Resampling:        ctx.String(ResamplingFlag.Name),
		BlockLen:          ctx.Int(BlockLenFlag.Name),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants. It is called before any
// replication runs so that an invalid cell fails fast without producing a
// partial report.
func (cfg *Config) Validate() error {
	if cfg.Design != MeanDesignName && cfg.Design != RegressionDesignName {
		return fmt.Errorf("unknown experiment design %q", cfg.Design)
	}
	if cfg.SampleSize < 2 {
		return fmt.Errorf("sample size (%d) must be at least 2", cfg.SampleSize)
	}
	if cfg.Design == RegressionDesignName && cfg.SampleSize < 3 {
		return fmt.Errorf("sample size (%d) must be at least 3 for the regression design", cfg.SampleSize)
	}
	if !(cfg.Significance > 0.0 && cfg.Significance < 1.0) {
		return fmt.Errorf("significance level (%v) must lie in (0,1)", cfg.Significance)
	}
	if cfg.MonteCarloReps < 1 {
		return fmt.Errorf("number of Monte Carlo replications (%d) must be positive", cfg.MonteCarloReps)
	}
	if cfg.BootstrapReps < 1 {
		return fmt.Errorf("number of bootstrap replications (%d) must be positive", cfg.BootstrapReps)
	}
	// the requested quantile must be estimable from the bootstrap distribution
	minReps := int(math.Ceil(1.0 / cfg.Significance))
	if cfg.BootstrapReps < minReps {
		return fmt.Errorf("bootstrap replications (%d) cannot resolve the %v quantile; need at least %d", cfg.BootstrapReps, 1.0-cfg.Significance, minReps)
	}
	if err := cfg.Distribution.Check(); err != nil {
		return err
	}
	if cfg.Design == RegressionDesignName {
		if err := cfg.ErrorDistribution.Check(); err != nil {
			return err
		}
	}
	switch cfg.Resampling {
	case IIDResamplingName:
	case BlockResamplingName:
		if cfg.BlockLen < 1 {
			return fmt.Errorf("block resampling requires a positive block length; got %d", cfg.BlockLen)
		}
	default:
		return fmt.Errorf("unknown resampling scheme %q", cfg.Resampling)
	}
	return nil
}

// Key returns the distinguishing parameters of the cell for report rows and
// error messages.
func (cfg *Config) Key() string {
	return fmt.Sprintf("%s/%s/n=%d", cfg.Design, cfg.Distribution, cfg.SampleSize)
}

// ParseDistribution maps a family name and its single free parameter to a
// distribution. This is the boundary where string-valued user input becomes
// the closed family enum of the distribution package.
func ParseDistribution(family string, param float64) (distribution.Distribution, error) {
	switch family {
	case "normal":
		return distribution.NewStandardNormal(), nil
	case "student-t":
		return distribution.NewStudentT(param), nil
	case "chi-square":
		return distribution.NewChiSquare(param), nil
	case "centered-chi-square":
		return distribution.NewCenteredChiSquare(param), nil
	case "pareto":
		return distribution.NewPareto(param), nil
	case "cauchy":
		return distribution.NewCauchy(), nil
	case "uniform":
		return distribution.NewUniform(0.0, param), nil
	default:
		return distribution.Distribution{}, fmt.Errorf("unknown distribution family %q", family)
	}
}
