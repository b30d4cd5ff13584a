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

package simulation

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/0xsoniclabs/bootmc/logger"
	"github.com/0xsoniclabs/bootmc/utils"
	"golang.org/x/sync/errgroup"
)

// DecisionRow holds the decisions of one Monte Carlo replication, one
// boolean per decision rule. A degenerate replication is marked excluded and
// carries no decisions.
type DecisionRow struct {
	Rejected []bool
	Excluded bool
}

// DecisionTable collects the rows of all replications of one configuration
// in replication order.
type DecisionTable struct {
	RuleNames []string
	Rows      []DecisionRow
}

// RejectionRates reduces the table to column-wise empirical rejection rates
// over the included rows, and returns the number of excluded replications.
// Excluded rows never enter the denominator.
func (t DecisionTable) RejectionRates() ([]float64, int) {
	rates := make([]float64, len(t.RuleNames))
	included := 0
	excluded := 0
	for _, row := range t.Rows {
		if row.Excluded {
			excluded++
			continue
		}
		included++
		for j, r := range row.Rejected {
			if r {
				rates[j]++
			}
		}
	}
	if included > 0 {
		for j := range rates {
			rates[j] /= float64(included)
		}
	}
	return rates, excluded
}

// MonteCarloEngine runs the outer replication loop for one configuration.
// Replications are independent; each one owns a random generator seeded with
// the base seed plus its replication index, so parallel and sequential
// execution produce the identical decision table.
type MonteCarloEngine struct {
	Generator Generator
	Statistic Statistic
	Rules     []DecisionRule
	Log       logger.Logger
}

// NewEngineFromConfig assembles the engine for one configuration cell.
func NewEngineFromConfig(cfg *utils.Config, log logger.Logger) (*MonteCarloEngine, error) {
	var gen Generator
	var stat Statistic
	switch cfg.Design {
	case utils.MeanDesignName:
		gen = MeanDesign{Dist: cfg.Distribution}
		stat = MeanT{}
	case utils.RegressionDesignName:
		gen = RegressionDesign{
			Regressor: cfg.Distribution,
			Errors:    cfg.ErrorDistribution,
			Intercept: cfg.Intercept,
			Slope:     cfg.Slope,
		}
		stat = OLSCoefT{}
	default:
		return nil, fmt.Errorf("unknown experiment design %q", cfg.Design)
	}
	if cfg.SampleSize < stat.MinSampleSize() {
		return nil, fmt.Errorf("sample size (%d) below the minimum (%d) of statistic %s", cfg.SampleSize, stat.MinSampleSize(), stat.Name())
	}

	scheme := IIDScheme
	if cfg.Resampling == utils.BlockResamplingName {
		scheme = BlockScheme
	}
	resampler, err := NewResampler(scheme, cfg.BlockLen)
	if err != nil {
		return nil, err
	}
	bootstrap := BootstrapEngine{Resampler: resampler, Reps: cfg.BootstrapReps}

	return &MonteCarloEngine{
		Generator: gen,
		Statistic: stat,
		Rules: []DecisionRule{
			ExactRule(cfg.Significance),
			AsymptoticRule(cfg.Significance),
			BootstrapRule(cfg.Significance, bootstrap),
		},
		Log: log,
	}, nil
}

// Run executes the Monte Carlo replications of one configuration and
// collects one decision row per replication. A replication that hits a
// degenerate sample is excluded; any other error aborts the run.
func (e *MonteCarloEngine) Run(cfg *utils.Config) (DecisionTable, error) {
	if err := cfg.Validate(); err != nil {
		return DecisionTable{}, err
	}

	names := make([]string, len(e.Rules))
	for j, rule := range e.Rules {
		names[j] = rule.Name
	}
	table := DecisionTable{
		RuleNames: names,
		Rows:      make([]DecisionRow, cfg.MonteCarloReps),
	}

	if cfg.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(cfg.Workers)
		for i := 0; i < cfg.MonteCarloReps; i++ {
			i := i
			g.Go(func() error {
				row, err := e.replicate(cfg, i)
				if err != nil {
					return err
				}
				table.Rows[i] = row
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return DecisionTable{}, err
		}
	} else {
		for i := 0; i < cfg.MonteCarloReps; i++ {
			row, err := e.replicate(cfg, i)
			if err != nil {
				return DecisionTable{}, err
			}
			table.Rows[i] = row
		}
	}
	return table, nil
}

// replicate runs a single Monte Carlo replication including its nested
// bootstrap loop. The replication owns a private random sub-stream.
func (e *MonteCarloEngine) replicate(cfg *utils.Config, i int) (DecisionRow, error) {
	rg := rand.New(rand.NewSource(cfg.RandomSeed + int64(i)))

	s, err := e.Generator.Generate(rg, cfg.SampleSize)
	if err != nil {
		return DecisionRow{}, fmt.Errorf("replication %d: %v", i, err)
	}

	res, err := e.Statistic.Compute(s, cfg.NullValue)
	if errors.Is(err, ErrDegenerateSample) {
		if e.Log != nil {
			e.Log.Debugf("replication %d excluded: %v", i, err)
		}
		return DecisionRow{Excluded: true}, nil
	}
	if err != nil {
		return DecisionRow{}, fmt.Errorf("replication %d: %v", i, err)
	}

	rejected := make([]bool, len(e.Rules))
	for j, rule := range e.Rules {
		critical, err := rule.Critical(rg, s, e.Statistic)
		if errors.Is(err, ErrDegenerateSample) {
			if e.Log != nil {
				e.Log.Debugf("replication %d excluded by rule %s: %v", i, rule.Name, err)
			}
			return DecisionRow{Excluded: true}, nil
		}
		if err != nil {
			return DecisionRow{}, fmt.Errorf("replication %d, rule %s: %v", i, rule.Name, err)
		}
		rejected[j] = Rejects(res.TStat, critical)
	}
	return DecisionRow{Rejected: rejected}, nil
}
