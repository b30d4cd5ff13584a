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
	"os"

	"github.com/0xsoniclabs/bootmc/statistics/distribution"
	"gopkg.in/yaml.v3"
)

// DistSpec names a distribution family and its free parameter in a sweep
// file.
type DistSpec struct {
	Family string  `yaml:"family"`
	Param  float64 `yaml:"param"`
}

// Parse converts the named family and parameter into a distribution.
func (d DistSpec) Parse() (distribution.Distribution, error) {
	return ParseDistribution(d.Family, d.Param)
}

// SweepFile describes a sweep grid: shared experiment parameters and the
// axes swept over. The grid is expanded in file order, distributions outer,
// sample sizes inner, so the report reads as blocks per distribution.
type SweepFile struct {
	Design         string     `yaml:"design"`
	NullValue      float64    `yaml:"null-value"`
	Significance   float64    `yaml:"significance"`
	MonteCarloReps int        `yaml:"monte-carlo-reps"`
	BootstrapReps  int        `yaml:"bootstrap-reps"`
	Seed           int64      `yaml:"seed"`
	Workers        int        `yaml:"workers"`
	Resampling     string     `yaml:"resampling"`
	BlockLen       int        `yaml:"block-length"`
	SampleSizes    []int      `yaml:"sample-sizes"`
	Distributions  []DistSpec `yaml:"distributions"`
	ErrorDist      DistSpec   `yaml:"error-distribution"`
	Intercept      float64    `yaml:"intercept"`
	Slope          float64    `yaml:"slope"`
}

// ReadSweep reads and parses a sweep file.
func ReadSweep(path string) (*SweepFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed reading sweep file %s; %v", path, err)
	}
	sweep := &SweepFile{
		Design:       MeanDesignName,
		Significance: 0.05,
		Resampling:   IIDResamplingName,
	}
	if err := yaml.Unmarshal(data, sweep); err != nil {
		return nil, fmt.Errorf("failed parsing sweep file %s; %v", path, err)
	}
	return sweep, nil
}

// Configs expands the sweep grid into one validated configuration per cell,
// preserving the file order of the axes.
func (s *SweepFile) Configs() ([]*Config, error) {
	if len(s.SampleSizes) == 0 {
		return nil, fmt.Errorf("sweep file lists no sample sizes")
	}
	if len(s.Distributions) == 0 {
		return nil, fmt.Errorf("sweep file lists no distributions")
	}
	errDist := distribution.NewStandardNormal()
	if s.ErrorDist.Family != "" {
		var err error
		errDist, err = s.ErrorDist.Parse()
		if err != nil {
			return nil, err
		}
	}

	cfgs := make([]*Config, 0, len(s.Distributions)*len(s.SampleSizes))
	for _, spec := range s.Distributions {
		dist, err := spec.Parse()
		if err != nil {
			return nil, err
		}
		for _, n := range s.SampleSizes {
			cfg := &Config{
				Design:            s.Design,
				SampleSize:        n,
				NullValue:         s.NullValue,
				Significance:      s.Significance,
				MonteCarloReps:    s.MonteCarloReps,
				BootstrapReps:     s.BootstrapReps,
				RandomSeed:        s.Seed,
				Workers:           s.Workers,
				Distribution:      dist,
				ErrorDistribution: errDist,
				Intercept:         s.Intercept,
				Slope:             s.Slope,
				Resampling:        s.Resampling,
				BlockLen:          s.BlockLen,
			}
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("sweep cell %s: %v", cfg.Key(), err)
			}
			cfgs = append(cfgs, cfg)
		}
	}
	return cfgs, nil
}
