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
	"fmt"
	"time"

	"github.com/0xsoniclabs/bootmc/logger"
	"github.com/0xsoniclabs/bootmc/utils"
)

// ExperimentRunner sweeps a grid of configurations, runs the Monte Carlo
// engine per cell, and aggregates the decision tables into a report.
type ExperimentRunner struct {
	Log logger.Logger
}

// NewExperimentRunner creates an ExperimentRunner.
func NewExperimentRunner(log logger.Logger) *ExperimentRunner {
	return &ExperimentRunner{Log: log}
}

// Sweep validates all configurations up front and runs them in input order.
// The report preserves the insertion order of the grid. A configuration or
// solver error aborts the whole sweep naming the offending cell; degenerate
// samples only exclude their own replication and surface as an exclusion
// count in the report.
func (r *ExperimentRunner) Sweep(cfgs []*utils.Config) (*Report, error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("sweep requires at least one configuration")
	}
	// fail fast before any replication runs
	for _, cfg := range cfgs {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("configuration %s: %v", cfg.Key(), err)
		}
	}

	var report *Report
	for _, cfg := range cfgs {
		engine, err := NewEngineFromConfig(cfg, r.Log)
		if err != nil {
			return nil, fmt.Errorf("configuration %s: %v", cfg.Key(), err)
		}
		if report == nil {
			names := make([]string, len(engine.Rules))
			for j, rule := range engine.Rules {
				names[j] = rule.Name
			}
			report = NewReport(names)
		}

		start := time.Now()
		table, err := engine.Run(cfg)
		if err != nil {
			return nil, fmt.Errorf("configuration %s: %v", cfg.Key(), err)
		}
		rates, excluded := table.RejectionRates()
		report.Add(ReportRow{
			Design:       cfg.Design,
			Distribution: cfg.Distribution.String(),
			SampleSize:   cfg.SampleSize,
			Significance: cfg.Significance,
			Rates:        rates,
			Excluded:     excluded,
		})

		if r.Log != nil {
			h, m, s := logger.ParseTime(time.Since(start))
			r.Log.Noticef("cell %s finished in %vh %vm %vs; rates %v, %d excluded", cfg.Key(), h, m, s, rates, excluded)
		}
	}
	return report, nil
}
