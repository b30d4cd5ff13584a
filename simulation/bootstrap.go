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
	"math"
	"math/rand"

	"github.com/0xsoniclabs/bootmc/statistics/empirical"
)

// BootstrapDistribution holds the bootstrap statistic values of one Monte
// Carlo replication. It is used only to derive a critical value or a
// dispersion measure and is discarded afterwards.
type BootstrapDistribution []float64

// BootstrapEngine runs the nested resampling loop of a single Monte Carlo
// replication.
type BootstrapEngine struct {
	Resampler Resampler
	Reps      int
}

// Run draws Reps bootstrap resamples and computes the statistic on each one.
// The statistic is centered at the ORIGINAL sample's point estimate (the
// anchor), never at the hypothesized null value. Centering at the null would
// silently produce a test without power under the alternative.
func (e BootstrapEngine) Run(rg *rand.Rand, s Sample, stat Statistic) (BootstrapDistribution, error) {
	if e.Reps < 1 {
		return nil, fmt.Errorf("bootstrap requires at least one replication; got %d", e.Reps)
	}
	orig, err := stat.Compute(s, 0.0)
	if err != nil {
		return nil, err
	}
	anchor := orig.Estimate

	dist := make(BootstrapDistribution, e.Reps)
	for b := 0; b < e.Reps; b++ {
		rs := e.Resampler.Resample(rg, s)
		r, err := stat.Compute(rs, anchor)
		if err != nil {
			return nil, fmt.Errorf("bootstrap replication %d: %w", b, err)
		}
		dist[b] = r.TStat
	}
	return dist, nil
}

// CriticalValue returns the empirical (1-alpha) quantile of the absolute
// bootstrap statistic values, taken as the ceil((1-alpha)*B)-th order
// statistic without interpolation.
func (e BootstrapEngine) CriticalValue(dist BootstrapDistribution, alpha float64) (float64, error) {
	if alpha <= 0.0 || alpha >= 1.0 {
		return 0, fmt.Errorf("significance level (%v) not in (0,1)", alpha)
	}
	abs := make([]float64, len(dist))
	for i, t := range dist {
		abs[i] = math.Abs(t)
	}
	return empirical.Quantile(abs, 1.0-alpha)
}

// StandardError returns the bootstrap standard error, the sample standard
// deviation of the bootstrap statistic values.
func (e BootstrapEngine) StandardError(dist BootstrapDistribution) (float64, error) {
	if len(dist) < 2 {
		return 0, fmt.Errorf("bootstrap standard error requires at least two replications; got %d", len(dist))
	}
	return empirical.StdDev(dist), nil
}
