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

// Package simulation implements the Monte Carlo experimentation engine: an
// outer replication loop drawing synthetic samples from a data-generating
// process, per-sample test statistics, a nested bootstrap loop re-centered at
// the empirical estimate, and aggregation of decisions into empirical
// rejection rates across a grid of configurations.
package simulation

import (
	"math/rand"

	"github.com/0xsoniclabs/bootmc/statistics/distribution"
)

// Sample is one synthetic data set drawn for a single Monte Carlo
// replication. Y holds the response observations; X, when non-nil, holds the
// paired regressor column of the same length. A sample is consumed, never
// mutated, by downstream stages.
type Sample struct {
	X []float64
	Y []float64
}

// Len returns the number of observations.
func (s Sample) Len() int {
	return len(s.Y)
}

// Paired reports whether the sample carries a regressor column.
func (s Sample) Paired() bool {
	return s.X != nil
}

// Generator produces one sample of size n from a data-generating process.
// Implementations must draw exclusively from the passed random generator so
// that a replication is fully determined by the generator's seed.
type Generator interface {
	Generate(rg *rand.Rand, n int) (Sample, error)
}

// MeanDesign draws i.i.d. observations from a single distribution for the
// one-sample mean test.
type MeanDesign struct {
	Dist distribution.Distribution
}

// Generate draws n i.i.d. observations.
func (d MeanDesign) Generate(rg *rand.Rand, n int) (Sample, error) {
	if err := d.Dist.Check(); err != nil {
		return Sample{}, err
	}
	return Sample{Y: d.Dist.Draw(rg, n)}, nil
}

// RegressionDesign draws a regressor column and an independent error column
// and combines them through a fixed linear model with known coefficients.
// A heavy-tailed regressor (e.g. Pareto with shape 1.5) is admissible; its
// infinite variance is expected domain behavior, not an error.
type RegressionDesign struct {
	Regressor distribution.Distribution
	Errors    distribution.Distribution
	Intercept float64
	Slope     float64
}

// Generate draws the regressor and error columns and forms the response.
// The regressor is drawn first so that the X and Y streams of a replication
// are reproducible as a unit.
func (d RegressionDesign) Generate(rg *rand.Rand, n int) (Sample, error) {
	if err := d.Regressor.Check(); err != nil {
		return Sample{}, err
	}
	if err := d.Errors.Check(); err != nil {
		return Sample{}, err
	}
	x := d.Regressor.Draw(rg, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = d.Intercept + d.Slope*x[i] + d.Errors.Sample(rg)
	}
	return Sample{X: x, Y: y}, nil
}
