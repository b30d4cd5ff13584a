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

// Package empirical provides order-statistic helpers for empirical
// distributions collected during a simulation run.
package empirical

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Quantile computes the empirical p-quantile of values as the ceil(p*n)-th
// order statistic. No interpolation is performed between order statistics;
// for p=0.95 and n=100 the result is exactly the 95th smallest value. The
// input slice is not modified.
func Quantile(values []float64, p float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, fmt.Errorf("empirical quantile of an empty sequence")
	}
	if p <= 0.0 || p > 1.0 {
		return 0, fmt.Errorf("quantile probability (%v) not in (0,1]", p)
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	k := int(math.Ceil(p * float64(n)))
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	return sorted[k-1], nil
}

// Mean computes the arithmetic mean of values.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// Variance computes the unbiased sample variance of values with the (n-1)
// degrees-of-freedom correction.
func Variance(values []float64) float64 {
	return stat.Variance(values, nil)
}

// StdDev computes the unbiased sample standard deviation of values.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}
