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

package empirical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestQuantile_OrderStatistic(t *testing.T) {
	// 1..100 uniformly spaced; the 0.95 quantile is the 95th order statistic
	values := make([]float64, 100)
	for i := 0; i < 100; i++ {
		values[99-i] = float64(i + 1) // reversed order; Quantile must sort
	}
	q, err := Quantile(values, 0.95)
	require.NoError(t, err)
	assert.Equal(t, 95.0, q)

	q, err = Quantile(values, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, q)

	q, err = Quantile(values, 0.001)
	require.NoError(t, err)
	assert.Equal(t, 1.0, q)
}

func TestQuantile_Errors(t *testing.T) {
	_, err := Quantile([]float64{}, 0.5)
	assert.Error(t, err)

	_, err = Quantile([]float64{1.0}, 0.0)
	assert.Error(t, err)

	_, err = Quantile([]float64{1.0}, 1.5)
	assert.Error(t, err)
}

func TestQuantile_DoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Quantile(values, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestQuantile_ReturnsElementOfInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), 1, 500).Draw(t, "values")
		p := rapid.Float64Range(0.01, 1.0).Draw(t, "p")
		q, err := Quantile(values, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found := false
		for _, v := range values {
			if v == q {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("quantile %v is not an element of the input", q)
		}
	})
}

func TestMeanVariance(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, Mean(values), 1e-12)
	// unbiased sample variance of the sequence is 32/7
	assert.InDelta(t, 32.0/7.0, Variance(values), 1e-12)
	assert.InDelta(t, 2.138089935, StdDev(values), 1e-6)
}
