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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIIDResampler_PreservesLength(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	s := Sample{Y: []float64{1, 2, 3, 4, 5}}
	r := IIDResampler{}.Resample(rg, s)
	assert.Equal(t, s.Len(), r.Len())
	assert.False(t, r.Paired())
}

// Pairing preservation: with X = Y = index, every resampled row must still
// satisfy Y == X regardless of which indices were drawn.
func TestIIDResampler_PreservesPairing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 300).Draw(t, "n")
		seed := rapid.Int64().Draw(t, "seed")
		s := Sample{X: make([]float64, n), Y: make([]float64, n)}
		for i := 0; i < n; i++ {
			s.X[i] = float64(i)
			s.Y[i] = float64(i)
		}
		rg := rand.New(rand.NewSource(seed))
		r := IIDResampler{}.Resample(rg, s)
		if r.Len() != n {
			t.Fatalf("resample length %d != %d", r.Len(), n)
		}
		for i := 0; i < n; i++ {
			if r.X[i] != r.Y[i] {
				t.Fatalf("pair broken at row %d: X=%v Y=%v", i, r.X[i], r.Y[i])
			}
		}
	})
}

func TestIIDResampler_DrawsFromSample(t *testing.T) {
	rg := rand.New(rand.NewSource(3))
	s := Sample{Y: []float64{10, 20, 30}}
	r := IIDResampler{}.Resample(rg, s)
	for _, y := range r.Y {
		assert.Contains(t, []float64{10, 20, 30}, y)
	}
}

func TestBlockResampler_PreservesLengthAndPairing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 200).Draw(t, "n")
		blockLen := rapid.IntRange(1, 250).Draw(t, "blockLen")
		seed := rapid.Int64().Draw(t, "seed")
		s := Sample{X: make([]float64, n), Y: make([]float64, n)}
		for i := 0; i < n; i++ {
			s.X[i] = float64(i)
			s.Y[i] = float64(i)
		}
		rg := rand.New(rand.NewSource(seed))
		r := BlockResampler{BlockLen: blockLen}.Resample(rg, s)
		if r.Len() != n {
			t.Fatalf("resample length %d != %d", r.Len(), n)
		}
		for i := 0; i < n; i++ {
			if r.X[i] != r.Y[i] {
				t.Fatalf("pair broken at row %d", i)
			}
		}
	})
}

func TestBlockResampler_KeepsConsecutiveRuns(t *testing.T) {
	rg := rand.New(rand.NewSource(11))
	n := 100
	s := Sample{Y: make([]float64, n)}
	for i := 0; i < n; i++ {
		s.Y[i] = float64(i)
	}
	r := BlockResampler{BlockLen: 10}.Resample(rg, s)
	// within each drawn block, consecutive entries advance by one (mod n)
	for i := 0; i < n-1; i++ {
		if i%10 == 9 {
			continue // block boundary
		}
		want := int(r.Y[i]+1) % n
		require.Equal(t, float64(want), r.Y[i+1])
	}
}

func TestNewResampler(t *testing.T) {
	r, err := NewResampler(IIDScheme, 0)
	require.NoError(t, err)
	assert.IsType(t, IIDResampler{}, r)

	r, err = NewResampler(BlockScheme, 5)
	require.NoError(t, err)
	assert.IsType(t, BlockResampler{}, r)

	_, err = NewResampler(BlockScheme, 0)
	assert.Error(t, err)

	_, err = NewResampler(Scheme(99), 0)
	assert.Error(t, err)
}

func TestResampler_IsReproducible(t *testing.T) {
	s := Sample{Y: []float64{5, 6, 7, 8, 9, 10}}
	a := IIDResampler{}.Resample(rand.New(rand.NewSource(21)), s)
	b := IIDResampler{}.Resample(rand.New(rand.NewSource(21)), s)
	require.Equal(t, a, b)
}
