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
	"math/rand"
)

// Scheme selects the resampling scheme used inside the bootstrap loop.
type Scheme int

const (
	// IIDScheme resamples whole rows independently with replacement.
	IIDScheme Scheme = iota
	// BlockScheme resamples circular moving blocks of rows, for data with
	// serial dependence.
	BlockScheme
)

// Resampler draws one bootstrap resample from a sample. The resample has the
// same length as the original; for paired samples the same drawn indices
// apply to both columns so that (X, Y) pairs stay intact.
type Resampler interface {
	Resample(rg *rand.Rand, s Sample) Sample
}

// NewResampler creates a resampler for the given scheme. The block length is
// only consulted by BlockScheme.
func NewResampler(scheme Scheme, blockLen int) (Resampler, error) {
	switch scheme {
	case IIDScheme:
		return IIDResampler{}, nil
	case BlockScheme:
		if blockLen < 1 {
			return nil, fmt.Errorf("block resampling requires a positive block length; got %d", blockLen)
		}
		return BlockResampler{BlockLen: blockLen}, nil
	default:
		return nil, fmt.Errorf("unknown resampling scheme (%d)", scheme)
	}
}

// IIDResampler draws n row indices uniformly with replacement.
type IIDResampler struct{}

// Resample draws the resample. Both columns of a paired sample are permuted
// with the same index multiset.
func (IIDResampler) Resample(rg *rand.Rand, s Sample) Sample {
	n := s.Len()
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = rg.Intn(n)
	}
	return s.take(idx)
}

// BlockResampler draws circular moving blocks of consecutive rows until the
// resample is filled, truncating the last block at n.
type BlockResampler struct {
	BlockLen int
}

// Resample draws the resample block by block.
func (b BlockResampler) Resample(rg *rand.Rand, s Sample) Sample {
	n := s.Len()
	l := b.BlockLen
	if l > n {
		l = n
	}
	idx := make([]int, 0, n)
	for len(idx) < n {
		start := rg.Intn(n)
		for j := 0; j < l && len(idx) < n; j++ {
			idx = append(idx, (start+j)%n)
		}
	}
	return s.take(idx)
}

// take builds a new sample from the given row indices.
func (s Sample) take(idx []int) Sample {
	r := Sample{Y: make([]float64, len(idx))}
	if s.Paired() {
		r.X = make([]float64, len(idx))
	}
	for i, j := range idx {
		r.Y[i] = s.Y[j]
		if s.Paired() {
			r.X[i] = s.X[j]
		}
	}
	return r
}
