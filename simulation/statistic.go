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
	"math"

	"github.com/0xsoniclabs/bootmc/statistics/empirical"
	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateSample marks a sample on which the statistic is undefined
// (zero variance or a singular design matrix). The Monte Carlo engine
// excludes such replications from the aggregated rates instead of silently
// averaging a NaN or an arbitrary decision.
var ErrDegenerateSample = errors.New("degenerate sample: statistic undefined")

// StatisticResult is the outcome of evaluating a statistic on one sample.
type StatisticResult struct {
	Estimate float64 // point estimate of the parameter under test
	TStat    float64 // studentized test statistic for the hypothesized value
}

// Statistic maps a sample and a hypothesized parameter value to a test
// statistic. The hypothesized value is the null value for the actual test
// and the original sample's estimate for bootstrap re-centering, so the same
// implementation serves both loops.
type Statistic interface {
	Compute(s Sample, hypothesized float64) (StatisticResult, error)

	// MinSampleSize is the smallest sample size on which the statistic
	// is defined.
	MinSampleSize() int

	// Dof returns the finite-sample degrees of freedom for a sample of
	// size n, used by the exact-distribution decision rule.
	Dof(n int) int

	Name() string
}

// MeanT is the one-sample t-statistic sqrt(n)*(mean(Y)-h)/sd(Y).
type MeanT struct{}

func (MeanT) Name() string       { return "mean-t" }
func (MeanT) MinSampleSize() int { return 2 }
func (MeanT) Dof(n int) int      { return n - 1 }

// Compute evaluates the t-statistic for the hypothesized mean.
func (m MeanT) Compute(s Sample, hypothesized float64) (StatisticResult, error) {
	n := s.Len()
	if n < m.MinSampleSize() {
		return StatisticResult{}, fmt.Errorf("mean t-statistic requires at least %d observations; got %d", m.MinSampleSize(), n)
	}
	mean := empirical.Mean(s.Y)
	sd := empirical.StdDev(s.Y)
	if sd == 0.0 || math.IsNaN(sd) || math.IsInf(sd, 0) {
		return StatisticResult{}, fmt.Errorf("mean t-statistic: %w", ErrDegenerateSample)
	}
	t := math.Sqrt(float64(n)) * (mean - hypothesized) / sd
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return StatisticResult{}, fmt.Errorf("mean t-statistic: %w", ErrDegenerateSample)
	}
	return StatisticResult{Estimate: mean, TStat: t}, nil
}

// OLSCoefT is the t-statistic for the slope coefficient of a simple linear
// regression with intercept. The coefficient vector solves the normal
// equations; the residual variance carries the (n-p) degrees-of-freedom
// correction.
type OLSCoefT struct{}

func (OLSCoefT) Name() string       { return "ols-slope-t" }
func (OLSCoefT) MinSampleSize() int { return 3 }
func (OLSCoefT) Dof(n int) int      { return n - 2 }

// Compute evaluates the t-statistic for the hypothesized slope.
func (o OLSCoefT) Compute(s Sample, hypothesized float64) (StatisticResult, error) {
	n := s.Len()
	if !s.Paired() {
		return StatisticResult{}, fmt.Errorf("regression statistic requires a paired sample with a regressor column")
	}
	if n < o.MinSampleSize() {
		return StatisticResult{}, fmt.Errorf("regression t-statistic requires at least %d observations; got %d", o.MinSampleSize(), n)
	}

	// design matrix with intercept column
	xm := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		xm.Set(i, 0, 1.0)
		xm.Set(i, 1, s.X[i])
	}
	yv := mat.NewVecDense(n, append([]float64(nil), s.Y...))

	var qr mat.QR
	qr.Factorize(xm)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, yv); err != nil {
		return StatisticResult{}, fmt.Errorf("singular design matrix: %w", ErrDegenerateSample)
	}
	intercept := beta.AtVec(0)
	slope := beta.AtVec(1)

	rss := 0.0
	for i := 0; i < n; i++ {
		r := s.Y[i] - intercept - slope*s.X[i]
		rss += r * r
	}
	sigma2 := rss / float64(o.Dof(n))

	var xtx, inv mat.Dense
	xtx.Mul(xm.T(), xm)
	if err := inv.Inverse(&xtx); err != nil {
		return StatisticResult{}, fmt.Errorf("singular normal equations: %w", ErrDegenerateSample)
	}
	se := math.Sqrt(sigma2 * inv.At(1, 1))
	if se == 0.0 || math.IsNaN(se) || math.IsInf(se, 0) {
		return StatisticResult{}, fmt.Errorf("regression t-statistic: %w", ErrDegenerateSample)
	}

	t := (slope - hypothesized) / se
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return StatisticResult{}, fmt.Errorf("regression t-statistic: %w", ErrDegenerateSample)
	}
	return StatisticResult{Estimate: slope, TStat: t}, nil
}
