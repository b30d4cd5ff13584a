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
	"math"
	"testing"

	"github.com/0xsoniclabs/bootmc/statistics/distribution"
	"github.com/0xsoniclabs/bootmc/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperimentRunner_PreservesSweepOrder(t *testing.T) {
	sizes := []int{40, 10, 20}
	cfgs := make([]*utils.Config, 0, len(sizes))
	for _, n := range sizes {
		cfg := meanTestConfig()
		cfg.SampleSize = n
		cfg.MonteCarloReps = 20
		cfgs = append(cfgs, cfg)
	}
	report, err := NewExperimentRunner(nil).Sweep(cfgs)
	require.NoError(t, err)
	require.Len(t, report.Rows, 3)
	for i, n := range sizes {
		assert.Equal(t, n, report.Rows[i].SampleSize)
	}
}

func TestExperimentRunner_FailsFastOnInvalidCell(t *testing.T) {
	good := meanTestConfig()
	bad := meanTestConfig()
	bad.Significance = 0.0
	_, err := NewExperimentRunner(nil).Sweep([]*utils.Config{good, bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "significance")
}

func TestExperimentRunner_EmptySweep(t *testing.T) {
	_, err := NewExperimentRunner(nil).Sweep(nil)
	assert.Error(t, err)
}

// Size of the mean test with normal data: all three decision rules must
// produce empirical rejection rates near the nominal 5% level.
func TestExperimentRunner_NormalMeanTestSize(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Monte Carlo size experiment in short mode")
	}
	cfg := &utils.Config{
		Design:         utils.MeanDesignName,
		SampleSize:     20,
		NullValue:      0.0,
		Significance:   0.05,
		MonteCarloReps: 2000,
		BootstrapReps:  199,
		RandomSeed:     111,
		Workers:        1,
		Distribution:   distribution.NewStandardNormal(),
		Resampling:     utils.IIDResamplingName,
	}
	report, err := NewExperimentRunner(nil).Sweep([]*utils.Config{cfg})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)

	row := report.Rows[0]
	assert.Equal(t, 0, row.Excluded)
	for j, name := range report.RuleNames {
		assert.GreaterOrEqual(t, row.Rates[j], 0.03, "rule %s", name)
		assert.LessOrEqual(t, row.Rates[j], 0.08, "rule %s", name)
	}
}

// Size of the mean test with skewed data: the Student-t critical value is no
// longer exact, and the bootstrap rule tracks the nominal level at least as
// closely.
func TestExperimentRunner_SkewedMeanTestSize(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Monte Carlo size experiment in short mode")
	}
	cfg := &utils.Config{
		Design:         utils.MeanDesignName,
		SampleSize:     20,
		NullValue:      0.0,
		Significance:   0.05,
		MonteCarloReps: 2000,
		BootstrapReps:  199,
		RandomSeed:     111,
		Workers:        1,
		Distribution:   distribution.NewCenteredChiSquare(3),
		Resampling:     utils.IIDResamplingName,
	}
	report, err := NewExperimentRunner(nil).Sweep([]*utils.Config{cfg})
	require.NoError(t, err)
	row := report.Rows[0]

	rates := map[string]float64{}
	for j, name := range report.RuleNames {
		rates[name] = row.Rates[j]
	}
	assert.GreaterOrEqual(t, rates["bootstrap"], 0.02)
	assert.LessOrEqual(t, rates["bootstrap"], 0.09)
	// the exact rule deviates at least as far from nominal as the bootstrap
	assert.GreaterOrEqual(t,
		math.Abs(rates["exact"]-0.05)+0.01,
		math.Abs(rates["bootstrap"]-0.05))
}

// sizeOfRegressionTest runs the OLS slope test under the null without the
// bootstrap rule and returns the per-rule rejection rates.
func sizeOfRegressionTest(t *testing.T, errDist distribution.Distribution, n, reps int, seed int64) map[string]float64 {
	t.Helper()
	cfg := &utils.Config{
		Design:            utils.RegressionDesignName,
		SampleSize:        n,
		NullValue:         2.0,
		Significance:      0.05,
		MonteCarloReps:    reps,
		BootstrapReps:     20,
		RandomSeed:        seed,
		Workers:           1,
		Distribution:      distribution.NewPareto(1.5),
		ErrorDistribution: errDist,
		Intercept:         1.0,
		Slope:             2.0,
		Resampling:        utils.IIDResamplingName,
	}
	engine, err := NewEngineFromConfig(cfg, nil)
	require.NoError(t, err)
	engine.Rules = []DecisionRule{ExactRule(cfg.Significance), AsymptoticRule(cfg.Significance)}

	table, err := engine.Run(cfg)
	require.NoError(t, err)
	rates, _ := table.RejectionRates()
	out := map[string]float64{}
	for j, name := range table.RuleNames {
		out[name] = rates[j]
	}
	return out
}

// With normal errors the slope t-statistic has an exact Student-t
// distribution conditional on the regressor, so the test size stays near
// nominal even though the Pareto(1.5) regressor has infinite variance.
func TestExperimentRunner_ParetoRegressorKeepsNominalSize(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Monte Carlo size experiment in short mode")
	}
	for _, n := range []int{5, 10, 200, 5000} {
		rates := sizeOfRegressionTest(t, distribution.NewStandardNormal(), n, 600, 2025)
		assert.GreaterOrEqual(t, rates["exact"], 0.02, "n=%d", n)
		assert.LessOrEqual(t, rates["exact"], 0.08, "n=%d", n)
	}
}

// With Cauchy errors the asymptotic normal critical value is invalid: the
// empirical size does not settle at the nominal level as the sample grows.
// This divergence is a reproducible property of the design, not noise.
func TestExperimentRunner_CauchyErrorsBreakAsymptoticRule(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Monte Carlo size experiment in short mode")
	}
	rates := sizeOfRegressionTest(t, distribution.NewCauchy(), 5000, 2000, 4111)
	assert.Greater(t, math.Abs(rates["asymptotic"]-0.05), 0.012,
		"asymptotic rule unexpectedly attains nominal size under Cauchy errors")
}
