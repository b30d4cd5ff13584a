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
	"testing"

	"github.com/0xsoniclabs/bootmc/statistics/distribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Design:            MeanDesignName,
		SampleSize:        20,
		NullValue:         0.0,
		Significance:      0.05,
		MonteCarloReps:    100,
		BootstrapReps:     199,
		RandomSeed:        42,
		Workers:           1,
		Distribution:      distribution.NewStandardNormal(),
		ErrorDistribution: distribution.NewStandardNormal(),
		Resampling:        IIDResamplingName,
	}
}

func TestConfig_ValidateSuccess(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Design = RegressionDesignName
	cfg.Distribution = distribution.NewUniform(0.0, 1.0)
	require.NoError(t, cfg.Validate())

	cfg = validConfig()
	cfg.Resampling = BlockResamplingName
	cfg.BlockLen = 4
	require.NoError(t, cfg.Validate())
}

func TestConfig_ValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown design", func(c *Config) { c.Design = "anova" }, "design"},
		{"sample size too small", func(c *Config) { c.SampleSize = 1 }, "sample size"},
		{"regression needs three observations", func(c *Config) {
			c.Design = RegressionDesignName
			c.SampleSize = 2
		}, "sample size"},
		{"significance at zero", func(c *Config) { c.Significance = 0.0 }, "significance"},
		{"significance at one", func(c *Config) { c.Significance = 1.0 }, "significance"},
		{"no monte carlo replications", func(c *Config) { c.MonteCarloReps = 0 }, "replications"},
		{"no bootstrap replications", func(c *Config) { c.BootstrapReps = 0 }, "replications"},
		{"quantile not resolvable", func(c *Config) {
			c.Significance = 0.01
			c.BootstrapReps = 99
		}, "quantile"},
		{"bad distribution", func(c *Config) { c.Distribution = distribution.NewStudentT(0.0) }, "degrees of freedom"},
		{"bad error distribution", func(c *Config) {
			c.Design = RegressionDesignName
			c.ErrorDistribution = distribution.NewPareto(-1.0)
		}, "shape"},
		{"block length missing", func(c *Config) { c.Resampling = BlockResamplingName }, "block"},
		{"unknown resampling", func(c *Config) { c.Resampling = "jackknife" }, "resampling"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := validConfig()
			test.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestConfig_QuantileResolutionBound(t *testing.T) {
	cfg := validConfig()
	cfg.Significance = 0.01
	cfg.BootstrapReps = 100
	require.NoError(t, cfg.Validate())

	cfg.BootstrapReps = 99
	require.Error(t, cfg.Validate())
}

func TestConfig_Key(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "mean/Normal(0,1)/n=20", cfg.Key())
}

func TestParseDistribution(t *testing.T) {
	tests := []struct {
		family string
		param  float64
		want   string
	}{
		{"normal", 0.0, "Normal(0,1)"},
		{"student-t", 3.0, "StudentT(3)"},
		{"chi-square", 3.0, "ChiSquare(3)"},
		{"centered-chi-square", 3.0, "ChiSquare(3)-3"},
		{"pareto", 1.5, "Pareto(1.5)"},
		{"cauchy", 0.0, "Cauchy"},
		{"uniform", 2.0, "Uniform[0,2)"},
	}
	for _, test := range tests {
		dist, err := ParseDistribution(test.family, test.param)
		require.NoError(t, err)
		assert.Equal(t, test.want, dist.String())
	}

	_, err := ParseDistribution("triangular", 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "triangular")
}
