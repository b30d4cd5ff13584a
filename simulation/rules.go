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
	"math/rand"

	"github.com/0xsoniclabs/bootmc/statistics/distribution"
)

// DecisionRule produces a two-sided critical value for one sample. All rules
// share the single comparison in Rejects so that the exact, asymptotic and
// bootstrap decisions are structurally guaranteed to apply the same sign and
// magnitude convention.
type DecisionRule struct {
	Name     string
	Critical func(rg *rand.Rand, s Sample, stat Statistic) (float64, error)
}

// Rejects applies the shared two-sided decision: reject the null when the
// absolute statistic exceeds the critical value.
func Rejects(tstat, critical float64) bool {
	return math.Abs(tstat) > critical
}

// ExactRule uses the finite-sample Student-t critical value with the
// statistic's degrees of freedom. It is exact when the errors are normal.
func ExactRule(alpha float64) DecisionRule {
	return DecisionRule{
		Name: "exact",
		Critical: func(_ *rand.Rand, s Sample, stat Statistic) (float64, error) {
			df := float64(stat.Dof(s.Len()))
			return distribution.NewStudentT(df).Quantile(1.0 - alpha/2.0), nil
		},
	}
}

// AsymptoticRule uses the standard normal critical value.
func AsymptoticRule(alpha float64) DecisionRule {
	return DecisionRule{
		Name: "asymptotic",
		Critical: func(_ *rand.Rand, _ Sample, _ Statistic) (float64, error) {
			return distribution.NewStandardNormal().Quantile(1.0 - alpha/2.0), nil
		},
	}
}

// BootstrapRule derives the critical value from the empirical bootstrap
// distribution of the sample.
func BootstrapRule(alpha float64, engine BootstrapEngine) DecisionRule {
	return DecisionRule{
		Name: "bootstrap",
		Critical: func(rg *rand.Rand, s Sample, stat Statistic) (float64, error) {
			dist, err := engine.Run(rg, s, stat)
			if err != nil {
				return 0, err
			}
			return engine.CriticalValue(dist, alpha)
		},
	}
}
