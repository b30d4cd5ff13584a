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

import "github.com/urfave/cli/v2"

// LogLevelFlagName mirrors logger.LogLevelFlag.Name without importing the
// logger package from here.
const LogLevelFlagName = "log"

var (
	// DesignFlag selects the experiment design.
	DesignFlag = cli.StringFlag{
		Name:  "design",
		Usage: "experiment design (\"mean\" or \"regression\")",
		Value: MeanDesignName,
	}
	// SampleSizeFlag sets the number of observations per replication.
	SampleSizeFlag = cli.IntFlag{
		Name:  "sample-size",
		Usage: "number of observations per Monte Carlo replication",
		Value: 20,
	}
	// NullValueFlag sets the hypothesized parameter value.
	NullValueFlag = cli.Float64Flag{
		Name:  "null-value",
		Usage: "hypothesized parameter value under the null",
		Value: 0.0,
	}
	// SignificanceFlag sets the nominal level of the test.
	SignificanceFlag = cli.Float64Flag{
		Name:  "significance",
		Usage: "nominal significance level of the tests",
		Value: 0.05,
	}
	// MonteCarloRepsFlag sets the number of outer replications.
	MonteCarloRepsFlag = cli.IntFlag{
		Name:  "monte-carlo-reps",
		Usage: "number of Monte Carlo replications",
		Value: 2000,
	}
	// BootstrapRepsFlag sets the number of inner bootstrap replications.
	BootstrapRepsFlag = cli.IntFlag{
		Name:  "bootstrap-reps",
		Usage: "number of bootstrap replications per Monte Carlo replication",
		Value: 199,
	}
	// RandomSeedFlag sets the base seed of the experiment.
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "base seed for random number generation",
		Value: 1,
	}
	// WorkersFlag sets the number of parallel replication workers.
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of parallel replication workers (1 = sequential)",
		Value: 1,
	}
	// DistributionFlag selects the sampling distribution family.
	DistributionFlag = cli.StringFlag{
		Name:  "distribution",
		Usage: "distribution family (\"normal\", \"student-t\", \"chi-square\", \"centered-chi-square\", \"pareto\", \"cauchy\", \"uniform\")",
		Value: "normal",
	}
	// DistParamFlag sets the free parameter of the sampling distribution.
	DistParamFlag = cli.Float64Flag{
		Name:  "distribution-param",
		Usage: "free parameter of the distribution family (df or shape)",
		Value: 0.0,
	}
	// ErrorDistributionFlag selects the error distribution of the regression design.
	ErrorDistributionFlag = cli.StringFlag{
		Name:  "error-distribution",
		Usage: "error distribution family of the regression design",
		Value: "normal",
	}
	// ErrorDistParamFlag sets the free parameter of the error distribution.
	ErrorDistParamFlag = cli.Float64Flag{
		Name:  "error-distribution-param",
		Usage: "free parameter of the error distribution family",
		Value: 0.0,
	}
	// InterceptFlag sets the true intercept of the regression design.
	InterceptFlag = cli.Float64Flag{
		Name:  "intercept",
		Usage: "true intercept of the regression design",
		Value: 0.0,
	}
	// SlopeFlag sets the true slope of the regression design.
	SlopeFlag = cli.Float64Flag{
		Name:  "slope",
		Usage: "true slope of the regression design",
		Value: 0.0,
	}
	// ResamplingFlag selects the bootstrap resampling scheme.
	ResamplingFlag = cli.StringFlag{
		Name:  "resampling",
		Usage: "bootstrap resampling scheme (\"iid\" or \"block\")",
		Value: IIDResamplingName,
	}
	// BlockLenFlag sets the block length for block resampling.
	BlockLenFlag = cli.IntFlag{
		Name:  "block-length",
		Usage: "block length for block resampling",
		Value: 0,
	}
	// OutputFileFlag appends the rendered report to a file.
	OutputFileFlag = cli.StringFlag{
		Name:  "output",
		Usage: "file path the report is appended to",
		Value: "",
	}
	// SqliteFlag writes report rows into a sqlite3 database.
	SqliteFlag = cli.StringFlag{
		Name:  "db",
		Usage: "sqlite3 connection string report rows are inserted into",
		Value: "",
	}
	// PortFlag sets the address of the visualization server.
	PortFlag = cli.StringFlag{
		Name:  "port",
		Usage: "port of the visualization web server",
		Value: "8080",
	}
)
