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

package experiment

import (
	"github.com/0xsoniclabs/bootmc/logger"
	"github.com/0xsoniclabs/bootmc/simulation"
	"github.com/0xsoniclabs/bootmc/utils"
	"github.com/urfave/cli/v2"
)

// RunCommand data structure for the single-cell run app.
var RunCommand = cli.Command{
	Action: runAction,
	Name:   "run",
	Usage:  "Runs the Monte Carlo replications of a single configuration",
	Flags: []cli.Flag{
		&utils.DesignFlag,
		&utils.SampleSizeFlag,
		&utils.NullValueFlag,
		&utils.SignificanceFlag,
		&utils.MonteCarloRepsFlag,
		&utils.BootstrapRepsFlag,
		&utils.RandomSeedFlag,
		&utils.WorkersFlag,
		&utils.DistributionFlag,
		&utils.DistParamFlag,
		&utils.ErrorDistributionFlag,
		&utils.ErrorDistParamFlag,
		&utils.InterceptFlag,
		&utils.SlopeFlag,
		&utils.ResamplingFlag,
		&utils.BlockLenFlag,
		&utils.OutputFileFlag,
		&utils.SqliteFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The run command executes the Monte Carlo replications of one experiment cell
and prints the empirical rejection rates of the exact, asymptotic and
bootstrap decision rules.`,
}

// runAction implements the run command for a single configuration cell.
func runAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Bootmc Run")

	runner := simulation.NewExperimentRunner(log)
	report, err := runner.Sweep([]*utils.Config{cfg})
	if err != nil {
		return err
	}
	return printReport(ctx, report)
}

// printReport writes the report to the configured destinations.
func printReport(ctx *cli.Context, report *simulation.Report) error {
	printers := utils.NewPrinters().
		AddPrinterToConsole(false, report.Render).
		AddPrinterToFile(ctx.String(utils.OutputFileFlag.Name), report.Render)
	printers, err := printers.AddPrinterToSqlite3(
		ctx.String(utils.SqliteFlag.Name),
		report.SqliteCreate(),
		report.SqliteInsert(),
		report.Values,
	)
	if err != nil {
		return err
	}
	defer printers.Close()
	return printers.Print()
}
