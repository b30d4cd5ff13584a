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
	"fmt"

	"github.com/0xsoniclabs/bootmc/logger"
	"github.com/0xsoniclabs/bootmc/simulation"
	"github.com/0xsoniclabs/bootmc/utils"
	"github.com/urfave/cli/v2"
)

// SweepCommand data structure for the sweep app.
var SweepCommand = cli.Command{
	Action:    sweepAction,
	Name:      "sweep",
	Usage:     "Sweeps a grid of configurations and reports rejection rates per cell",
	ArgsUsage: "<sweep.yaml>",
	Flags: []cli.Flag{
		&utils.OutputFileFlag,
		&utils.SqliteFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The sweep command requires one argument: <sweep.yaml>

<sweep.yaml> describes the experiment grid: shared parameters (design, seed,
replication counts, significance level) and the swept axes (sample sizes and
distribution families).`,
}

// sweepAction implements the sweep command. The user provides the sweep file
// as argument.
func sweepAction(ctx *cli.Context) error {
	report, err := sweepReport(ctx)
	if err != nil {
		return err
	}
	return printReport(ctx, report)
}

// sweepReport parses the sweep file and runs the grid.
func sweepReport(ctx *cli.Context) (*simulation.Report, error) {
	if ctx.Args().Len() != 1 {
		return nil, fmt.Errorf("missing sweep file as parameter")
	}
	sweep, err := utils.ReadSweep(ctx.Args().Get(0))
	if err != nil {
		return nil, err
	}
	cfgs, err := sweep.Configs()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Bootmc Sweep")
	log.Noticef("sweeping %d configuration cells with base seed %d", len(cfgs), sweep.Seed)

	runner := simulation.NewExperimentRunner(log)
	return runner.Sweep(cfgs)
}
