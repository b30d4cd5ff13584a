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
	"github.com/0xsoniclabs/bootmc/utils"
	"github.com/0xsoniclabs/bootmc/visualizer"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "Runs a sweep and serves its rejection-rate charts on a web server",
	ArgsUsage: "<sweep.yaml>",
	Flags: []cli.Flag{
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command requires one argument: <sweep.yaml>

It runs the sweep and then serves the aggregated rejection rates as line
charts on a local web server.`,
}

// visualizeAction implements the visualize command.
func visualizeAction(ctx *cli.Context) error {
	report, err := sweepReport(ctx)
	if err != nil {
		return err
	}

	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Bootmc Visualize")
	port := ctx.String(utils.PortFlag.Name)
	log.Noticef("serving rejection-rate charts at http://localhost:%s", port)

	return visualizer.FireUpWeb(report, port)
}
