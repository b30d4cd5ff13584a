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

package main

import (
	"log"
	"os"

	"github.com/0xsoniclabs/bootmc/cmd/bootmc-cli/experiment"
	"github.com/urfave/cli/v2"
)

// BootmcApp data structure
var BootmcApp = cli.App{
	Name:      "Bootmc",
	HelpName:  "bootmc-cli",
	Usage:     "Monte Carlo experiments for bootstrap hypothesis tests",
	Copyright: "(c) 2025 Sonic Labs",
	Commands: []*cli.Command{
		&experiment.RunCommand,
		&experiment.SweepCommand,
		&experiment.VisualizeCommand,
	},
}

// main implements the bootmc-cli functions
func main() {
	if err := BootmcApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
