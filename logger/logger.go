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

package logger

import (
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// Logger is the logging handle handed to engines and commands.
type Logger = *logging.Logger

const defaultLogFormat = "%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset}: %{message}"

// LogLevelFlag selects the verbosity of the logger.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "Level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value:   "info",
}

// NewLogger provides a new instance of the logger for the given module.
// An unknown level string falls back to INFO.
func NewLogger(level string, module string) Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	fm := logging.MustStringFormatter(defaultLogFormat)
	fmtBackend := logging.NewBackendFormatter(backend, fm)

	lvlBackend := logging.AddModuleLevel(fmtBackend)
	lvlBackend.SetLevel(lvl, "")

	log := logging.MustGetLogger(module)
	log.SetBackend(lvlBackend)

	return log
}

// ParseTime decomposes an elapsed duration into hours, minutes and seconds
// for progress reports.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	hours := uint32(elapsed.Seconds()) / 3600
	minutes := (uint32(elapsed.Seconds()) / 60) % 60
	seconds := uint32(elapsed.Seconds()) % 60

	return hours, minutes, seconds
}
