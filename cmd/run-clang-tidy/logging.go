// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the process-wide slog handler. Quiet wins over any
// verbosity: only errors are logged.
func newLogger(w io.Writer, verbosity int, quiet bool) *slog.Logger {
	opts := log.Options{Level: log.InfoLevel}

	switch {
	case quiet:
		opts.Level = log.ErrorLevel
	case verbosity >= 2:
		opts.Level = log.DebugLevel
		opts.ReportTimestamp = true
		opts.TimeFormat = time.TimeOnly
		opts.ReportCaller = true
	case verbosity == 1:
		opts.Level = log.DebugLevel
		opts.ReportTimestamp = true
		opts.TimeFormat = time.TimeOnly
	}

	return slog.New(log.NewWithOptions(w, opts))
}
