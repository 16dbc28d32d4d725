// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"run-clang-tidy/internal/config"
	"run-clang-tidy/internal/discovery"
	"run-clang-tidy/internal/issue"
	"run-clang-tidy/internal/probe"
	"run-clang-tidy/internal/report"
	"run-clang-tidy/internal/stage"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
)

// issueStyle is the glamour style used for issue catalog entries.
const issueStyle = "dark"

// errorHandler returns the fang error handler. An ExitError without a cause
// has been reported already and only sets the exit code.
func errorHandler(opts *rootOptions) fang.ErrorHandler {
	return func(w io.Writer, _ fang.Styles, err error) {
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Err == nil {
			return
		}

		fmt.Fprintln(w, ErrorStyle.Render("Error:")+" "+formatErrorForDisplay(err, opts.verbose()))

		if !opts.verbose() {
			return
		}
		id, ok := issueFor(err)
		if !ok {
			return
		}
		rendered, renderErr := issue.Get(id).Render(issueStyle)
		if renderErr != nil {
			return
		}
		fmt.Fprint(w, rendered)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueFor maps an error to the catalog entry explaining it.
func issueFor(err error) (issue.Id, bool) {
	var resErr *config.ResolutionError
	switch {
	case errors.Is(err, report.ErrAggregate):
		return issue.FilesFailedId, true
	case errors.Is(err, stage.ErrStage):
		return issue.TidyFileConflictId, true
	case errors.Is(err, probe.ErrProbe):
		return issue.CommandNotFoundId, true
	case errors.Is(err, discovery.ErrPattern):
		return issue.InvalidGlobId, true
	case errors.As(err, &resErr):
		if resErr.Setting == config.SettingBuildRoot {
			return issue.BuildRootMissingId, true
		}
		return issue.TidyConfigInvalidId, true
	case errors.Is(err, config.ErrConfig):
		return issue.ConfigLoadFailedId, true
	default:
		return 0, false
	}
}

// writeEntries prints a headline followed by one block per entry. Nothing
// is printed for an empty list.
func writeEntries(w io.Writer, headline lipgloss.Style, title string, entries []report.Entry, path lipgloss.Style) {
	if len(entries) == 0 {
		return
	}
	dump := report.Dump(entries, func(p string) string { return path.Render(p) })
	fmt.Fprintf(w, "\n%s\n\n%s\n", headline.Render(title), strings.TrimRight(dump, "\n"))
}
