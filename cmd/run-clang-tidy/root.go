// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"run-clang-tidy/internal/app/execute"
	"run-clang-tidy/internal/config"
	"run-clang-tidy/internal/report"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Exit codes besides 0.
const (
	exitFailure     = 1
	exitInterrupted = 130
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the flags that are not overrides of the configuration
// document and therefore not read through viper.
type rootOptions struct {
	verbosity int
}

func (o *rootOptions) verbose() bool {
	return o.verbosity > 0
}

// newRootCommand creates the `run-clang-tidy` command.
func newRootCommand(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "run-clang-tidy <CONFIG_PATH>",
		Short: "Run clang-tidy in parallel on the files selected by a configuration file",
		Long: TitleStyle.Render("run-clang-tidy") + SubtitleStyle.Render(" - Run clang-tidy in parallel") + `

The configuration file lists glob patterns of the files to analyze, the build
root containing compile_commands.json, and optionally a .clang-tidy file that is
placed into a tidy root for the duration of the run.

Command line options override the values of the configuration file. Each option
can also be set using the environment, e.g. RUN_CLANG_TIDY_BUILD_ROOT.

` + SubtitleStyle.Render("Examples:") + `
  run-clang-tidy tidy.json                     Analyze all configured files
  run-clang-tidy tidy.json --jobs=4 --fix      Use four jobs and apply fixes
  run-clang-tidy schema                        Print the configuration schema`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTidy(cmd, args[0], opts)
		},
	}

	flags := root.Flags()
	flags.String(config.KeyTidy, "", "path to the .clang-tidy file (overrides 'tidyFile')")
	flags.String(config.KeyBuildRoot, "", "folder containing compile_commands.json (overrides 'buildRoot')")
	flags.String(config.KeyCommand, "", "path or name of the clang-tidy executable (overrides 'command')")
	flags.String(config.KeyJobs, "", "number of parallel jobs in the range [0 .. 255], all cores when given without value")
	flags.Lookup(config.KeyJobs).NoOptDefVal = config.JobsAuto
	flags.Bool(config.KeySuppressWarnings, false, "treat files with warnings as successful")
	flags.Bool(config.KeyFix, false, "apply suggested fixes (-fix -fix-errors)")
	flags.Duration(config.KeyTimeout, 0, "abort a single clang-tidy invocation after this duration (0 disables)")

	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "raise the log level (repeatable)")
	root.PersistentFlags().BoolP(config.KeyQuiet, "q", false, "suppress all output but errors")

	root.AddCommand(newSchemaCommand())

	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and exits the process with its status.
// This is called by main.main().
func Execute() {
	opts := &rootOptions{}
	root := newRootCommand(opts)

	// Pass version via fang.WithVersion() since fang overrides root.Version
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler(opts)),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(exitFailure)
	}
}

func runTidy(cmd *cobra.Command, configPath string, opts *rootOptions) error {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}
	overrides, err := config.OverridesFromViper(v)
	if err != nil {
		return err
	}

	slog.SetDefault(newLogger(cmd.ErrOrStderr(), opts.verbosity, overrides.Quiet))

	var progressOut io.Writer
	if !overrides.Quiet {
		progressOut = cmd.OutOrStdout()
	}

	res, err := execute.Run(cmd.Context(), execute.Request{
		ConfigPath: configPath,
		Overrides:  overrides,
		Progress:   progressOut,
	})
	if res != nil && !overrides.Quiet {
		writeEntries(cmd.ErrOrStderr(), WarningStyle, "Warnings have been issued for the following files:",
			res.Report.Warnings, warnedPathStyle)
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, execute.ErrInterrupted):
		return &ExitError{Code: exitInterrupted, Err: err}
	case errors.Is(err, report.ErrAggregate) && res != nil:
		writeEntries(cmd.ErrOrStderr(), ErrorStyle, "Execution failed for the following files:",
			res.Report.Failures, failedPathStyle)
		// the failures have been listed, only the exit code remains
		return &ExitError{Code: exitFailure}
	default:
		return err
	}
}
