// SPDX-License-Identifier: MPL-2.0

package execute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"run-clang-tidy/internal/batch"
	"run-clang-tidy/internal/config"
	"run-clang-tidy/internal/discovery"
	"run-clang-tidy/internal/issue"
	"run-clang-tidy/internal/probe"
	"run-clang-tidy/internal/progress"
	"run-clang-tidy/internal/report"
	"run-clang-tidy/internal/runtime"
	"run-clang-tidy/internal/stage"
	"run-clang-tidy/pkg/fspath"
)

// ErrInterrupted is returned when the run was cancelled while files were
// being analyzed.
var ErrInterrupted = errors.New("run interrupted")

type (
	// Clock abstracts time for the elapsed time of a run.
	Clock interface {
		Now() time.Time
		Since(t time.Time) time.Duration
	}

	// Request configures a single run.
	Request struct {
		// ConfigPath is the configuration document.
		ConfigPath string
		// Overrides replace document values.
		Overrides config.Overrides
		// Progress receives step and per-file lines; nil discards them.
		Progress io.Writer
		// Runner executes the analysis tool; nil uses host processes.
		Runner runtime.Runner
		// Clock measures the run; nil uses the system clock.
		Clock Clock
	}

	// Result summarizes a completed batch.
	Result struct {
		// Report holds warnings and failures with display paths.
		Report *report.Report
		// Config is the effective configuration of the run.
		Config *config.EffectiveConfig
		// Version is the probed tool version.
		Version probe.ToolVersion
		// Files is the number of analyzed files.
		Files int
		// Filtered is the number of paths removed by the filters.
		Filtered int
		// Elapsed is the wall time of the run.
		Elapsed time.Duration
	}

	systemClock struct{}
)

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// Run executes the pipeline. When the batch completes with failed files the
// returned Result is populated and the error wraps report.ErrAggregate.
func Run(ctx context.Context, req Request) (*Result, error) {
	clock := req.Clock
	if clock == nil {
		clock = systemClock{}
	}
	runner := req.Runner
	if runner == nil {
		runner = runtime.NewNativeRunner()
	}
	start := clock.Now()

	doc, err := config.Load(req.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(doc, req.Overrides)
	if err != nil {
		return nil, err
	}

	steps := 6
	if cfg.Tidy.Kind == config.PairingBoth {
		steps++
	}
	out := progress.New(req.Progress, steps)

	if file, _, ok := cfg.Tidy.Staged(); ok {
		out.Step("Found tidy file %s", progress.Bold(file))
	} else {
		out.Step("No tidy file specified, assuming %s exists in the project tree", config.TidyFileName)
	}
	out.Step("Using build root %s", progress.Bold(cfg.BuildRoot))

	found, err := discover(doc)
	if err != nil {
		return nil, err
	}
	filtered := ""
	if found.Filtered > 0 {
		filtered = fmt.Sprintf(" (filtered %d paths)", found.Filtered)
	}
	out.Step("Found %s files for the provided path patterns%s", progress.Bold(len(found.Files)), filtered)

	tool := probe.New(cfg.Command, runner)
	version, err := tool.Validate(ctx)
	if err != nil {
		return nil, err
	}
	commandPath := tool.Command()
	if canonical, cerr := fspath.Canonical(commandPath); cerr == nil {
		commandPath = canonical
	}
	out.Step("Found clang-tidy version %s using command %s", progress.Bold(version), progress.Bold(commandPath))
	if err := tool.SupportsConfigFile(); err != nil {
		slog.Debug("tidy file is staged instead of passed explicitly", "reason", err)
	}

	display := func(path string) string { return path }
	if file, root, ok := cfg.Tidy.Staged(); ok {
		display = func(path string) string { return fspath.Within(path, root) }

		staged, err := stage.Stage(file, root)
		if err != nil {
			return nil, err
		}
		defer func() {
			if staged != nil {
				out.Cleanup(staged.Path())
				staged.Release()
			}
		}()

		if staged == nil {
			out.Step("Existing tidy file matches %s, skipping placement", file)
		} else {
			out.Step("Copying tidy file to %s", progress.Bold(staged.Path()))
		}
	}

	pool := batch.NewPool(cfg.Jobs)
	out.Step("Executing clang-tidy using %s jobs ...", progress.Bold(pool.Width()))
	out.Start(len(found.Files))

	executor := batch.NewExecutor(tool.Command(), runner, pool)
	outcomes := executor.Run(ctx, found.Files, batch.Options{
		BuildRoot:      cfg.BuildRoot,
		Fix:            cfg.Fix,
		IgnoreWarnings: cfg.IgnoreWarnings,
		Timeout:        cfg.Timeout,
	})
	rep := report.Aggregate(outcomes, func(o batch.Outcome) {
		out.File(labelOf(o.Kind), display(o.Path))
		if o.Kind != batch.KindOk {
			slog.Debug("analysis reported diagnostics", "path", o.Path, "kind", o.Kind.String(), "message", o.Message)
		}
	})

	elapsed := clock.Since(start)
	out.Finished(elapsed)

	res := &Result{
		Report:   rep.Relative(display),
		Config:   cfg,
		Version:  version,
		Files:    len(found.Files),
		Filtered: found.Filtered,
		Elapsed:  elapsed,
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("%w: %w", ErrInterrupted, ctxErr)
	}
	return res, res.Report.Err()
}

func discover(doc *config.Document) (*discovery.Result, error) {
	filterPre := discovery.DefaultFilterPre
	if doc.HasFilterPre() {
		filterPre = *doc.FilterPre
	}

	found, err := discovery.Discover(discovery.Request{
		Root:       doc.Root,
		Globs:      doc.Paths,
		FilterPre:  filterPre,
		FilterPost: doc.FilterPost,
	})
	if err == nil {
		return found, nil
	}

	ec := issue.NewErrorContext().
		WithOperation("build glob patterns").
		WithResource(doc.Name).
		Wrap(err)
	var pe *discovery.PatternError
	if errors.As(err, &pe) {
		ec.WithSuggestion(fmt.Sprintf("Check the format of the field '%s' in the provided file '%s'", pe.Field, doc.Name))
	}
	return nil, ec.BuildError()
}

func labelOf(kind batch.Kind) progress.Label {
	switch kind {
	case batch.KindWarning:
		return progress.LabelWarning
	case batch.KindError:
		return progress.LabelError
	default:
		return progress.LabelOk
	}
}
