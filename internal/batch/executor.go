// SPDX-License-Identifier: MPL-2.0

package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"run-clang-tidy/internal/runtime"
)

type (
	// Options apply to every invocation of a run.
	Options struct {
		// BuildRoot is passed as "-p=<BuildRoot>".
		BuildRoot string
		// Fix adds "-fix -fix-errors".
		Fix bool
		// IgnoreWarnings classifies clean exits with stderr output as Ok.
		IgnoreWarnings bool
		// Timeout bounds each invocation; zero disables the limit.
		Timeout time.Duration
	}

	// Executor invokes the analysis tool for a set of files.
	Executor struct {
		command string
		runner  runtime.Runner
		pool    *Pool
	}
)

// NewExecutor creates an executor for command using runner on pool.
func NewExecutor(command string, runner runtime.Runner, pool *Pool) *Executor {
	return &Executor{command: command, runner: runner, pool: pool}
}

// Command returns the invocation for a single file.
func (e *Executor) Command(file string, opts Options) runtime.Command {
	args := []string{file, "-p=" + opts.BuildRoot}
	if opts.Fix {
		args = append(args, "-fix", "-fix-errors")
	}
	return runtime.Command{Path: e.command, Args: args}
}

// Run analyzes files and streams one Outcome per file in completion order.
// The channel is closed once every file has been handled.
//
// Cancelling ctx kills running invocations; files that were not started yet
// are reported as errors.
func (e *Executor) Run(ctx context.Context, files []string, opts Options) <-chan Outcome {
	out := make(chan Outcome, len(files))

	go func() {
		defer close(out)

		g := e.pool.group()
		for _, file := range files {
			g.Go(func() error {
				out <- e.runOne(ctx, file, opts)
				return nil
			})
		}
		// workers never return errors
		_ = g.Wait()
	}()

	return out
}

func (e *Executor) runOne(ctx context.Context, file string, opts Options) Outcome {
	if err := ctx.Err(); err != nil {
		return errorOutcome(file, fmt.Sprintf("Not started: %v", err), err)
	}

	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := e.Command(file, opts)
	slog.Debug("running", "command", cmd.String())

	res := e.runner.Run(runCtx, cmd)
	if !res.Success() && ctx.Err() == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		reason := fmt.Sprintf("timed out after %s", opts.Timeout)
		return errorOutcome(file, reason, errors.New(reason))
	}
	return Classify(file, res, opts.IgnoreWarnings)
}
