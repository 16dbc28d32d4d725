// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"mvdan.cc/sh/v3/syntax"
)

// DefaultWaitDelay bounds how long Run waits for output pipes after the
// process was killed on context cancellation.
const DefaultWaitDelay = 2 * time.Second

type (
	// Command describes a single executable invocation.
	Command struct {
		// Path is the executable, either a bare name looked up in PATH or a file path.
		Path string
		// Args are passed to the executable verbatim.
		Args []string
		// Dir is the working directory; empty means the current directory.
		Dir string
	}

	// Runner executes commands.
	Runner interface {
		Run(ctx context.Context, cmd Command) *Result
	}

	// NativeRunner executes commands as host processes with captured output.
	NativeRunner struct {
		waitDelay time.Duration
	}
)

// NewNativeRunner creates a runner that executes host processes.
func NewNativeRunner() *NativeRunner {
	return &NativeRunner{waitDelay: DefaultWaitDelay}
}

// Run starts cmd, waits for it and returns its captured output.
// Cancelling ctx kills the process.
func (r *NativeRunner) Run(ctx context.Context, cmd Command) *Result {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.WaitDelay = r.waitDelay

	captured := &capturedOutput{}
	captured.attach(c)

	return extractExitCode(c.Run(), captured)
}

// String renders the command as a shell command line for logging.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, p := range append([]string{c.Path}, c.Args...) {
		quoted, err := syntax.Quote(p, syntax.LangBash)
		if err != nil {
			quoted = p
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, " ")
}
