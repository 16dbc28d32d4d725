// SPDX-License-Identifier: MPL-2.0

package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/mod/semver"

	"run-clang-tidy/internal/issue"
	"run-clang-tidy/internal/runtime"
)

// MinConfigFileVersion is the first release that accepts "--config-file".
const MinConfigFileVersion = "v12.0.0"

// ErrProbe is wrapped by every error caused by a missing, failing or
// unparseable executable.
var ErrProbe = errors.New("executable probe failed")

// Probe validates a single executable and caches its version.
type Probe struct {
	command string
	runner  runtime.Runner

	mu      sync.RWMutex
	version *ToolVersion
}

// New creates a Probe for command, which is either a bare name looked up in
// the search path or a path to an executable.
func New(command string, runner runtime.Runner) *Probe {
	return &Probe{command: command, runner: runner}
}

// Command returns the probed executable.
func (p *Probe) Command() string {
	return p.command
}

// Validate runs "<command> --version" and parses the reported version.
// On success the version is cached and returned.
func (p *Probe) Validate(ctx context.Context) (ToolVersion, error) {
	cmd := runtime.Command{Path: p.command, Args: []string{"--version"}}
	slog.Debug("probing executable", "command", cmd.String())

	res := p.runner.Run(ctx, cmd)
	switch {
	case res.Error != nil:
		return ToolVersion{}, p.fail(fmt.Errorf("%w: %w", ErrProbe, res.Error),
			"Make sure the executable exists and can be executed",
			"Use '--command' to point to the executable explicitly")
	case res.Signaled:
		return ToolVersion{}, p.fail(fmt.Errorf("%w: process terminated by signal%s", ErrProbe, stderrSuffix(res)))
	case !res.ExitCode.IsSuccess():
		return ToolVersion{}, p.fail(fmt.Errorf("%w: process terminated with code %d%s", ErrProbe, res.ExitCode, stderrSuffix(res)),
			"Check that the command is a clang-tidy executable")
	}

	v, err := ParseVersion(res.Output)
	if err != nil {
		return ToolVersion{}, p.fail(fmt.Errorf("%w: failed to parse --version output %q: %w", ErrProbe, strings.TrimSpace(res.Output), err),
			"Check that the command is a clang-tidy executable")
	}

	p.mu.Lock()
	p.version = &v
	p.mu.Unlock()

	slog.Debug("executable validated", "command", p.command, "version", v.String())
	return v, nil
}

// Version returns the cached version and whether Validate succeeded.
func (p *Probe) Version() (ToolVersion, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.version == nil {
		return ToolVersion{}, false
	}
	return *p.version, true
}

// SupportsConfigFile returns an error unless a probed version of at least
// MinConfigFileVersion is known.
func (p *Probe) SupportsConfigFile() error {
	v, ok := p.Version()
	if !ok {
		return fmt.Errorf("%w: unknown version, --config-file requires clang-tidy version %s or higher",
			ErrProbe, strings.TrimPrefix(MinConfigFileVersion, "v"))
	}
	if semver.Compare(v.Semver(), MinConfigFileVersion) < 0 {
		return fmt.Errorf("%w: version %s, --config-file requires clang-tidy version %s or higher",
			ErrProbe, v, strings.TrimPrefix(MinConfigFileVersion, "v"))
	}
	return nil
}

func (p *Probe) fail(cause error, suggestions ...string) error {
	ec := issue.NewErrorContext().
		WithOperation("validate executable").
		WithResource(p.command).
		Wrap(cause)
	for _, s := range suggestions {
		ec.WithSuggestion(s)
	}
	return ec.BuildError()
}

func stderrSuffix(res *runtime.Result) string {
	stderr := strings.TrimSpace(res.ErrOutput)
	if stderr == "" {
		return ""
	}
	return ":\n" + stderr
}
