// SPDX-License-Identifier: MPL-2.0

package probe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"run-clang-tidy/internal/issue"
	"run-clang-tidy/internal/runtime"
	"run-clang-tidy/internal/testutil"
)

// fakeRunner answers every command with a fixed result.
type fakeRunner struct {
	result *runtime.Result
	calls  []runtime.Command
}

func (f *fakeRunner) Run(_ context.Context, cmd runtime.Command) *runtime.Result {
	f.calls = append(f.calls, cmd)
	return f.result
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		result      *runtime.Result
		want        ToolVersion
		wantErr     bool
		errContains string
	}{
		{
			name:   "valid banner",
			result: &runtime.Result{Output: "LLVM version 15.0.7\n"},
			want:   ToolVersion{15, 0, 7},
		},
		{
			name:        "non-zero exit includes stderr",
			result:      &runtime.Result{ExitCode: 2, ErrOutput: "boom\n"},
			wantErr:     true,
			errContains: "terminated with code 2:\nboom",
		},
		{
			name:        "signal",
			result:      &runtime.Result{ExitCode: 1, Signaled: true},
			wantErr:     true,
			errContains: "terminated by signal",
		},
		{
			name:        "spawn failure",
			result:      runtime.NewErrorResult(1, errors.New("executable file not found")),
			wantErr:     true,
			errContains: "executable file not found",
		},
		{
			name:        "unparseable output",
			result:      &runtime.Result{Output: "hello\n"},
			wantErr:     true,
			errContains: "failed to parse --version output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := &fakeRunner{result: tt.result}
			p := New("clang-tidy", runner)
			got, err := p.Validate(context.Background())

			if len(runner.calls) != 1 || runner.calls[0].Path != "clang-tidy" ||
				len(runner.calls[0].Args) != 1 || runner.calls[0].Args[0] != "--version" {
				t.Errorf("runner calls = %+v, want single 'clang-tidy --version'", runner.calls)
			}

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("Validate() = %v, want %v", got, tt.want)
				}
				if cached, ok := p.Version(); !ok || cached != tt.want {
					t.Errorf("Version() = %v, %v", cached, ok)
				}
				return
			}

			if !errors.Is(err, ErrProbe) {
				t.Fatalf("Validate() error = %v, want ErrProbe", err)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.errContains)
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) || ae.Resource != "clang-tidy" {
				t.Errorf("Validate() error should be actionable and name the command, got %#v", err)
			}
			if _, ok := p.Version(); ok {
				t.Error("Version() should be unknown after a failed probe")
			}
		})
	}
}

func TestValidate_Overflow(t *testing.T) {
	t.Parallel()

	p := New("clang-tidy", &fakeRunner{result: &runtime.Result{Output: "LLVM version 300.0.0"}})
	_, err := p.Validate(context.Background())

	var overflow *VersionOverflowError
	if !errors.As(err, &overflow) || !errors.Is(err, ErrProbe) {
		t.Fatalf("Validate() error = %v, want ErrProbe wrapping *VersionOverflowError", err)
	}
}

func TestValidate_StubTool(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ok := testutil.StubTool{Version: "16.0.1"}.Write(t, dir, "clang-tidy")
	failing := testutil.StubTool{VersionExit: 3}.Write(t, dir, "broken-tidy")

	tool := New(ok, runtime.NewNativeRunner())
	if tool.Command() != ok {
		t.Errorf("Command() = %q, want %q", tool.Command(), ok)
	}
	v, err := tool.Validate(context.Background())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if v != (ToolVersion{16, 0, 1}) {
		t.Errorf("Validate() = %v", v)
	}

	if _, err := New(failing, runtime.NewNativeRunner()).Validate(context.Background()); !errors.Is(err, ErrProbe) {
		t.Errorf("Validate() error = %v, want ErrProbe", err)
	}
}

func TestSupportsConfigFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		output  string
		probed  bool
		wantErr bool
	}{
		{name: "unknown version", wantErr: true},
		{name: "below threshold", output: "version 11.1.0", probed: true, wantErr: true},
		{name: "threshold", output: "version 12.0.0", probed: true},
		{name: "above threshold", output: "version 17.0.6", probed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := New("clang-tidy", &fakeRunner{result: &runtime.Result{Output: tt.output}})
			if tt.probed {
				if _, err := p.Validate(context.Background()); err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
			}

			err := p.SupportsConfigFile()
			if (err != nil) != tt.wantErr {
				t.Fatalf("SupportsConfigFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "12.0.0") {
				t.Errorf("SupportsConfigFile() error = %q, want it to name the threshold", err)
			}
		})
	}
}
