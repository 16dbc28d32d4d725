// SPDX-License-Identifier: MPL-2.0

package batch

import (
	"errors"
	"testing"

	"run-clang-tidy/internal/runtime"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	spawnErr := errors.New("fork/exec /usr/bin/clang-tidy: permission denied")

	tests := []struct {
		name           string
		res            *runtime.Result
		ignoreWarnings bool
		wantKind       Kind
		wantMessage    string
	}{
		{
			name:     "clean exit",
			res:      &runtime.Result{Output: "ignored\n"},
			wantKind: KindOk,
		},
		{
			name:        "stderr on clean exit is a warning",
			res:         &runtime.Result{ErrOutput: "a.c:1:1: warning: x\n", Output: "1 warning generated.\n"},
			wantKind:    KindWarning,
			wantMessage: "warnings encountered\n---\na.c:1:1: warning: x\n---\n1 warning generated.\n",
		},
		{
			name:           "ignored warnings",
			res:            &runtime.Result{ErrOutput: "a.c:1:1: warning: x\n"},
			ignoreWarnings: true,
			wantKind:       KindOk,
		},
		{
			name:        "non-zero exit with stderr",
			res:         &runtime.Result{ExitCode: 1, ErrOutput: "a.c:1:1: error: y\n", Output: "out\n"},
			wantKind:    KindError,
			wantMessage: "Process terminated with code 1\n---\na.c:1:1: error: y\n---\nout\n",
		},
		{
			name:        "non-zero exit without stderr",
			res:         &runtime.Result{ExitCode: 3},
			wantKind:    KindError,
			wantMessage: "Process terminated with code 3",
		},
		{
			name:           "non-zero exit ignores the warning switch",
			res:            &runtime.Result{ExitCode: 1},
			ignoreWarnings: true,
			wantKind:       KindError,
			wantMessage:    "Process terminated with code 1",
		},
		{
			name:        "signal",
			res:         &runtime.Result{ExitCode: 1, Signaled: true},
			wantKind:    KindError,
			wantMessage: "Process terminated by signal",
		},
		{
			name:        "spawn failure",
			res:         runtime.NewErrorResult(1, spawnErr),
			wantKind:    KindError,
			wantMessage: spawnErr.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify("/src/a.c", tt.res, tt.ignoreWarnings)
			if got.Path != "/src/a.c" {
				t.Errorf("Path = %q", got.Path)
			}
			if got.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMessage)
			}
			if (got.Kind == KindError) != errors.Is(got.Err, ErrExecution) {
				t.Errorf("Err = %v, want ErrExecution exactly for errors", got.Err)
			}
		})
	}

	if got := Classify("a.c", runtime.NewErrorResult(1, spawnErr), false); !errors.Is(got.Err, spawnErr) {
		t.Errorf("spawn failure should wrap the underlying error, got %v", got.Err)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	for kind, want := range map[Kind]string{KindOk: "Ok", KindWarning: "Warning", KindError: "Error", Kind(9): "Kind(9)"} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
