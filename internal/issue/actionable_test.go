// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "stage tidy file"},
			expected: "failed to stage tidy file",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "project/tidy.json",
			},
			expected: "failed to load configuration: project/tidy.json",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "probe clang-tidy",
				Cause:     errors.New("executable file not found"),
			},
			expected: "failed to probe clang-tidy: executable file not found",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "resolve configuration for 'buildRoot'",
				Resource:  "project/tidy.json",
				Cause:     errors.New("'build' is not a directory"),
			},
			expected: "failed to resolve configuration for 'buildRoot': project/tidy.json: 'build' is not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying error")
	err := &ActionableError{Operation: "test", Cause: cause}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap() should return the cause error")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	errNoCause := &ActionableError{Operation: "test"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "suggestions are bulleted",
			err: &ActionableError{
				Operation:   "load configuration",
				Resource:    "tidy.json",
				Suggestions: []string{"Run 'run-clang-tidy schema'", "Remove unknown fields"},
			},
			contains: []string{
				"failed to load configuration: tidy.json",
				"• Run 'run-clang-tidy schema'",
				"• Remove unknown fields",
			},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "parse config",
				Cause:     errors.New("syntax error"),
			},
			contains: []string{"failed to parse config: syntax error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "run clang-tidy",
				Cause: &ActionableError{
					Operation: "stage tidy file",
					Cause:     errors.New("permission denied"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to stage tidy file: permission denied",
				"2. permission denied",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.err.Format(tt.verbose)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestActionableError_AllSuggestions(t *testing.T) {
	t.Parallel()

	inner := NewErrorContext().
		WithOperation("resolve tidy root").
		WithSuggestion("Use an existing folder").
		Build()
	outer := &ActionableError{
		Operation:   "resolve configuration",
		Suggestions: []string{"Check the configuration file"},
		Cause:       fmt.Errorf("wrapped: %w", inner),
	}

	got := outer.AllSuggestions()
	want := []string{"Check the configuration file", "Use an existing folder"}
	if len(got) != len(want) {
		t.Fatalf("AllSuggestions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllSuggestions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !outer.HasSuggestions() {
		t.Error("HasSuggestions() should return true")
	}
	if (&ActionableError{Operation: "x"}).HasSuggestions() {
		t.Error("HasSuggestions() should return false without suggestions")
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("some/path").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}

	cause := errors.New("parse error")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("tidy.json").
		WithSuggestion("Check syntax").
		WithSuggestion("Verify permissions").
		Wrap(cause).
		Build()
	if err == nil {
		t.Fatal("Build() returned nil")
	}
	if err.Operation != "load configuration" || err.Resource != "tidy.json" {
		t.Errorf("Build() = %+v", err)
	}
	if len(err.Suggestions) != 2 {
		t.Errorf("Suggestions count = %d, want 2", len(err.Suggestions))
	}
	if !errors.Is(err, cause) {
		t.Error("Build() should keep the cause")
	}
}
