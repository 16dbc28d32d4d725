// SPDX-License-Identifier: MPL-2.0

package probe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		output  string
		want    ToolVersion
		wantErr error
	}{
		{
			name:   "llvm banner",
			output: "LLVM (http://llvm.org/):\n  LLVM version 17.0.6\n  Optimized build.\n",
			want:   ToolVersion{17, 0, 6},
		},
		{
			name:   "distribution banner",
			output: "Ubuntu LLVM version 14.0.0\n",
			want:   ToolVersion{14, 0, 0},
		},
		{
			name:   "trailing text",
			output: "clang-format version 4.0.0 (tags/checker/checker-279)",
			want:   ToolVersion{4, 0, 0},
		},
		{
			name:   "first token on the first matching line",
			output: "version 1.2.3 wraps version 10.0.1\nversion 99.0.0",
			want:   ToolVersion{1, 2, 3},
		},
		{
			name:   "runtime version after the tool version",
			output: "clang-tidy version 17.0.6 built with version 1.21.0\n",
			want:   ToolVersion{17, 0, 6},
		},
		{
			name:   "incomplete token is skipped",
			output: "version 1.2 then version 3.4.5",
			want:   ToolVersion{3, 4, 5},
		},
		{
			name:   "leading zeros",
			output: "version 017.00.006",
			want:   ToolVersion{17, 0, 6},
		},
		{
			name:    "no version",
			output:  "clang-tidy: unknown argument",
			wantErr: ErrNoVersion,
		},
		{
			name:    "two components only",
			output:  "LLVM version 17.0",
			wantErr: ErrNoVersion,
		},
		{
			name:    "marker without space",
			output:  "LLVMversion17.0.6",
			wantErr: ErrNoVersion,
		},
		{
			name:    "empty",
			output:  "",
			wantErr: ErrNoVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseVersion(tt.output)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseVersion() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseVersion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseVersion_Overflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		output    string
		component string
	}{
		{"version 256.0.0", "major"},
		{"version 1.300.0", "minor"},
		{"version 1.2.99999999999999999999999", "patch"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			t.Parallel()

			_, err := ParseVersion(tt.output)
			var overflow *VersionOverflowError
			if !errors.As(err, &overflow) {
				t.Fatalf("ParseVersion() error = %v, want *VersionOverflowError", err)
			}
			if overflow.Component != tt.component {
				t.Errorf("Component = %q, want %q", overflow.Component, tt.component)
			}
		})
	}
}

func TestToolVersion_String(t *testing.T) {
	t.Parallel()

	v := ToolVersion{Major: 17, Minor: 0, Patch: 6}
	if got := v.String(); got != "17.0.6" {
		t.Errorf("String() = %q", got)
	}
	if got := v.Semver(); got != "v17.0.6" {
		t.Errorf("Semver() = %q", got)
	}
}

func TestParseVersionProperties(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("every uint8 triple round-trips", prop.ForAll(
		func(major, minor, patch uint8, prefix string) bool {
			out := fmt.Sprintf("%s version %d.%d.%d\n", prefix, major, minor, patch)
			got, err := ParseVersion(out)
			return err == nil && got == ToolVersion{major, minor, patch}
		},
		gen.UInt8(),
		gen.UInt8(),
		gen.UInt8(),
		gen.AlphaString(),
	))

	properties.Property("components above 255 overflow", prop.ForAll(
		func(major uint, minor, patch uint8) bool {
			_, err := ParseVersion(fmt.Sprintf("version %d.%d.%d", major, minor, patch))
			var overflow *VersionOverflowError
			return errors.As(err, &overflow) && overflow.Component == "major"
		},
		gen.UIntRange(256, 1<<20),
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
