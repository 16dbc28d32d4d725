// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// DefaultStubVersion is the version a StubTool reports unless configured.
const DefaultStubVersion = "17.0.6"

type (
	// StubTool describes a shell script standing in for clang-tidy.
	//
	// On "--version" it prints an LLVM style banner. Otherwise it appends its
	// arguments to InvocationLog (when set) and applies the first Rule whose
	// Suffix matches the analyzed file; files without a rule succeed silently.
	StubTool struct {
		// Version is printed as "LLVM version <Version>"; empty means DefaultStubVersion.
		Version string
		// VersionOutput replaces the whole --version output when set.
		VersionOutput string
		// VersionExit is the exit code of the --version call.
		VersionExit int
		// InvocationLog receives one line per analyzed file.
		InvocationLog string
		// Rules decide the outcome per file.
		Rules []StubRule
	}

	// StubRule selects the behavior for files ending in Suffix.
	StubRule struct {
		Suffix string
		Stdout string
		Stderr string
		Exit   int
		// Sleep delays the answer, in seconds.
		Sleep int
	}
)

// Write stores the script as dir/name and returns its path.
func (s StubTool) Write(t testing.TB, dir, name string) string {
	t.Helper()
	SkipOnWindows(t)

	path := filepath.Join(dir, name)
	MustMkdirAll(t, dir)
	if err := os.WriteFile(path, []byte(s.Script()), 0o755); err != nil {
		t.Fatalf("failed to write stub tool %s: %v", path, err)
	}
	return path
}

// Script renders the stub as POSIX shell script.
func (s StubTool) Script() string {
	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n")

	version := s.VersionOutput
	if version == "" {
		v := s.Version
		if v == "" {
			v = DefaultStubVersion
		}
		version = "LLVM (http://llvm.org/):\n  LLVM version " + v + "\n  Optimized build."
	}
	sb.WriteString("if [ \"$1\" = \"--version\" ]; then\n")
	fmt.Fprintf(&sb, "  printf '%%s\\n' %s\n", shellQuote(version))
	fmt.Fprintf(&sb, "  exit %d\nfi\n", s.VersionExit)

	if s.InvocationLog != "" {
		fmt.Fprintf(&sb, "echo \"$@\" >> %s\n", shellQuote(s.InvocationLog))
	}

	if len(s.Rules) > 0 {
		sb.WriteString("case \"$1\" in\n")
		for _, r := range s.Rules {
			fmt.Fprintf(&sb, "  *%s)\n", shellQuote(r.Suffix))
			if r.Sleep > 0 {
				fmt.Fprintf(&sb, "    sleep %d\n", r.Sleep)
			}
			if r.Stdout != "" {
				fmt.Fprintf(&sb, "    printf '%%s\\n' %s\n", shellQuote(r.Stdout))
			}
			if r.Stderr != "" {
				fmt.Fprintf(&sb, "    printf '%%s\\n' %s >&2\n", shellQuote(r.Stderr))
			}
			fmt.Fprintf(&sb, "    exit %d\n    ;;\n", r.Exit)
		}
		sb.WriteString("esac\n")
	}
	sb.WriteString("exit 0\n")
	return sb.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
