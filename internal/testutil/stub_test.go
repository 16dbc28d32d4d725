// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestStubTool(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	log := filepath.Join(dir, "calls.log")
	tool := StubTool{
		InvocationLog: log,
		Rules: []StubRule{
			{Suffix: "fail.c", Stderr: "error: it's broken", Exit: 1},
		},
	}.Write(t, dir, "clang-tidy")

	out, err := exec.Command(tool, "--version").Output()
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(string(out), "LLVM version "+DefaultStubVersion) {
		t.Errorf("--version output = %q", out)
	}

	if err := exec.Command(tool, "ok.c", "-p=build").Run(); err != nil {
		t.Errorf("ok.c failed: %v", err)
	}

	cmd := exec.Command(tool, "src/fail.c", "-p=build")
	stderr, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatal("fail.c should exit non-zero")
	}
	if !strings.Contains(string(stderr), "it's broken") {
		t.Errorf("stderr = %q", stderr)
	}

	calls := MustReadFile(t, log)
	if strings.Count(calls, "\n") != 2 || !strings.Contains(calls, "ok.c -p=build") {
		t.Errorf("invocation log = %q", calls)
	}
}
