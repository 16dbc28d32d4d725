// SPDX-License-Identifier: MPL-2.0

package progress

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestPrinter_Steps(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, 3)
	p.Step("Found %d files", 4)
	p.Step("Using build root %s", "build")
	p.Finished(1500 * time.Millisecond)

	out := buf.String()
	for _, want := range []string{"1/3 ]", "Found 4 files", "2/3 ]", "Using build root build", "3/3 ]", "Finished in 1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestPrinter_FilesDoNotInterleave(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, 6)
	const n = 50
	p.Start(n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Go(func() {
			p.File(Label(i%3), fmt.Sprintf("src/file%02d.c", i))
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != n {
		t.Fatalf("got %d lines, want %d", len(lines), n)
	}
	for _, line := range lines {
		if strings.Count(line, "src/file") != 1 || !strings.Contains(line, fmt.Sprintf("/%d", n)) {
			t.Errorf("malformed line %q", line)
		}
	}
	if !strings.Contains(buf.String(), fmt.Sprintf("%d/%d", n, n)) {
		t.Errorf("final counter %d/%d missing", n, n)
	}
}

func TestPrinter_Labels(t *testing.T) {
	t.Parallel()

	for label, want := range map[Label]string{LabelOk: "Ok", LabelWarning: "Warning", LabelError: "Error"} {
		if got := renderLabel(label); !strings.Contains(got, want) {
			t.Errorf("renderLabel(%d) = %q, want it to contain %q", label, got, want)
		}
	}
}

func TestPrinter_NilWriter(t *testing.T) {
	t.Parallel()

	p := New(nil, 1)
	p.Step("discarded")
	p.Cleanup("x")
}
