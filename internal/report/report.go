// SPDX-License-Identifier: MPL-2.0

package report

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"run-clang-tidy/internal/batch"
)

// ErrAggregate is returned by Report.Err when at least one file failed.
var ErrAggregate = errors.New("execution failed for one or more files")

type (
	// Entry is a retained warning or failure.
	Entry struct {
		Path    string
		Message string
	}

	// Report is the aggregated result of a run. Warnings and Failures keep
	// completion order; use the set accessors for order independent views.
	Report struct {
		Warnings []Entry
		Failures []Entry
		OkCount  int
	}

	// Aggregator accumulates outcomes into a Report. It is not safe for
	// concurrent use; feed it from the goroutine draining the outcome stream.
	Aggregator struct {
		report Report
	}
)

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add records a single outcome.
func (a *Aggregator) Add(o batch.Outcome) {
	switch o.Kind {
	case batch.KindOk:
		a.report.OkCount++
	case batch.KindWarning:
		a.report.Warnings = append(a.report.Warnings, Entry{Path: o.Path, Message: o.Message})
	default:
		a.report.Failures = append(a.report.Failures, Entry{Path: o.Path, Message: o.Message})
	}
}

// Report returns the accumulated report.
func (a *Aggregator) Report() *Report {
	r := a.report
	r.Warnings = slices.Clone(r.Warnings)
	r.Failures = slices.Clone(r.Failures)
	return &r
}

// Aggregate drains outcomes into a Report, calling observe for every outcome
// as it arrives when observe is not nil.
func Aggregate(outcomes <-chan batch.Outcome, observe func(batch.Outcome)) *Report {
	a := NewAggregator()
	for o := range outcomes {
		if observe != nil {
			observe(o)
		}
		a.Add(o)
	}
	return a.Report()
}

// Total returns the number of aggregated outcomes.
func (r *Report) Total() int {
	return r.OkCount + len(r.Warnings) + len(r.Failures)
}

// Success reports whether no file failed. Warnings do not affect the verdict.
func (r *Report) Success() bool {
	return len(r.Failures) == 0
}

// WarningSet returns the sorted paths that produced warnings.
func (r *Report) WarningSet() []string {
	return pathSet(r.Warnings)
}

// FailureSet returns the sorted paths that failed.
func (r *Report) FailureSet() []string {
	return pathSet(r.Failures)
}

// Err returns nil for a successful report, otherwise an error wrapping
// ErrAggregate that lists every failed file with its diagnostics.
func (r *Report) Err() error {
	if r.Success() {
		return nil
	}
	return fmt.Errorf("%w:\n%s", ErrAggregate, strings.TrimRight(Dump(r.Failures, nil), "\n"))
}

// Dump renders entries as "<path>\n<message>" blocks. style, when not nil,
// decorates the path.
func Dump(entries []Entry, style func(string) string) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		p := e.Path
		if style != nil {
			p = style(p)
		}
		blocks = append(blocks, p+"\n"+e.Message)
	}
	return strings.Join(blocks, "\n")
}

// Relative returns a copy of the report with every path rewritten by rel.
func (r *Report) Relative(rel func(string) string) *Report {
	out := &Report{OkCount: r.OkCount}
	out.Warnings = mapEntries(r.Warnings, rel)
	out.Failures = mapEntries(r.Failures, rel)
	return out
}

func mapEntries(entries []Entry, rel func(string) string) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Path: rel(e.Path), Message: e.Message}
	}
	return out
}

func pathSet(entries []Entry) []string {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[e.Path] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}
