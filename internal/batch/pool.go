// SPDX-License-Identifier: MPL-2.0

package batch

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool fixes the number of concurrent invocations for a run.
type Pool struct {
	width int
}

// NewPool creates a pool for the requested number of jobs. A nil request uses
// all logical processors and zero is raised to one.
func NewPool(jobs *int) *Pool {
	switch {
	case jobs == nil:
		return &Pool{width: runtime.NumCPU()}
	case *jobs < 1:
		return &Pool{width: 1}
	default:
		return &Pool{width: *jobs}
	}
}

// Width returns the number of concurrent invocations.
func (p *Pool) Width() int {
	return p.width
}

// group returns an errgroup limited to the pool width.
func (p *Pool) group() *errgroup.Group {
	g := &errgroup.Group{}
	g.SetLimit(p.width)
	return g
}
