// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"run-clang-tidy/pkg/fspath"
	"run-clang-tidy/pkg/platform"
)

// Names of the fields a PatternError can refer to.
const (
	FieldPaths      = "paths"
	FieldFilterPre  = "filterPre"
	FieldFilterPost = "filterPost"
)

// ErrPattern is the sentinel error wrapped by PatternError.
var ErrPattern = errors.New("invalid glob pattern")

// DefaultFilterPre skips hidden files and folders.
var DefaultFilterPre = []string{".*"}

type (
	// PatternError reports a malformed glob together with the field it came from.
	PatternError struct {
		Field   string
		Pattern string
	}

	// Request describes a discovery run.
	Request struct {
		// Root is the directory relative patterns are resolved against.
		Root string
		// Globs select the candidate files.
		Globs []string
		// FilterPre prunes the traversal. Callers pass DefaultFilterPre when
		// nothing is configured; an empty list disables pre-filtering.
		FilterPre []string
		// FilterPost removes individual files after expansion.
		FilterPost []string
	}

	// Result is the outcome of a discovery run.
	Result struct {
		// Files are the canonical paths of the kept regular files, sorted and
		// free of duplicates.
		Files []string
		// Filtered counts the entries removed by either filter.
		Filtered int
	}

	// walker expands a single glob.
	walker struct {
		// docRoot is the root filters are matched relative to.
		docRoot    string
		base       string
		pattern    string
		maxDepth   int
		filterPre  []string
		caseFold   bool
		candidates map[string]struct{}
		// pruned is shared by all walkers so that a path skipped by several
		// overlapping globs is counted once.
		pruned map[string]struct{}
	}
)

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("%s: invalid glob pattern '%s'", e.Field, e.Pattern)
}

// Unwrap returns ErrPattern so callers can use errors.Is for programmatic detection.
func (e *PatternError) Unwrap() error { return ErrPattern }

// Discover expands req.Globs and applies both filters.
func Discover(req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	caseFold := platform.IsWindows()
	candidates := make(map[string]struct{})
	pruned := make(map[string]struct{})

	for _, glob := range req.Globs {
		w := newWalker(req.Root, glob, req.FilterPre, caseFold, candidates, pruned)
		if err := w.walk(); err != nil {
			return nil, err
		}
	}
	filtered := len(pruned)

	files := make([]string, 0, len(candidates))
	for candidate := range candidates {
		// directories and broken links are dropped silently
		if !fspath.IsFile(candidate) {
			continue
		}
		if matchAny(req.FilterPost, relativeSlash(req.Root, candidate), caseFold) {
			filtered++
			continue
		}
		canonical, err := fspath.Canonical(candidate)
		if err != nil {
			slog.Debug("skipping path that cannot be canonicalized", "path", candidate, "error", err)
			continue
		}
		files = append(files, canonical)
	}

	slices.Sort(files)
	return &Result{Files: slices.Compact(files), Filtered: filtered}, nil
}

func validate(req Request) error {
	fields := []struct {
		name     string
		patterns []string
	}{
		{FieldPaths, req.Globs},
		{FieldFilterPre, req.FilterPre},
		{FieldFilterPost, req.FilterPost},
	}
	for _, f := range fields {
		for _, p := range f.patterns {
			if p == "" || !doublestar.ValidatePattern(filepath.ToSlash(p)) {
				return &PatternError{Field: f.name, Pattern: p}
			}
		}
	}
	return nil
}

func newWalker(root, glob string, filterPre []string, caseFold bool, candidates, pruned map[string]struct{}) *walker {
	base, pattern := doublestar.SplitPattern(filepath.ToSlash(glob))
	base = filepath.FromSlash(base)
	if !filepath.IsAbs(base) {
		base = filepath.Join(root, base)
	}

	maxDepth := -1
	if !strings.Contains(pattern, "**") {
		maxDepth = strings.Count(pattern, "/") + 1
	}

	return &walker{
		docRoot:    root,
		base:       base,
		pattern:    pattern,
		maxDepth:   maxDepth,
		filterPre:  filterPre,
		caseFold:   caseFold,
		candidates: candidates,
		pruned:     pruned,
	}
}

func (w *walker) walk() error {
	if _, err := os.Stat(w.base); err != nil {
		slog.Debug("glob base does not exist", "base", w.base, "pattern", w.pattern)
		return nil
	}
	if w.basePruned() {
		return nil
	}

	return fs.WalkDir(os.DirFS(w.base), ".", func(rel string, d fs.DirEntry, err error) error {
		if rel == "." {
			return err
		}
		full := filepath.Join(w.base, filepath.FromSlash(rel))
		if err != nil {
			slog.Debug("skipping unreadable path", "path", full, "error", err)
			return nil
		}

		if w.prune(full) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if match(w.pattern, rel, w.caseFold) {
			w.candidates[full] = struct{}{}
		}

		if d.IsDir() && w.maxDepth >= 0 && strings.Count(rel, "/")+1 >= w.maxDepth {
			return fs.SkipDir
		}
		return nil
	})
}

// basePruned applies the pre-filter to the glob base and to every folder
// between the root and the base.
func (w *walker) basePruned() bool {
	rel, err := filepath.Rel(w.docRoot, w.base)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	dir := w.docRoot
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		dir = filepath.Join(dir, part)
		if w.prune(dir) {
			return true
		}
	}
	return false
}

// prune reports whether the pre-filter matches the name of full or its path
// relative to the root, and records the match.
func (w *walker) prune(full string) bool {
	if !matchAny(w.filterPre, filepath.Base(full), w.caseFold) &&
		!matchAny(w.filterPre, relativeSlash(w.docRoot, full), w.caseFold) {
		return false
	}
	w.pruned[full] = struct{}{}
	return true
}

func match(pattern, name string, caseFold bool) bool {
	if caseFold {
		pattern, name = strings.ToLower(pattern), strings.ToLower(name)
	}
	return doublestar.MatchUnvalidated(pattern, name)
}

func matchAny(patterns []string, name string, caseFold bool) bool {
	for _, p := range patterns {
		if match(filepath.ToSlash(p), name, caseFold) {
			return true
		}
	}
	return false
}

// relativeSlash returns p relative to root in slash form, or p itself in
// slash form when it cannot be made relative.
func relativeSlash(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}
