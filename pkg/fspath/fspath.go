// SPDX-License-Identifier: MPL-2.0

// Package fspath provides the path predicates and validators used while
// resolving configuration: existence and type checks, name/extension checks
// for auxiliary configuration files, and resolution of executable names that
// may either be looked up in the search path or point to a concrete file.
package fspath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"run-clang-tidy/pkg/platform"
)

// ErrValidation is the sentinel error wrapped by ValidationError.
var ErrValidation = errors.New("invalid path")

// ValidationError is returned when a path does not satisfy a file, directory
// or executable check. It wraps ErrValidation for errors.Is() compatibility.
type ValidationError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("'%s' %s", e.Path, e.Reason)
}

// Unwrap returns ErrValidation so callers can use errors.Is for programmatic detection.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Exists reports whether anything exists at path (following symlinks).
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path is an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileOrErr returns path unchanged if it is an existing regular file.
func FileOrErr(path string) (string, error) {
	if !IsFile(path) {
		return "", &ValidationError{Path: path, Reason: "is not a file (not found or permission denied)"}
	}
	return path, nil
}

// DirOrErr returns path unchanged if it is an existing directory.
func DirOrErr(path string) (string, error) {
	if !IsDir(path) {
		return "", &ValidationError{Path: path, Reason: "is not a directory"}
	}
	return path, nil
}

// FileWithExt checks that path is an existing file whose extension equals
// ext, compared case-insensitively. ext may be given with or without the
// leading dot.
func FileWithExt(path, ext string) (string, error) {
	if _, err := FileOrErr(path); err != nil {
		return "", err
	}
	want := strings.TrimPrefix(ext, ".")
	got := strings.TrimPrefix(filepath.Ext(path), ".")
	if got == "" || !strings.EqualFold(got, want) {
		return "", &ValidationError{Path: path, Reason: fmt.Sprintf("does not have the expected extension '%s'", want)}
	}
	return path, nil
}

// HasNameOrExtension checks that path is an existing file that is either
// named nameOrExt (e.g. ".clang-tidy") or carries it as extension
// (e.g. "named.clang-tidy"). Both comparisons ignore case.
func HasNameOrExtension(path, nameOrExt string) (string, error) {
	if _, err := FileOrErr(path); err != nil {
		return "", err
	}
	if strings.EqualFold(filepath.Base(path), nameOrExt) {
		return path, nil
	}
	if _, err := FileWithExt(path, nameOrExt); err == nil {
		return path, nil
	}
	return "", &ValidationError{
		Path:   path,
		Reason: fmt.Sprintf("does not have the name or extension '%s'", nameOrExt),
	}
}

// IsBareName reports whether path consists of a single file name without any
// directory component, e.g. "clang-tidy" but not "./clang-tidy".
func IsBareName(path string) bool {
	return path != "" && path != "." && path != ".." &&
		!strings.ContainsAny(path, `/\`) && filepath.Base(path) == path
}

// ResolveExecutableOrName resolves a command given either as a bare name or as
// a path. Bare names are returned unchanged for a later search-path lookup.
// Relative paths are resolved against root (or the working directory when
// root is empty) and must exist; absolute paths must exist. When the literal
// path is not found, the platform executable extension is tried as fallback.
func ResolveExecutableOrName(path, root string) (string, error) {
	return resolveExecutableOrName(path, root, platform.ExecutableExt())
}

func resolveExecutableOrName(path, root, ext string) (string, error) {
	first, err := nameOrExisting(path, root)
	if err == nil {
		return first, nil
	}

	if ext != "" {
		withExt := strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
		if resolved, extErr := nameOrExisting(withExt, root); extErr == nil {
			return resolved, nil
		}
	}
	return "", err
}

func nameOrExisting(path, root string) (string, error) {
	if filepath.IsAbs(path) {
		if !Exists(path) {
			return "", &ValidationError{Path: path, Reason: "does not exist"}
		}
		return path, nil
	}

	// bare names are left for the search path
	if IsBareName(path) {
		return path, nil
	}

	full := path
	if root != "" {
		full = filepath.Join(root, path)
	}
	if !Exists(full) {
		return "", &ValidationError{Path: path, Reason: "does not exist"}
	}
	return full, nil
}

// Canonical returns the absolute, symlink-free form of path.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks: %w", err)
	}
	return resolved, nil
}

// Within returns path relative to root when path lies beneath root, or path
// unchanged otherwise (including when root is empty).
func Within(path, root string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
