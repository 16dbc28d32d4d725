// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"run-clang-tidy/internal/issue"
)

// FileName is the name of the staged file inside the tidy root.
const FileName = ".clang-tidy"

// ErrStage is wrapped by errors caused by a conflicting destination or a
// failed copy.
var ErrStage = errors.New("failed to stage tidy file")

// Staged is a tidy file copied into a tidy root.
type Staged struct {
	path string
	once sync.Once
}

// Destination returns the path the tidy file is staged to inside dstRoot.
func Destination(dstRoot string) string {
	return filepath.Join(dstRoot, FileName)
}

// Stage copies src to FileName inside dstRoot.
//
// When the destination already exists with identical content, nothing is
// staged and Stage returns nil without error. When its content differs, the
// destination is left untouched and an error naming both files is returned.
func Stage(src, dstRoot string) (*Staged, error) {
	dst := Destination(dstRoot)

	if _, err := os.Lstat(dst); err == nil {
		slog.Warn("encountered existing tidy file", "path", dst)
		return nil, compare(src, dst)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, stageError("inspect existing tidy file", dst, err,
			fmt.Sprintf("Please check the permissions for the folder %s", dstRoot))
	}

	if err := copyFile(src, dst); err != nil {
		return nil, stageError("copy tidy file", dstRoot, err,
			fmt.Sprintf("Please check the permissions for the folder %s", dstRoot))
	}

	slog.Debug("staged tidy file", "src", src, "dst", dst)
	return &Staged{path: dst}, nil
}

// Path returns the staged file, or "" for a nil handle.
func (s *Staged) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Release removes the staged file. Only the first call has an effect and
// failures, e.g. a file that was already removed, are logged and dropped.
func (s *Staged) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if err := os.Remove(s.path); err != nil {
			slog.Debug("failed to remove staged tidy file", "path", s.path, "error", err)
			return
		}
		slog.Debug("removed staged tidy file", "path", s.path)
	})
}

func compare(src, dst string) error {
	want, err := os.ReadFile(src)
	if err != nil {
		return stageError("read tidy file", src, err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		return stageError("compare existing tidy file", dst, err,
			fmt.Sprintf("Please delete or fix the existing tidy file %s", dst))
	}
	if bytes.Equal(want, got) {
		return nil
	}
	return stageError("stage tidy file", dst,
		fmt.Errorf("existing tidy file %s does not match provided tidy file %s", dst, src),
		fmt.Sprintf("Please either delete the file %s or align the contents with %s", dst, src))
}

// copyFile copies src to dst, failing if dst exists. A partially written
// destination is removed.
func copyFile(src, dst string) (err error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file: %w", err)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer func() {
		if closeErr := dstFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close destination file: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	if _, err = io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	return nil
}

func stageError(operation, resource string, cause error, suggestions ...string) error {
	ec := issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		Wrap(fmt.Errorf("%w: %w", ErrStage, cause))
	for _, s := range suggestions {
		ec.WithSuggestion(s)
	}
	return ec.BuildError()
}
