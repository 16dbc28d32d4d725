// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"run-clang-tidy/internal/issue"
)

var (
	// ErrConfig is wrapped by errors caused by a malformed or missing
	// configuration document, or by malformed override values.
	ErrConfig = errors.New("invalid configuration")

	// ErrResolution is wrapped by errors caused by settings that cannot be
	// combined: a missing build root or an unpaired tidy file or tidy root.
	ErrResolution = errors.New("configuration cannot be resolved")
)

// configError builds an actionable error whose cause wraps ErrConfig.
func configError(operation, resource string, cause error, suggestions ...string) error {
	return actionable(operation, resource, fmt.Errorf("%w: %w", ErrConfig, cause), suggestions)
}

// Settings a ResolutionError can refer to.
const (
	SettingTidy      = "tidy"
	SettingBuildRoot = "buildRoot"
)

// ResolutionError reports a setting that cannot be resolved. It wraps
// ErrResolution for errors.Is() compatibility.
type ResolutionError struct {
	Setting string
	Reason  string
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrResolution, e.Reason)
}

// Unwrap returns ErrResolution so callers can use errors.Is for programmatic detection.
func (e *ResolutionError) Unwrap() error { return ErrResolution }

// resolutionError builds an actionable error whose cause is a ResolutionError.
func resolutionError(setting, operation, resource, reason string, suggestions ...string) error {
	return actionable(operation, resource, &ResolutionError{Setting: setting, Reason: reason}, suggestions)
}

func actionable(operation, resource string, cause error, suggestions []string) error {
	ec := issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		Wrap(cause)
	for _, s := range suggestions {
		ec.WithSuggestion(s)
	}
	return ec.BuildError()
}
