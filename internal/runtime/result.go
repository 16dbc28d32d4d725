// SPDX-License-Identifier: MPL-2.0

package runtime

// Result is the outcome of running a Command.
type Result struct {
	// ExitCode is the exit status reported by the process.
	ExitCode ExitCode
	// Signaled is set when the process was terminated by a signal.
	Signaled bool
	// Error is set when the process could not be started or waited for.
	Error error
	// Output contains the captured stdout.
	Output string
	// ErrOutput contains the captured stderr.
	ErrOutput string
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// Success reports whether the process ran and exited with code 0.
func (r *Result) Success() bool {
	return r.Error == nil && !r.Signaled && r.ExitCode.IsSuccess()
}
