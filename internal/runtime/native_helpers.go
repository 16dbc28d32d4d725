// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"errors"
	"os/exec"
)

// capturedOutput holds the stdout and stderr buffers of a single run.
type capturedOutput struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// attach points the command's output streams at the capture buffers.
func (c *capturedOutput) attach(cmd *exec.Cmd) {
	cmd.Stdout = &c.stdout
	cmd.Stderr = &c.stderr
}

// extractExitCode determines the exit code from a command execution error.
// Returns a Result with exit code, output strings (if captured), and any error.
func extractExitCode(err error, captured *capturedOutput) *Result {
	result := &Result{}

	if captured != nil {
		result.Output = captured.stdout.String()
		result.ErrOutput = captured.stderr.String()
	}

	if err == nil {
		return result
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 means the process did not exit on its own
		if exitErr.ExitCode() == -1 {
			result.ExitCode = 1
			result.Signaled = true
			return result
		}
		exitCode := ExitCode(exitErr.ExitCode())
		if validateErr := exitCode.Validate(); validateErr != nil {
			result.ExitCode = 1
			result.Error = validateErr
			return result
		}
		result.ExitCode = exitCode
		return result
	}

	// Some other error (e.g., command not found, permission denied)
	result.ExitCode = 1
	result.Error = err
	return result
}
