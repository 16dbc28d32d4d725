// SPDX-License-Identifier: MPL-2.0

package batch

import (
	"errors"
	"fmt"
	"strings"

	"run-clang-tidy/internal/runtime"
)

// Outcome kinds.
const (
	KindOk Kind = iota
	KindWarning
	KindError
)

// ErrExecution is wrapped by the error of every Error outcome.
var ErrExecution = errors.New("execution failed")

type (
	// Kind classifies a single invocation.
	Kind int

	// Outcome is the classified result for one file.
	Outcome struct {
		// Path is the canonical path of the analyzed file.
		Path string
		Kind Kind
		// Message carries the diagnostics for Warning and Error outcomes.
		Message string
		// Err is set for Error outcomes and wraps ErrExecution.
		Err error
	}
)

// String returns the label used in progress output.
func (k Kind) String() string {
	switch k {
	case KindOk:
		return "Ok"
	case KindWarning:
		return "Warning"
	case KindError:
		return "Error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Classify maps a process result onto an outcome for path.
//
//   - spawn failures, non-zero exits and signals are errors;
//   - a clean exit with output on stderr is a warning unless ignoreWarnings is set;
//   - anything else is ok.
func Classify(path string, res *runtime.Result, ignoreWarnings bool) Outcome {
	var reason string
	switch {
	case res.Error != nil:
		return errorOutcome(path, res.Error.Error(), res.Error)
	case res.Signaled:
		reason = "Process terminated by signal"
	case !res.ExitCode.IsSuccess():
		reason = fmt.Sprintf("Process terminated with code %d", res.ExitCode)
	case res.ErrOutput != "" && !ignoreWarnings:
		return Outcome{Path: path, Kind: KindWarning, Message: dump("warnings encountered", res)}
	default:
		return Outcome{Path: path, Kind: KindOk}
	}

	msg := reason
	if res.ErrOutput != "" {
		msg = dump(reason, res)
	}
	return errorOutcome(path, msg, errors.New(reason))
}

func errorOutcome(path, msg string, cause error) Outcome {
	return Outcome{
		Path:    path,
		Kind:    KindError,
		Message: msg,
		Err:     fmt.Errorf("%w: %s: %w", ErrExecution, path, cause),
	}
}

// dump renders a headline followed by stderr and stdout.
func dump(headline string, res *runtime.Result) string {
	var sb strings.Builder
	sb.WriteString(headline)
	sb.WriteString("\n---\n")
	sb.WriteString(res.ErrOutput)
	sb.WriteString("---\n")
	sb.WriteString(res.Output)
	return sb.String()
}
