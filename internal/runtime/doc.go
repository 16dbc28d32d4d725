// SPDX-License-Identifier: MPL-2.0

// Package runtime runs external executables on the host and captures their
// output.
//
// A Command names the executable and its arguments; a Runner executes it and
// reports a Result holding the exit code, captured stdout and stderr, whether
// the process was terminated by a signal, and any error that prevented the
// process from running at all. Cancelling the context passed to Run kills the
// child process.
package runtime
