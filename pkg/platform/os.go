// SPDX-License-Identifier: MPL-2.0

package platform

import goruntime "runtime"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// IsWindows reports whether the current process runs on Windows.
func IsWindows() bool {
	return goruntime.GOOS == Windows
}

// ExecutableExt returns the extension (without the leading dot) that
// executables carry on the current platform, or "" where none is used.
func ExecutableExt() string {
	return executableExtFor(goruntime.GOOS)
}

func executableExtFor(goos string) string {
	if goos == Windows {
		return "exe"
	}
	return ""
}
