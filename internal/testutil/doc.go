// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include environment variable management (MustSetenv),
// file operations (MustChdir, MustMkdirAll, MustWriteFile), a FakeClock for
// deterministic durations, and StubTool, which writes a shell script that
// impersonates clang-tidy.
package testutil
