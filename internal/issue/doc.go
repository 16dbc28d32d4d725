// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the offending file, field or
// flag, and remediation hints. The catalog in issue.go holds Markdown guidance
// for the failure classes a clang-tidy run can hit; the CLI renders it with
// glamour when running verbosely.
package issue
