// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// It centralizes GOOS names and the executable-suffix convention used when
// resolving tool names that may or may not carry a platform extension.
package platform
