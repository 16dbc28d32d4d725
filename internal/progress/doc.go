// SPDX-License-Identifier: MPL-2.0

// Package progress prints the numbered pipeline steps and one line per
// analyzed file. All writes go through a single mutex so that lines from
// concurrent workers never interleave.
package progress
