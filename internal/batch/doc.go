// SPDX-License-Identifier: MPL-2.0

// Package batch runs the analysis tool once per file on a fixed-width worker
// pool and classifies every invocation as Ok, Warning or Error.
//
// The batch is fail-slow: a failing file never stops the others, and every
// file yields exactly one Outcome.
package batch
