// SPDX-License-Identifier: MPL-2.0

// Package stage places a tidy file into a tidy root for the duration of a run
// so that the analysis tool discovers it, and removes it again afterwards.
//
// Staging follows an acquire/release pattern: Stage returns a handle whose
// Release must be deferred by the caller immediately after a successful call.
// Release is safe to call on a nil handle and runs at most once.
package stage
