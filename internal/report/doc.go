// SPDX-License-Identifier: MPL-2.0

// Package report folds per-file outcomes into the final verdict of a run.
package report
