// SPDX-License-Identifier: MPL-2.0

// Package execute runs the analysis pipeline for one configuration document:
// resolve the configuration, discover files, probe the executable, stage the
// tidy file, analyze every file and aggregate the outcomes.
//
// Errors before the batch starts abort the run. Errors of individual files
// are collected and reported at the end. A staged tidy file is removed on
// every exit path.
package execute
