// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// These benchmarks cover the hot paths of run-clang-tidy:
//   - CUE validation of the configuration document
//   - Glob expansion and filtering over a source tree
//   - Version parsing and outcome aggregation
//   - The end-to-end pipeline with an in-process tool
//
// To generate a PGO profile, run:
//
//	go test ./internal/benchmark -run '^$' -bench . -cpuprofile default.pgo
package benchmark
