// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the run-clang-tidy command line: the root command that
// analyzes the files selected by a configuration document, and the schema
// subcommand.
package cmd
