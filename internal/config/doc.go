// SPDX-License-Identifier: MPL-2.0

// Package config loads the JSON configuration document and resolves it,
// together with invocation-time overrides, into the EffectiveConfig of a run.
//
// The document is validated against the closed CUE definition #Config in
// config_schema.cue, so unknown fields and wrong types are rejected with
// messages that name the offending field. Overrides come from command-line
// flags and RUN_CLANG_TIDY_* environment variables, bound through Viper.
//
// Relative paths in the document are resolved against the directory that
// contains the document. Relative override paths are resolved against the
// working directory.
package config
