// SPDX-License-Identifier: MPL-2.0

// Package discovery expands the configured glob patterns into the set of
// source files to analyze.
//
// Patterns use doublestar syntax ("**" matches any number of folders) and are
// relative to a root directory unless absolute. Two filters narrow the result:
//
//   - the pre-filter is applied while walking: a matching folder is skipped
//     together with everything beneath it, a matching file is skipped;
//   - the post-filter is applied to the expanded files and removes only the
//     matching entries.
//
// Pre-filter patterns match either the entry name or its slash-separated
// path relative to the root, so ".git" skips every ".git" folder. The folders
// leading to a glob's base are checked as well. Filtered counts each pruned
// path once, however many globs reached it.
// Post-filter patterns match the path relative to the root, so ".git" filters
// nothing while ".git/**" does.
package discovery
