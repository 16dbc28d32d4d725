// SPDX-License-Identifier: MPL-2.0

// Package probe validates the analysis executable by running it with
// "--version" and parsing the reported version. The parsed version gates
// optional capabilities of the tool.
package probe
