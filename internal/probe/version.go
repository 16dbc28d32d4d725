// SPDX-License-Identifier: MPL-2.0

package probe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const versionMarker = "version "

// ErrNoVersion is returned by ParseVersion when no "version X.Y.Z" token is found.
var ErrNoVersion = errors.New("failed to match version")

type (
	// ToolVersion is the major.minor.patch version of the analysis tool.
	ToolVersion struct {
		Major uint8
		Minor uint8
		Patch uint8
	}

	// VersionOverflowError is returned when a version component does not fit
	// into a ToolVersion field.
	VersionOverflowError struct {
		Component string
		Value     string
	}
)

// Error implements the error interface.
func (e *VersionOverflowError) Error() string {
	return fmt.Sprintf("invalid %s version '%s': exceeds %d", e.Component, e.Value, ^uint8(0))
}

// String returns the dotted form, e.g. "17.0.6".
func (v ToolVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Semver returns the version in the "vMAJOR.MINOR.PATCH" form used by
// golang.org/x/mod/semver.
func (v ToolVersion) Semver() string {
	return "v" + v.String()
}

// ParseVersion extracts the version from the output of "--version".
//
// The output is scanned line by line and the first "version X.Y.Z" token
// wins, so banners like "Ubuntu LLVM version 17.0.6" and
// "clang-tidy version 4.0.0 (tags/...)" both parse.
func ParseVersion(output string) (ToolVersion, error) {
	for line := range strings.Lines(output) {
		if v, ok, err := parseLine(line); ok {
			return v, err
		}
	}
	return ToolVersion{}, ErrNoVersion
}

// parseLine returns ok=false when line holds no version token.
func parseLine(line string) (ToolVersion, bool, error) {
	var (
		digits [3]string
		found  bool
	)
	for i := 0; !found; {
		idx := strings.Index(line[i:], versionMarker)
		if idx < 0 {
			break
		}
		i += idx + len(versionMarker)
		digits, found = scanTriple(line[i:])
	}
	if !found {
		return ToolVersion{}, false, nil
	}

	var v ToolVersion
	components := []struct {
		name string
		dst  *uint8
	}{
		{"major", &v.Major},
		{"minor", &v.Minor},
		{"patch", &v.Patch},
	}
	for i, c := range components {
		n, err := strconv.ParseUint(digits[i], 10, 8)
		if err != nil {
			return ToolVersion{}, true, &VersionOverflowError{Component: c.name, Value: digits[i]}
		}
		*c.dst = uint8(n)
	}
	return v, true, nil
}

// scanTriple reads "<digits>.<digits>.<digits>" from the start of s.
func scanTriple(s string) ([3]string, bool) {
	var out [3]string
	pos := 0
	for i := range out {
		if i > 0 {
			if pos >= len(s) || s[pos] != '.' {
				return out, false
			}
			pos++
		}
		start := pos
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		if pos == start {
			return out, false
		}
		out[i] = s[start:pos]
	}
	return out, true
}
