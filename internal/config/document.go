// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"run-clang-tidy/pkg/cueutil"
	"run-clang-tidy/pkg/fspath"
)

const (
	// DocumentExt is the required extension of the configuration document.
	DocumentExt = "json"
	// DefaultCommand is used when neither the document nor an override names one.
	DefaultCommand = "clang-tidy"
	// TidyFileName is the name clang-tidy looks for in the parent folders of a file.
	TidyFileName = ".clang-tidy"

	schemaDefinition = "#Config"
)

//go:embed config_schema.cue
var configSchema []byte

// Document holds the settings read from the configuration document.
// Its path-valued fields are kept as written; use Resolve to turn them into
// validated paths.
type Document struct {
	Schema     string    `json:"$schema,omitempty"`
	Paths      []string  `json:"paths"`
	FilterPre  *[]string `json:"filterPre,omitempty"`
	FilterPost []string  `json:"filterPost,omitempty"`
	TidyFile   string    `json:"tidyFile,omitempty"`
	TidyRoot   string    `json:"tidyRoot,omitempty"`
	BuildRoot  string    `json:"buildRoot,omitempty"`
	Command    string    `json:"command,omitempty"`

	// Root is the canonical directory containing the document.
	Root string `json:"-"`
	// Name is the document path as it was given.
	Name string `json:"-"`
}

// Load reads and validates the configuration document at path.
func Load(path string) (*Document, error) {
	const op = "load configuration"

	if _, err := fspath.FileWithExt(path, DocumentExt); err != nil {
		return nil, configError(op, path, err,
			"Provide the path to an existing ."+DocumentExt+" configuration file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError(op, path, fmt.Errorf("reading file: %w", err),
			"Check the access permissions of the configuration file")
	}

	result, err := cueutil.ParseAndDecode[Document](configSchema, data, schemaDefinition,
		cueutil.WithFilename(path))
	if err != nil {
		return nil, configError(op, path, err,
			fmt.Sprintf("Make sure that '%s' is a valid .json file and its content matches the schema", path),
			"Print the schema with 'run-clang-tidy schema'")
	}

	canonical, err := fspath.Canonical(path)
	if err != nil {
		return nil, configError(op, path, err)
	}

	doc := result.Value
	doc.Root = filepath.Dir(canonical)
	doc.Name = path
	return doc, nil
}

// HasFilterPre reports whether the document configures a pre-filter,
// including an explicitly empty one.
func (d *Document) HasFilterPre() bool {
	return d.FilterPre != nil
}

// resolve returns path unchanged if it is absolute, or joined with the
// document root otherwise.
func (d *Document) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.Root, filepath.FromSlash(path))
}
