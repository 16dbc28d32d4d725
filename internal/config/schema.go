// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/encoding/jsonschema"
)

// Schema returns the JSON Schema describing the configuration document,
// generated from the embedded CUE definition.
func Schema(version string) ([]byte, error) {
	ctx := cuecontext.New()
	compiled := ctx.CompileBytes(configSchema)
	if err := compiled.Err(); err != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", err)
	}

	expr, err := jsonschema.Generate(compiled.LookupPath(cue.ParsePath(schemaDefinition)), &jsonschema.GenerateConfig{
		Version: jsonschema.VersionDraft2020_12,
	})
	if err != nil {
		return nil, fmt.Errorf("generating schema: %w", err)
	}
	if st, ok := expr.(*ast.StructLit); ok {
		st.Elts = append(st.Elts,
			&ast.Field{Label: ast.NewString("title"), Value: ast.NewString("run-clang-tidy configuration")},
			&ast.Field{Label: ast.NewString("description"), Value: ast.NewString("Configuration file of run-clang-tidy " + version)},
		)
	}

	doc := ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return nil, fmt.Errorf("building schema: %w", err)
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding schema: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting schema: %w", err)
	}
	return out.Bytes(), nil
}
