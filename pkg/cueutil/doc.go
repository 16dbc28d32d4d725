// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates and decodes JSON documents against embedded CUE
// schemas.
//
// The flow is the same for every document type:
//
//  1. Compile the embedded schema
//  2. Extract the JSON document and unify it with the schema definition
//  3. Validate and decode to a Go struct
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[Document](
//	    schemaBytes,
//	    data,
//	    "#Config",
//	    cueutil.WithFilename("tidy.json"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes the JSON path of the offending field
//	}
//	return result.Value, nil
package cueutil
