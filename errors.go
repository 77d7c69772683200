// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import "errors"

var (
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema YAML/JSON decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrSchemaNode is returned when a schema node is not a mapping.
	ErrSchemaNode = errors.New("schema node must be a mapping")
	// ErrSchemaProperties is returned when schema properties value is not a mapping.
	ErrSchemaProperties = errors.New("schema properties must be a mapping")
	// ErrTupleItems is returned when schema items value is a list of schemas.
	ErrTupleItems = errors.New("tuple-typed items are not supported")
	// ErrReadEndpointFile is returned when endpoint definition file loading fails.
	ErrReadEndpointFile = errors.New("read endpoint file")
	// ErrDecodeEndpoint is returned when endpoint definition decoding fails.
	ErrDecodeEndpoint = errors.New("decode endpoint")
	// ErrDecodeExample is returned when example payload decoding fails.
	ErrDecodeExample = errors.New("decode example")
	// ErrEncodeExample is returned when example payload JSON encoding fails.
	ErrEncodeExample = errors.New("encode example json")
	// ErrRenderMarkdown is returned when markdown conversion fails.
	ErrRenderMarkdown = errors.New("render markdown")
	// ErrRenderHTML is returned when HTML tree serialization fails.
	ErrRenderHTML = errors.New("render html")
)
