// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSchemaKeepsPropertyOrder(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"yaml": "type: object\nproperties:\n  zeta: {type: string}\n  alpha: {type: integer}\n  mid: {}\n",
		"json": `{"type":"object","properties":{"zeta":{"type":"string"},"alpha":{"type":"integer"},"mid":{}}}`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			schema, err := ParseSchema([]byte(input))
			if err != nil {
				t.Fatalf("ParseSchema: %v", err)
			}

			assertEqual(t, schema.Type, "object")
			assertEqual(t, propertyNames(schema), "zeta,alpha,mid")
			assertEqual(t, schema.Properties[0].Schema.Type, "string")
			assertEqual(t, schema.Properties[2].Schema.Type, "")
		})
	}
}

func TestSchemaUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var schema Schema
	data := []byte(`{"description":"Tags","type":"array","items":{"type":"string"},"properties":{"b":{},"a":{}}}`)
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	assertEqual(t, schema.Description, "Tags")
	assertEqual(t, propertyNames(&schema), "b,a")
	if schema.Items == nil || schema.Items.Type != "string" {
		t.Fatalf("items = %+v, want string items", schema.Items)
	}
}

func TestParseSchemaTypeList(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema([]byte(`{"type":["string","null"]}`))
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}

	assertEqual(t, schema.Type, `["string","null"]`)
}

func TestParseSchemaNullKeywords(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema([]byte("type: ~\nproperties:\nitems: null\ndescription: Only text\n"))
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}

	if schema.Type != "" || schema.HasProperties() || schema.Items != nil {
		t.Fatalf("unexpected schema: %+v", schema)
	}

	assertEqual(t, schema.Description, "Only text")
}

func TestParseSchemaNullPropertyIsEmptySchema(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema([]byte("properties:\n  meta:\n  id:\n    type: integer\n"))
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}

	assertEqual(t, propertyNames(schema), "meta,id")
	if schema.Properties[0].Schema == nil || schema.Properties[0].Schema.Type != "" {
		t.Fatalf("meta schema = %+v, want empty schema", schema.Properties[0].Schema)
	}
}

func TestParseSchemaAliases(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema([]byte(`
properties:
  first: &name
    type: string
    description: Shared definition.
  second: *name
`))
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}

	assertEqual(t, schema.Properties[1].Schema.Description, "Shared definition.")
	if schema.Properties[0].Schema == schema.Properties[1].Schema {
		t.Fatal("aliased properties share one schema value")
	}
}

func TestParseSchemaErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  error
		path  string
	}{
		{
			name:  "tuple items",
			input: `{"type":"array","items":[{"type":"string"},{"type":"integer"}]}`,
			want:  ErrTupleItems,
			path:  "$.items",
		},
		{
			name:  "properties sequence",
			input: "properties:\n  - id\n",
			want:  ErrSchemaProperties,
			path:  "$.properties",
		},
		{
			name:  "scalar node",
			input: "properties:\n  id: integer\n",
			want:  ErrSchemaNode,
			path:  "$.properties.id",
		},
		{
			name:  "nested tuple items",
			input: "properties:\n  list:\n    items: [{}, {}]\n",
			want:  ErrTupleItems,
			path:  "$.properties.list.items",
		},
		{
			name:  "mapping description",
			input: "description:\n  text: nope\n",
			want:  ErrDecodeSchema,
			path:  "$.description",
		},
		{
			name:  "root sequence",
			input: "- a\n",
			want:  ErrSchemaNode,
			path:  "$",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseSchema([]byte(tc.input))
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}

			if !errors.Is(err, ErrDecodeSchema) {
				t.Fatalf("error = %v, want wrapped ErrDecodeSchema", err)
			}

			assertContains(t, err.Error(), tc.path)
		})
	}
}

func TestParseSchemaFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(path, []byte(`{"description":"From file"}`), 0o600); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	schema, err := ParseSchemaFile(path)
	if err != nil {
		t.Fatalf("ParseSchemaFile: %v", err)
	}

	assertEqual(t, schema.Description, "From file")

	_, err = ParseSchemaFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrReadSchemaFile) {
		t.Fatalf("error = %v, want ErrReadSchemaFile", err)
	}
}

func TestSchemaHasPropertiesNil(t *testing.T) {
	t.Parallel()

	var schema *Schema
	if schema.HasProperties() {
		t.Fatal("nil schema reports properties")
	}
}

func TestParseSchemaTracksKeywordPresence(t *testing.T) {
	t.Parallel()

	schema, err := ParseSchema([]byte(`{"description":"","properties":{"id":{"type":""},"name":{"type":null,"description":null}}}`))
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}

	if !schema.HasDescription() || schema.HasType() {
		t.Fatalf("root presence: description=%v type=%v", schema.HasDescription(), schema.HasType())
	}

	id := schema.Properties[0].Schema
	if !id.HasType() || id.HasDescription() {
		t.Fatalf("id presence: type=%v description=%v", id.HasType(), id.HasDescription())
	}

	name := schema.Properties[1].Schema
	if name.HasType() || name.HasDescription() || name.Description != "" {
		t.Fatalf("null keywords reported as present: %+v", name)
	}

	if !(&Schema{Type: "string"}).HasType() || (&Schema{}).HasDescription() {
		t.Fatal("presence of literal schema does not follow non-empty values")
	}
}

func propertyNames(schema *Schema) string {
	names := make([]string, 0, len(schema.Properties))
	for _, property := range schema.Properties {
		names = append(names, property.Name)
	}

	return strings.Join(names, ",")
}
