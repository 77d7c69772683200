// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema is one node of endpoint message schema tree.
//
// Decoded schemas remember which keywords were present, so an empty
// description or type string still renders. For schemas built in code a
// non-empty value marks the keyword as present. Properties keep the order
// of the source mapping.
type Schema struct {
	Items       *Schema
	Description string
	Type        string
	Properties  []Property

	hasDescription bool
	hasType        bool
}

// Property is one named entry of schema properties mapping.
type Property struct {
	Schema *Schema
	Name   string
}

// ParseSchema decodes schema from YAML or JSON bytes.
func ParseSchema(data []byte) (*Schema, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return &schema, nil
}

// ParseSchemaFile reads and decodes schema from file.
func ParseSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	return ParseSchema(data)
}

// UnmarshalYAML decodes schema node keeping properties order.
func (schema *Schema) UnmarshalYAML(value *yaml.Node) error {
	return schema.decodeNode(value, "$")
}

// UnmarshalJSON decodes schema node keeping properties order.
func (schema *Schema) UnmarshalJSON(data []byte) error {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return err
	}

	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return fmt.Errorf("%w: $", ErrSchemaNode)
	}

	return schema.decodeNode(document.Content[0], "$")
}

// HasProperties reports whether schema declares at least one property.
func (schema *Schema) HasProperties() bool {
	return schema != nil && len(schema.Properties) > 0
}

// HasDescription reports whether schema declares description keyword.
func (schema *Schema) HasDescription() bool {
	return schema != nil && (schema.hasDescription || schema.Description != "")
}

// HasType reports whether schema declares non-null type keyword.
func (schema *Schema) HasType() bool {
	return schema != nil && (schema.hasType || schema.Type != "")
}

// decodeNode fills schema from mapping node; path locates node in errors.
func (schema *Schema) decodeNode(node *yaml.Node, path string) error {
	node = resolveAlias(node)
	if isNullNode(node) {
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: %s", ErrSchemaNode, path)
	}

	for index := 0; index+1 < len(node.Content); index += 2 {
		key := node.Content[index].Value
		value := resolveAlias(node.Content[index+1])

		switch key {
		case "description":
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: %s.description is not a string", ErrDecodeSchema, path)
			}

			if isNullNode(value) {
				schema.Description, schema.hasDescription = "", false
				continue
			}

			schema.Description = value.Value
			schema.hasDescription = true
		case "type":
			text, err := typeString(value)
			if err != nil {
				return fmt.Errorf("%w: %s.type: %w", ErrDecodeSchema, path, err)
			}

			schema.Type = text
			schema.hasType = !isNullNode(value)
		case "properties":
			properties, err := decodeProperties(value, path+".properties")
			if err != nil {
				return err
			}

			schema.Properties = properties
		case "items":
			items, err := decodeItems(value, path+".items")
			if err != nil {
				return err
			}

			schema.Items = items
		}
	}

	return nil
}

// decodeProperties decodes ordered properties mapping.
func decodeProperties(node *yaml.Node, path string) ([]Property, error) {
	if isNullNode(node) {
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s", ErrSchemaProperties, path)
	}

	out := make([]Property, 0, len(node.Content)/2)
	for index := 0; index+1 < len(node.Content); index += 2 {
		name := node.Content[index].Value

		var property Schema
		if err := property.decodeNode(node.Content[index+1], path+"."+name); err != nil {
			return nil, err
		}

		out = append(out, Property{Name: name, Schema: &property})
	}

	return out, nil
}

// decodeItems decodes single array item schema; tuple typing is rejected.
func decodeItems(node *yaml.Node, path string) (*Schema, error) {
	if isNullNode(node) {
		return nil, nil
	}

	if node.Kind == yaml.SequenceNode {
		return nil, fmt.Errorf("%w: %s", ErrTupleItems, path)
	}

	var items Schema
	if err := items.decodeNode(node, path); err != nil {
		return nil, err
	}

	return &items, nil
}

// typeString converts schema type keyword to display string.
func typeString(node *yaml.Node) (string, error) {
	if node.Kind == yaml.ScalarNode {
		if isNullNode(node) {
			return "", nil
		}

		return node.Value, nil
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return "", err
	}

	return mustJSONInline(value), nil
}

// mustJSONInline marshals values as single-line JSON text.
func mustJSONInline(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

// isNullNode reports whether node is explicit or implicit YAML null.
func isNullNode(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// resolveAlias follows YAML aliases to the anchored node.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}
