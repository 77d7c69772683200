// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Example is one concrete message payload shown next to schema definition.
type Example interface {
	// Data returns payload value; json.RawMessage keeps its key order.
	Data() any
}

// ValueExample wraps any JSON-encodable Go value.
type ValueExample struct {
	Value any
}

// Data implements Example.
func (example ValueExample) Data() any {
	return example.Value
}

// RawExample holds example payload as JSON text.
type RawExample json.RawMessage

// Data implements Example.
func (example RawExample) Data() any {
	return json.RawMessage(example)
}

// UnmarshalYAML converts YAML payload into JSON text keeping mapping order.
func (example *RawExample) UnmarshalYAML(value *yaml.Node) error {
	var out bytes.Buffer
	if err := writeYAMLNodeJSON(&out, value); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeExample, err)
	}

	*example = RawExample(out.Bytes())
	return nil
}

// ParseExamples decodes YAML or JSON sequence of example payloads.
func ParseExamples(data []byte) ([]Example, error) {
	var raw []RawExample
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeExample, err)
	}

	return rawExamples(raw), nil
}

// rawExamples converts raw payload list to Example list.
func rawExamples(raw []RawExample) []Example {
	out := make([]Example, 0, len(raw))
	for _, example := range raw {
		out = append(out, example)
	}

	return out
}

// prettyExampleJSON formats example payload as indented JSON without trailing newline.
func prettyExampleJSON(example Example) (string, error) {
	var out bytes.Buffer

	switch data := example.Data().(type) {
	case json.RawMessage:
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncodeExample, err)
		}
	default:
		encoded, err := marshalExampleJSON(data)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncodeExample, err)
		}

		out.Write(encoded)
	}

	return strings.TrimRight(out.String(), "\n"), nil
}

// marshalExampleJSON serializes example payload as pretty JSON.
func marshalExampleJSON(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// writeYAMLNodeJSON writes YAML node tree as compact JSON preserving mapping order.
func writeYAMLNodeJSON(out *bytes.Buffer, node *yaml.Node) error {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			out.WriteString("null")
			return nil
		}

		return writeYAMLNodeJSON(out, node.Content[0])

	case yaml.MappingNode:
		out.WriteByte('{')
		for index := 0; index+1 < len(node.Content); index += 2 {
			if index > 0 {
				out.WriteByte(',')
			}

			key, err := json.Marshal(resolveAlias(node.Content[index]).Value)
			if err != nil {
				return err
			}

			out.Write(key)
			out.WriteByte(':')
			if err := writeYAMLNodeJSON(out, node.Content[index+1]); err != nil {
				return err
			}
		}
		out.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		out.WriteByte('[')
		for index, item := range node.Content {
			if index > 0 {
				out.WriteByte(',')
			}

			if err := writeYAMLNodeJSON(out, item); err != nil {
				return err
			}
		}
		out.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return err
		}

		data, err := marshalExampleJSON(value)
		if err != nil {
			return err
		}

		out.Write(bytes.TrimRight(data, "\n"))
		return nil

	default:
		return fmt.Errorf("unsupported yaml node kind %d", node.Kind)
	}
}
