// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Endpoint is one documented API endpoint definition file.
type Endpoint struct {
	Name        string               `yaml:"name"`
	Route       string               `yaml:"route"`
	Method      string               `yaml:"method"`
	Definitions []EndpointDefinition `yaml:"definitions"`
}

// EndpointDefinition describes one request or response message shape
// for a set of versions and status codes.
type EndpointDefinition struct {
	Schema      *Schema      `yaml:"schema"`
	MessageType string       `yaml:"message_type"`
	Versions    []string     `yaml:"versions"`
	StatusCodes []string     `yaml:"status_codes"`
	Examples    []RawExample `yaml:"examples"`
}

// ParseEndpoint decodes endpoint definition from YAML or JSON bytes.
func ParseEndpoint(data []byte) (*Endpoint, error) {
	var endpoint Endpoint
	if err := yaml.Unmarshal(data, &endpoint); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeEndpoint, err)
	}

	return &endpoint, nil
}

// ParseEndpointFile reads and decodes endpoint definition file.
func ParseEndpointFile(path string) (*Endpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadEndpointFile, err)
	}

	return ParseEndpoint(data)
}

// ExampleList returns definition examples as Example values.
func (definition EndpointDefinition) ExampleList() []Example {
	return rawExamples(definition.Examples)
}
