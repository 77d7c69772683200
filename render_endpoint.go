// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"strings"

	"golang.org/x/net/html/atom"
)

const (
	classEndpointDefinition = "endpoint-definition"
	classEndpointTitle      = "endpoint-title"
	classEndpointMeta       = "endpoint-meta"
)

// endpointRenderer writes one section per endpoint definition.
type endpointRenderer struct {
	markdown *Markdown
	builder  *htmlBuilder
}

// render writes schema and examples of every endpoint definition.
func (renderer *endpointRenderer) render(endpoint *Endpoint) error {
	if endpoint == nil {
		return nil
	}

	title := endpointTitle(endpoint)
	for _, definition := range endpoint.Definitions {
		if err := renderer.renderDefinition(title, definition); err != nil {
			return err
		}
	}

	return nil
}

// renderDefinition writes section for one endpoint definition.
func (renderer *endpointRenderer) renderDefinition(title string, definition EndpointDefinition) error {
	renderer.builder.open(atom.Section, classEndpointDefinition)
	defer renderer.builder.close()

	if title != "" {
		renderer.builder.element(atom.H2, classEndpointTitle, title)
	}

	if meta := definitionMeta(definition); meta != "" {
		renderer.builder.element(atom.P, classEndpointMeta, meta)
	}

	schemas := schemaRenderer{markdown: renderer.markdown, builder: renderer.builder}
	if err := schemas.render(definition.Schema); err != nil {
		return err
	}

	examples := examplesRenderer{builder: renderer.builder}
	return examples.render(definition.ExampleList())
}

// endpointTitle joins upper-cased method and route, falling back to endpoint name.
func endpointTitle(endpoint *Endpoint) string {
	parts := make([]string, 0, 2)
	if method := strings.TrimSpace(endpoint.Method); method != "" {
		parts = append(parts, strings.ToUpper(method))
	}

	if route := strings.TrimSpace(endpoint.Route); route != "" {
		parts = append(parts, route)
	}

	if len(parts) == 0 {
		return strings.TrimSpace(endpoint.Name)
	}

	return strings.Join(parts, " ")
}

// definitionMeta renders message type, versions and status codes line.
func definitionMeta(definition EndpointDefinition) string {
	items := make([]string, 0, 3)
	if messageType := strings.TrimSpace(definition.MessageType); messageType != "" {
		items = append(items, messageType)
	}

	if len(definition.Versions) > 0 {
		items = append(items, "versions: "+strings.Join(definition.Versions, ", "))
	}

	if len(definition.StatusCodes) > 0 {
		items = append(items, "status codes: "+strings.Join(definition.StatusCodes, ", "))
	}

	return strings.Join(items, "; ")
}
