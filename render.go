// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import "sync"

// Renderer renders schema, example and endpoint HTML fragments with one
// markdown converter. It holds no mutable state and is safe for concurrent use.
type Renderer struct {
	markdown *Markdown
}

// defaultRenderer is built on first use by package-level helpers.
var defaultRenderer = sync.OnceValue(func() *Renderer {
	return NewRenderer(NewMarkdown())
})

// NewRenderer creates renderer over markdown converter; nil selects new default converter.
func NewRenderer(markdown *Markdown) *Renderer {
	if markdown == nil {
		markdown = NewMarkdown()
	}

	return &Renderer{markdown: markdown}
}

// HTMLForSchema renders schema definition tree as HTML fragment.
func HTMLForSchema(schema *Schema) (string, error) {
	return defaultRenderer().HTMLForSchema(schema)
}

// HTMLForExamples renders example payload list as HTML fragment.
func HTMLForExamples(examples []Example) (string, error) {
	return defaultRenderer().HTMLForExamples(examples)
}

// HTMLForEndpoint renders every endpoint definition as HTML fragment.
func HTMLForEndpoint(endpoint *Endpoint) (string, error) {
	return defaultRenderer().HTMLForEndpoint(endpoint)
}

// HTMLForSchema renders schema definition tree as HTML fragment.
func (renderer *Renderer) HTMLForSchema(schema *Schema) (string, error) {
	builder := newHTMLBuilder()
	schemas := schemaRenderer{markdown: renderer.markdown, builder: builder}
	if err := schemas.render(schema); err != nil {
		return "", err
	}

	return builder.render()
}

// HTMLForExamples renders example payload list; empty list renders empty string.
func (renderer *Renderer) HTMLForExamples(examples []Example) (string, error) {
	builder := newHTMLBuilder()
	list := examplesRenderer{builder: builder}
	if err := list.render(examples); err != nil {
		return "", err
	}

	return builder.render()
}

// HTMLForEndpoint renders one section per endpoint definition.
func (renderer *Renderer) HTMLForEndpoint(endpoint *Endpoint) (string, error) {
	builder := newHTMLBuilder()
	endpoints := endpointRenderer{markdown: renderer.markdown, builder: builder}
	if err := endpoints.render(endpoint); err != nil {
		return "", err
	}

	return builder.render()
}

// Markdown returns converter used by renderer.
func (renderer *Renderer) Markdown() *Markdown {
	return renderer.markdown
}
