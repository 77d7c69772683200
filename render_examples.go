// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"golang.org/x/net/html/atom"
)

const (
	examplesHeading     = "Examples:"
	classSchemaExamples = "schema-examples"
	classSchemaExample  = "schema-example"
)

// examplesRenderer writes preformatted example payload blocks.
type examplesRenderer struct {
	builder *htmlBuilder
}

// render writes heading and examples container; empty list writes nothing.
func (renderer *examplesRenderer) render(examples []Example) error {
	if len(examples) == 0 {
		return nil
	}

	renderer.builder.element(atom.H3, "", examplesHeading)
	renderer.builder.open(atom.Div, classSchemaExamples)
	defer renderer.builder.close()

	for _, example := range examples {
		text, err := prettyExampleJSON(example)
		if err != nil {
			return err
		}

		renderer.builder.element(atom.Pre, classSchemaExample, text)
	}

	return nil
}
