// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"golang.org/x/net/html/atom"
)

const (
	classSchemaDefinition = "schema-definition"
	classDescription      = "description"
	classProperties       = "properties"
	classItems            = "items"
	className             = "name"
)

// schemaRenderer writes nested definition lists for one schema tree.
type schemaRenderer struct {
	markdown *Markdown
	builder  *htmlBuilder
}

// render writes schema-definition container for schema node.
func (renderer *schemaRenderer) render(schema *Schema) error {
	renderer.builder.open(atom.Div, classSchemaDefinition)
	defer renderer.builder.close()

	if schema == nil {
		return nil
	}

	if schema.HasDescription() {
		renderer.builder.element(atom.H3, classDescription, schema.Description)
	}

	return renderer.renderPropertiesAndItems(schema)
}

// renderPropertiesAndItems writes properties list first, then items list.
func (renderer *schemaRenderer) renderPropertiesAndItems(schema *Schema) error {
	if err := renderer.renderProperties(schema); err != nil {
		return err
	}

	return renderer.renderItems(schema.Items)
}

// renderProperties writes one term/description group per property in declared order.
func (renderer *schemaRenderer) renderProperties(schema *Schema) error {
	if !schema.HasProperties() {
		return nil
	}

	renderer.builder.open(atom.Dl, classProperties)
	defer renderer.builder.close()

	for _, property := range schema.Properties {
		if err := renderer.renderProperty(property); err != nil {
			return err
		}
	}

	return nil
}

// renderProperty writes property title, description and nested definitions.
func (renderer *schemaRenderer) renderProperty(property Property) error {
	schema := property.Schema
	if schema == nil {
		schema = &Schema{}
	}

	renderer.builder.open(atom.Dt, className)
	if err := renderer.propertyTitle(property.Name, schema); err != nil {
		return err
	}
	renderer.builder.close()

	if schema.HasDescription() {
		renderer.builder.element(atom.Dd, "", schema.Description)
	}

	return renderer.renderPropertiesAndItems(schema)
}

// propertyTitle writes plain name for untyped property or "**name** *type*" fragment.
func (renderer *schemaRenderer) propertyTitle(name string, schema *Schema) error {
	if !schema.HasType() {
		renderer.builder.text(name)
		return nil
	}

	nodes, err := renderer.markdown.fragmentNodes("**"+name+"** *"+schema.Type+"*", renderer.builder.contextNode())
	if err != nil {
		return err
	}

	renderer.builder.append(nodes...)
	return nil
}

// renderItems writes array item type entry; tuple typing has no representation.
func (renderer *schemaRenderer) renderItems(items *Schema) error {
	if items == nil {
		return nil
	}

	renderer.builder.open(atom.Dl, classItems)
	defer renderer.builder.close()

	renderer.builder.element(atom.Dt, className, "(array contains "+items.Type+"s)")
	if items.HasDescription() {
		renderer.builder.element(atom.Dd, "", items.Description)
	}

	return renderer.renderPropertiesAndItems(items)
}
