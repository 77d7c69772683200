// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

/*
Package schemahtml renders HTML documentation fragments for API endpoint
message schemas and example payloads.

Schema trees are walked depth-first into nested definition lists: object
properties keep their declared order, array item types are documented by
their single item schema (tuple typing is not supported). Property titles
are rendered through a fixed markdown dialect; descriptions are plain text.
Output is an HTML fragment for embedding into a larger page.

Render schema from YAML or JSON bytes:

	schema, err := schemahtml.ParseSchema(schemaBytes)
	if err != nil {
		return err
	}

	fragment, err := schemahtml.HTMLForSchema(schema)
	if err != nil {
		return err
	}

	fmt.Println(fragment)

Render example payloads:

	fragment, err := schemahtml.HTMLForExamples([]schemahtml.Example{
		schemahtml.RawExample(`{"id": 1, "name": "demo"}`),
		schemahtml.ValueExample{Value: map[string]any{"id": 2}},
	})
	if err != nil {
		return err
	}

	fmt.Println(fragment)

Share one markdown converter explicitly:

	renderer := schemahtml.NewRenderer(schemahtml.NewMarkdown())
	fragment, err := renderer.HTMLForEndpoint(endpoint)
	if err != nil {
		return err
	}

	fmt.Println(fragment)
*/
package schemahtml
