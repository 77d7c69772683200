// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlBuilder builds detached HTML node tree with explicit open/close calls.
type htmlBuilder struct {
	root  *html.Node
	stack []*html.Node
}

// newHTMLBuilder creates builder with empty fragment root.
func newHTMLBuilder() *htmlBuilder {
	root := &html.Node{Type: html.DocumentNode}
	return &htmlBuilder{
		root:  root,
		stack: []*html.Node{root},
	}
}

// current returns element receiving new children.
func (builder *htmlBuilder) current() *html.Node {
	return builder.stack[len(builder.stack)-1]
}

// open appends element and makes it current; empty class adds no attribute.
func (builder *htmlBuilder) open(tag atom.Atom, class string) {
	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
	}

	if class != "" {
		node.Attr = []html.Attribute{{Key: "class", Val: class}}
	}

	builder.current().AppendChild(node)
	builder.stack = append(builder.stack, node)
}

// close returns to parent of current element.
func (builder *htmlBuilder) close() {
	if len(builder.stack) == 1 {
		return
	}

	builder.stack = builder.stack[:len(builder.stack)-1]
}

// text appends escaped text to current element.
func (builder *htmlBuilder) text(value string) {
	builder.current().AppendChild(&html.Node{Type: html.TextNode, Data: value})
}

// append adds detached nodes to current element.
func (builder *htmlBuilder) append(nodes ...*html.Node) {
	for _, node := range nodes {
		builder.current().AppendChild(node)
	}
}

// element writes one element with text content.
func (builder *htmlBuilder) element(tag atom.Atom, class, value string) {
	builder.open(tag, class)
	builder.text(value)
	builder.close()
}

// contextNode returns detached copy of current element usable as fragment parse context.
func (builder *htmlBuilder) contextNode() *html.Node {
	current := builder.current()
	if current.Type != html.ElementNode {
		return bodyContext()
	}

	return &html.Node{Type: html.ElementNode, DataAtom: current.DataAtom, Data: current.Data}
}

// render serializes built tree.
func (builder *htmlBuilder) render() (string, error) {
	var out strings.Builder
	for node := builder.root.FirstChild; node != nil; node = node.NextSibling {
		if err := html.Render(&out, node); err != nil {
			return "", fmt.Errorf("%w: %w", ErrRenderHTML, err)
		}
	}

	return out.String(), nil
}
