// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markdown converts description snippets to HTML with a fixed option set.
//
// The option set mirrors the documentation markdown dialect: no intra-word
// emphasis, GFM tables, fenced code only (indented code blocks disabled),
// strikethrough, superscript, underline, highlight, inline quotes and raw
// HTML passthrough. A Markdown value holds no per-call state and is safe
// for concurrent use.
type Markdown struct {
	converter goldmark.Markdown
}

// NewMarkdown builds converter with documentation markdown dialect.
func NewMarkdown() *Markdown {
	return &Markdown{
		converter: goldmark.New(
			goldmark.WithParser(newDocumentationParser()),
			goldmark.WithExtensions(extension.Table, extension.Strikethrough),
			goldmark.WithRendererOptions(
				gmhtml.WithUnsafe(),
				renderer.WithNodeRenderers(util.Prioritized(&inlineSpanHTMLRenderer{}, 500)),
			),
		),
	}
}

// HTML renders markdown text to HTML.
func (markdown *Markdown) HTML(source string) (string, error) {
	var out bytes.Buffer
	if err := markdown.converter.Convert([]byte(source), &out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderMarkdown, err)
	}

	return out.String(), nil
}

// Fragment renders markdown text without the enclosing paragraph element,
// so result can be embedded inline. Output that is not a single paragraph
// is returned as rendered.
func (markdown *Markdown) Fragment(source string) (string, error) {
	nodes, err := markdown.fragmentNodes(source, bodyContext())
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, node := range nodes {
		if err := html.Render(&out, node); err != nil {
			return "", fmt.Errorf("%w: %w", ErrRenderHTML, err)
		}
	}

	return out.String(), nil
}

// fragmentNodes renders markdown and returns detached inline nodes for context element.
func (markdown *Markdown) fragmentNodes(source string, context *html.Node) ([]*html.Node, error) {
	rendered, err := markdown.HTML(source)
	if err != nil {
		return nil, err
	}

	nodes, err := html.ParseFragment(strings.NewReader(rendered), context)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderHTML, err)
	}

	return unwrapParagraph(nodes), nil
}

// unwrapParagraph replaces a lone paragraph element with its children.
func unwrapParagraph(nodes []*html.Node) []*html.Node {
	var paragraph *html.Node
	for _, node := range nodes {
		if node.Type == html.TextNode && strings.TrimSpace(node.Data) == "" {
			continue
		}

		if paragraph != nil || node.Type != html.ElementNode || node.DataAtom != atom.P {
			return nodes
		}

		paragraph = node
	}

	if paragraph == nil {
		return nodes
	}

	out := make([]*html.Node, 0, 4)
	for child := paragraph.FirstChild; child != nil; {
		next := child.NextSibling
		paragraph.RemoveChild(child)
		out = append(out, child)
		child = next
	}

	return out
}

// bodyContext returns fragment parsing context for flow content.
func bodyContext() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: atom.Body.String(), DataAtom: atom.Body}
}

// indentedParagraphParser opens paragraphs on lines indented by four or more
// columns, which become plain text once indented code blocks are disabled.
type indentedParagraphParser struct {
	parser.BlockParser
}

// CanAcceptIndentedLine implements parser.BlockParser.
func (indentedParagraphParser) CanAcceptIndentedLine() bool {
	return true
}

// newDocumentationParser builds block/inline parser set of documentation dialect.
// Indented code blocks and the default emphasis parser are left out.
func newDocumentationParser() parser.Parser {
	return parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewSetextHeadingParser(), 100),
			util.Prioritized(parser.NewThematicBreakParser(), 200),
			util.Prioritized(parser.NewListParser(), 300),
			util.Prioritized(parser.NewListItemParser(), 400),
			util.Prioritized(parser.NewATXHeadingParser(), 600),
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewBlockquoteParser(), 800),
			util.Prioritized(parser.NewHTMLBlockParser(), 900),
			util.Prioritized(indentedParagraphParser{parser.NewParagraphParser()}, 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewLinkParser(), 200),
			util.Prioritized(parser.NewAutoLinkParser(), 300),
			util.Prioritized(parser.NewRawHTMLParser(), 400),
			util.Prioritized(newSpanDelimiterParser(emphasisDelimiter, 1), 500),
			util.Prioritized(newSpanDelimiterParser(underlineDelimiter, 1), 500),
			util.Prioritized(newSpanDelimiterParser(highlightDelimiter, 2), 500),
			util.Prioritized(newSpanDelimiterParser(quoteDelimiter, 1), 500),
			util.Prioritized(&superscriptParser{}, 500),
		),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)
}
