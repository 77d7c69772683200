// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// kindInlineSpan is AST kind of simple tag-wrapped inline spans.
var kindInlineSpan = gast.NewNodeKind("InlineSpan")

// inlineSpan is inline node rendered as <tag>children</tag>.
type inlineSpan struct {
	gast.BaseInline
	tag string
}

// Kind implements ast.Node.
func (node *inlineSpan) Kind() gast.NodeKind {
	return kindInlineSpan
}

// Dump implements ast.Node.
func (node *inlineSpan) Dump(source []byte, level int) {
	gast.DumpHelper(node, source, level, map[string]string{"Tag": node.tag}, nil)
}

// spanDelimiter maps delimiter character to HTML tags by run length.
type spanDelimiter struct {
	single string
	double string
	char   byte
}

var (
	emphasisDelimiter  = &spanDelimiter{char: '*', single: "em", double: "strong"}
	underlineDelimiter = &spanDelimiter{char: '_', single: "u", double: "strong"}
	highlightDelimiter = &spanDelimiter{char: '=', single: "mark", double: "mark"}
	quoteDelimiter     = &spanDelimiter{char: '"', single: "q", double: "q"}
)

// IsDelimiter implements parser.DelimiterProcessor.
func (delimiter *spanDelimiter) IsDelimiter(b byte) bool {
	return b == delimiter.char
}

// CanOpenCloser implements parser.DelimiterProcessor.
func (delimiter *spanDelimiter) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

// OnMatch implements parser.DelimiterProcessor.
func (delimiter *spanDelimiter) OnMatch(consumes int) gast.Node {
	if consumes >= 2 {
		return &inlineSpan{tag: delimiter.double}
	}

	return &inlineSpan{tag: delimiter.single}
}

// spanDelimiterParser pushes delimiter runs of one character.
// Runs shorter than minLength or longer than two characters stay literal.
type spanDelimiterParser struct {
	delimiter *spanDelimiter
	minLength int
}

// newSpanDelimiterParser creates inline parser for one span delimiter.
func newSpanDelimiterParser(delimiter *spanDelimiter, minLength int) parser.InlineParser {
	return &spanDelimiterParser{delimiter: delimiter, minLength: minLength}
}

// Trigger implements parser.InlineParser.
func (p *spanDelimiterParser) Trigger() []byte {
	return []byte{p.delimiter.char}
}

// Parse implements parser.InlineParser.
func (p *spanDelimiterParser) Parse(_ gast.Node, block text.Reader, pc parser.Context) gast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, p.minLength, p.delimiter)
	if node == nil {
		return nil
	}

	if p.delimiter.char != '*' && p.delimiter.char != '_' && node.OriginalLength > 2 {
		return nil
	}

	if p.minLength > 1 && node.OriginalLength != p.minLength {
		return nil
	}

	// Intra-word runs never open a span.
	if node.CanOpen && !canOpenAfter(before) {
		node.CanOpen = false
	}

	if !node.CanOpen && !node.CanClose {
		return nil
	}

	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

// CloseBlock implements parser.InlineParser.
func (p *spanDelimiterParser) CloseBlock(_ gast.Node, _ parser.Context) {}

// canOpenAfter reports whether span may open after the preceding character.
func canOpenAfter(before rune) bool {
	return unicode.IsSpace(before) || before == '>' || before == '('
}

// superscriptParser parses ^word and ^(several words) spans.
type superscriptParser struct{}

// Trigger implements parser.InlineParser.
func (p *superscriptParser) Trigger() []byte {
	return []byte{'^'}
}

// Parse implements parser.InlineParser.
func (p *superscriptParser) Parse(_ gast.Node, block text.Reader, _ parser.Context) gast.Node {
	line, segment := block.PeekLine()
	if len(line) < 2 {
		return nil
	}

	start, stop, advance := 1, 1, 0
	if line[1] == '(' {
		end := bytes.IndexByte(line[2:], ')')
		if end <= 0 {
			return nil
		}

		start, stop = 2, 2+end
		advance = stop + 1
	} else {
		for stop < len(line) {
			r, size := utf8.DecodeRune(line[stop:])
			if unicode.IsSpace(r) {
				break
			}

			stop += size
		}

		if stop == start {
			return nil
		}

		advance = stop
	}

	node := &inlineSpan{tag: "sup"}
	node.AppendChild(node, gast.NewTextSegment(text.NewSegment(segment.Start+start, segment.Start+stop)))
	block.Advance(advance)
	return node
}

// CloseBlock implements parser.InlineParser.
func (p *superscriptParser) CloseBlock(_ gast.Node, _ parser.Context) {}

// inlineSpanHTMLRenderer writes inline span nodes as HTML tags.
type inlineSpanHTMLRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *inlineSpanHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindInlineSpan, r.renderInlineSpan)
}

// renderInlineSpan writes opening or closing tag of inline span.
func (r *inlineSpanHTMLRenderer) renderInlineSpan(w util.BufWriter, _ []byte, node gast.Node, entering bool) (gast.WalkStatus, error) {
	span, ok := node.(*inlineSpan)
	if !ok {
		return gast.WalkContinue, nil
	}

	if entering {
		_ = w.WriteByte('<')
	} else {
		_, _ = w.WriteString("</")
	}

	_, _ = w.WriteString(span.tag)
	_ = w.WriteByte('>')
	return gast.WalkContinue, nil
}
