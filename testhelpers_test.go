// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

package schemahtml

import (
	"flag"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

var updateGolden = flag.Bool("update", false, "update golden files")

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}

func assertEqual(t *testing.T, got, want string) {
	t.Helper()

	if got != want {
		t.Fatalf("mismatch\ngot:  %q\nwant: %q", got, want)
	}
}

// parseFragment parses rendered HTML back into detached nodes.
func parseFragment(t *testing.T, fragment string) []*html.Node {
	t.Helper()

	nodes, err := html.ParseFragment(strings.NewReader(fragment), bodyContext())
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}

	return nodes
}

// textContent concatenates all text nodes below node.
func textContent(node *html.Node) string {
	if node.Type == html.TextNode {
		return node.Data
	}

	var out strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		out.WriteString(textContent(child))
	}

	return out.String()
}

// childElements returns direct element children of node.
func childElements(node *html.Node) []*html.Node {
	var out []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, child)
		}
	}

	return out
}

// classOf returns class attribute value of element.
func classOf(node *html.Node) string {
	for _, attr := range node.Attr {
		if attr.Key == "class" {
			return attr.Val
		}
	}

	return ""
}
