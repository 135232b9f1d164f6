package ast

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Text longer than dumpMaxText is shortened to its first and last
// dumpEdgeLen characters around a " ... " marker.
const (
	dumpMaxText = 35
	dumpEdgeLen = 15
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// WriteTree writes an indented plain-text dump of the tree rooted at n,
// one line per node:
//
//	Type: translation_unit, Text: int main() { return 0; }
//	  Type: function_definition, Text: int main() { return 0; }
//
// Node text is whitespace-collapsed and middle-truncated so the dump stays
// one line per node regardless of source formatting.
func WriteTree(w io.Writer, n Node) error {
	type frame struct {
		node  Node
		depth int
	}

	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		indent := strings.Repeat("  ", f.depth)
		if _, err := fmt.Fprintf(w, "%sType: %s, Text: %s\n", indent, f.node.Type(), dumpText(f.node)); err != nil {
			return err
		}

		// Children pushed in reverse so they pop in source order.
		for i := f.node.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Child(i), depth: f.depth + 1})
		}
	}
	return nil
}

// dumpText flattens a node's text for single-line display.
func dumpText(n Node) string {
	text := strings.ReplaceAll(string(n.Text()), "\n", " ")
	text = whitespaceRun.ReplaceAllString(text, " ")

	runes := []rune(text)
	if len(runes) > dumpMaxText {
		text = string(runes[:dumpEdgeLen]) + " ... " + string(runes[len(runes)-dumpEdgeLen:])
	}
	return text
}
