package dot

import (
	"strings"

	"github.com/2015xli/tree-sitter-processing/pkg/ast"
)

// Leaf text longer than maxLeafText runes is cut to its first
// truncatedLen runes followed by the ellipsis marker.
const (
	maxLeafText  = 20
	truncatedLen = 17
	ellipsis     = "..."
)

// lineBreak is the DOT label line-break directive separating a leaf's type
// from its text. It is inserted after escaping and must never pass through
// Escape itself.
const lineBreak = `\n`

// typeCategory classifies a node's type tag before label formatting.
// Degenerate tags map to sentinel categories with fixed display names.
type typeCategory int

const (
	typeVerbatim typeCategory = iota // tag is usable as-is
	typeQuote                       // empty tag, e.g. quote characters
	typeToken                       // whitespace-only tag, e.g. a bare newline
	typeUnknown                     // empty tag on an internal node
)

// classifyType maps a raw type tag to its category. Internal nodes only
// distinguish empty tags; whitespace-only tags stay verbatim for them.
func classifyType(tag string, leaf bool) typeCategory {
	switch {
	case tag == "" && leaf:
		return typeQuote
	case tag == "":
		return typeUnknown
	case leaf && strings.TrimSpace(tag) == "":
		return typeToken
	default:
		return typeVerbatim
	}
}

// displayType resolves a type tag to its display form.
func displayType(tag string, leaf bool) string {
	switch classifyType(tag, leaf) {
	case typeQuote:
		return "quote"
	case typeToken:
		return "token"
	case typeUnknown:
		return "unknown"
	default:
		return tag
	}
}

// isLeaf reports whether n is a leaf under the labeling policy: zero
// children and non-empty text. A childless node without text is internal.
func isLeaf(n ast.Node) bool {
	return n.ChildCount() == 0 && len(n.Text()) > 0
}

// truncate shortens text to at most maxLeafText runes, keeping the first
// truncatedLen runes and appending the ellipsis marker. Truncation is
// intentionally lossy and happens before escaping.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxLeafText {
		return text
	}
	return string(runes[:truncatedLen]) + ellipsis
}

// buildLabel formats the display label for n and reports whether n is a
// leaf. Leaves show type and truncated text on two lines; internal nodes
// show only the type.
func buildLabel(n ast.Node) (label string, leaf bool) {
	if isLeaf(n) {
		escapedType := Escape(displayType(n.Type(), true))
		escapedText := Escape(truncate(string(n.Text())))
		return escapedType + lineBreak + escapedText, true
	}
	return Escape(displayType(n.Type(), false)), false
}
