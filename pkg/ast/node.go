// Package ast provides syntax-tree access for astdot.
//
// The package wraps tree-sitter parsing behind a small read-only capability
// interface ([Node]) so that consumers — most importantly the DOT serializer
// in pkg/dot — never depend on a concrete parser type. It also contains the
// C/C++ parser setup, the header-language classifier, and a plain-text tree
// dump writer.
package ast

// Node is the read-only capability surface a syntax-tree provider must
// expose. Children are ordered left-to-right in source order.
//
// A node with zero children and non-empty text is a leaf; any other node is
// internal. The type tag may legally be empty or whitespace-only for some
// punctuation tokens.
type Node interface {
	// Type returns the grammar construct name (never nil, may be empty).
	Type() string

	// Text returns the raw source span covered by the node, or nil when
	// the node carries no literal text.
	Text() []byte

	// ChildCount returns the number of direct children.
	ChildCount() int

	// Child returns the i-th child in source order. i must be in
	// [0, ChildCount()).
	Child(i int) Node
}
