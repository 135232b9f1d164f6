// Package dot serializes syntax trees into Graphviz DOT documents.
//
// # Overview
//
// The package walks a syntax tree in preorder, assigns each node a unique
// identifier, formats an escaped label, and emits one node declaration per
// syntax node plus one edge declaration per parent→child relationship,
// wrapped in a digraph header and footer. The resulting DOT text can be
// rendered with pkg/render or any external Graphviz tool.
//
// # Usage
//
//	doc, err := dot.Generate(tree.Root(), "main")
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("main.dot", []byte(doc), 0644)
//
// # Determinism
//
// Each Generate call owns a fresh identifier counter and output buffer, so
// two passes over the same tree produce byte-identical documents. Node ids
// are node_1, node_2, … in strict preorder-visitation sequence; a node's
// declaration and the edge from its parent are emitted before any of its
// descendants.
//
// # Labels
//
// Leaf nodes (zero children, non-empty text) show their type tag and
// truncated text on two lines; internal nodes show only the type tag. Text
// is escaped for DOT label syntax, and degenerate type tags are replaced by
// sentinel categories ("quote", "token", "unknown").
package dot
