package dot

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/2015xli/tree-sitter-processing/pkg/ast"
	"github.com/2015xli/tree-sitter-processing/pkg/errors"
)

// Option configures a single Generate pass.
type Option func(*generator)

// WithStyle overrides the default document style.
func WithStyle(s Style) Option {
	return func(g *generator) { g.style = s }
}

// WithMaxDepth bounds the tree depth Generate will walk. Zero (the
// default) means unbounded. Exceeding the bound aborts the pass with a
// DEPTH_EXCEEDED error instead of producing a partial document.
func WithMaxDepth(depth int) Option {
	return func(g *generator) { g.maxDepth = depth }
}

// generator holds the mutable state of one serialization pass: the
// identifier counter and the accumulated declarations. A fresh generator
// is created per Generate call and discarded afterwards, so independent
// passes never share state.
type generator struct {
	buf      bytes.Buffer
	counter  int
	style    Style
	maxDepth int
}

// Generate serializes the tree rooted at root into a complete DOT
// document. name is the input file's base name and becomes the graph name
// (sanitized to a valid DOT identifier, suffixed with "_ast").
//
// Output is deterministic: node ids are assigned in strict preorder
// starting at node_1, each node's declaration precedes the edge from its
// parent's id to its own, and children are visited in source order.
func Generate(root ast.Node, name string, opts ...Option) (string, error) {
	g := &generator{style: DefaultStyle()}
	for _, opt := range opts {
		opt(g)
	}

	g.writeHeader(name)
	if err := g.walk(root); err != nil {
		return "", err
	}
	g.buf.WriteString("}\n")
	return g.buf.String(), nil
}

// nextID allocates the next node identifier for this pass.
func (g *generator) nextID() string {
	g.counter++
	return fmt.Sprintf("node_%d", g.counter)
}

// writeHeader emits the digraph opening, layout direction, and default
// node/edge attributes.
func (g *generator) writeHeader(name string) {
	fmt.Fprintf(&g.buf, "digraph %s_ast {\n", graphName(name))
	fmt.Fprintf(&g.buf, "    rankdir=%s;\n", g.style.Rankdir)
	fmt.Fprintf(&g.buf, "    node [shape=%s, fontname=%q, fontsize=%d];\n",
		g.style.NodeShape, g.style.FontName, g.style.NodeFontSize)
	fmt.Fprintf(&g.buf, "    edge [fontname=%q, fontsize=%d];\n",
		g.style.FontName, g.style.EdgeFontSize)
	g.buf.WriteString("\n")
}

// frame is one pending node on the traversal work list.
type frame struct {
	node   ast.Node
	parent string // id of the parent node, empty for the root
	depth  int
}

// walk performs the preorder traversal with an explicit work list, so tree
// depth is bounded by heap memory rather than the call stack. Children are
// pushed in reverse so they pop in source order, reproducing the emission
// order of the recursive formulation.
func (g *generator) walk(root ast.Node) error {
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.maxDepth > 0 && f.depth >= g.maxDepth {
			return errors.New(errors.ErrCodeDepthExceeded, "tree depth exceeds limit of %d", g.maxDepth)
		}

		id := g.nextID()
		label, leaf := buildLabel(f.node)
		color := g.style.InternalColor
		if leaf {
			color = g.style.LeafColor
		}

		fmt.Fprintf(&g.buf, "    %s [label=\"%s\", fillcolor=%q, style=\"filled\"];\n", id, label, color)
		if f.parent != "" {
			fmt.Fprintf(&g.buf, "    %s -> %s;\n", f.parent, id)
		}

		for i := f.node.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Child(i), parent: id, depth: f.depth + 1})
		}
	}
	return nil
}

// graphName sanitizes name into a valid DOT identifier: runs of characters
// outside [A-Za-z0-9_] become underscores, and a leading digit gets an
// underscore prefix so the result never starts with a number.
func graphName(name string) string {
	var b []rune
	for _, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b = append(b, r)
		} else {
			b = append(b, '_')
		}
	}
	if len(b) == 0 {
		return "ast"
	}
	if unicode.IsDigit(b[0]) {
		b = append([]rune{'_'}, b...)
	}
	return string(b)
}
