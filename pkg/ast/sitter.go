package ast

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Tree owns a parsed syntax tree together with the source bytes its node
// spans refer to. The source must outlive every Node handed out by Root,
// which Tree guarantees by keeping both in one value.
type Tree struct {
	tree *sitter.Tree
	src  []byte
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return &sitterNode{n: t.tree.RootNode(), src: t.src}
}

// Source returns the source bytes the tree was parsed from.
func (t *Tree) Source() []byte {
	return t.src
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	t.tree.Close()
}

// sitterNode adapts a tree-sitter node to the Node capability interface.
type sitterNode struct {
	n   *sitter.Node
	src []byte
}

func (s *sitterNode) Type() string {
	return s.n.Type()
}

func (s *sitterNode) Text() []byte {
	start, end := s.n.StartByte(), s.n.EndByte()
	if start >= end || int(end) > len(s.src) {
		return nil
	}
	return s.src[start:end]
}

func (s *sitterNode) ChildCount() int {
	return int(s.n.ChildCount())
}

func (s *sitterNode) Child(i int) Node {
	return &sitterNode{n: s.n.Child(i), src: s.src}
}

// Ensure sitterNode implements Node.
var _ Node = (*sitterNode)(nil)
