package dot

import (
	"strings"
	"testing"

	"github.com/2015xli/tree-sitter-processing/pkg/errors"
)

func TestGenerateEndToEnd(t *testing.T) {
	root := &stubNode{
		typ:  "translation_unit",
		kids: []*stubNode{{typ: "identifier", text: "x"}},
	}

	got, err := Generate(root, "main")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := `digraph main_ast {
    rankdir=TB;
    node [shape=rectangle, fontname="Arial", fontsize=10];
    edge [fontname="Arial", fontsize=8];

    node_1 [label="translation_unit", fillcolor="lightgreen", style="filled"];
    node_2 [label="identifier\nx", fillcolor="lightblue", style="filled"];
    node_1 -> node_2;
}
`
	if got != want {
		t.Errorf("Generate() =\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateRootOnly(t *testing.T) {
	// An empty source file parses to a bare root with no children.
	got, err := Generate(&stubNode{typ: "translation_unit"}, "empty")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if n := strings.Count(got, "[label="); n != 1 {
		t.Errorf("node declarations = %d, want 1", n)
	}
	if n := strings.Count(got, " -> "); n != 0 {
		t.Errorf("edge declarations = %d, want 0", n)
	}
	if !strings.Contains(got, "digraph empty_ast {") {
		t.Errorf("missing graph header, got:\n%s", got)
	}
}

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *stubNode
		wantNodes int
	}{
		{
			name:      "single node",
			build:     func() *stubNode { return &stubNode{typ: "translation_unit"} },
			wantNodes: 1,
		},
		{
			name: "wide tree",
			build: func() *stubNode {
				root := &stubNode{typ: "translation_unit"}
				for i := 0; i < 10; i++ {
					root.kids = append(root.kids, &stubNode{typ: "identifier", text: "x"})
				}
				return root
			},
			wantNodes: 11,
		},
		{
			name: "nested tree",
			build: func() *stubNode {
				return &stubNode{typ: "a", kids: []*stubNode{
					{typ: "b", kids: []*stubNode{
						{typ: "c", text: "c"},
						{typ: "d", text: "d"},
					}},
					{typ: "e", text: "e"},
				}}
			},
			wantNodes: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.build(), "test")
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			// One declaration per syntax node, edges = nodes - 1.
			if n := strings.Count(got, "[label="); n != tt.wantNodes {
				t.Errorf("node declarations = %d, want %d", n, tt.wantNodes)
			}
			if n := strings.Count(got, " -> "); n != tt.wantNodes-1 {
				t.Errorf("edge declarations = %d, want %d", n, tt.wantNodes-1)
			}
		})
	}
}

func TestGeneratePreorderIDs(t *testing.T) {
	// a(b(c), d): preorder is a=1, b=2, c=3, d=4, and each node's
	// declaration precedes the edge from its parent.
	root := &stubNode{typ: "a", kids: []*stubNode{
		{typ: "b", kids: []*stubNode{{typ: "c", text: "c"}}},
		{typ: "d", text: "d"},
	}}

	got, err := Generate(root, "order")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wantLines := []string{
		`node_1 [label="a"`,
		`node_2 [label="b"`,
		`node_1 -> node_2;`,
		`node_3 [label="c\nc"`,
		`node_2 -> node_3;`,
		`node_4 [label="d\nd"`,
		`node_3 -> node_4;`, // must NOT appear: d is a child of a
	}

	pos := 0
	for _, line := range wantLines[:6] {
		idx := strings.Index(got[pos:], line)
		if idx < 0 {
			t.Fatalf("missing or out of order: %q in:\n%s", line, got)
		}
		pos += idx
	}
	if strings.Contains(got, wantLines[6]) {
		t.Errorf("unexpected edge %q in:\n%s", wantLines[6], got)
	}
	if !strings.Contains(got, "node_1 -> node_4;") {
		t.Errorf("missing edge node_1 -> node_4 in:\n%s", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	root := &stubNode{typ: "a", kids: []*stubNode{
		{typ: "b", text: "b"},
		{typ: "c", kids: []*stubNode{{typ: "d", text: "d"}}},
	}}

	first, err := Generate(root, "same")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := Generate(root, "same")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if first != second {
		t.Errorf("two passes over the same tree differ:\n%s\n---\n%s", first, second)
	}
}

func TestGenerateDeepTree(t *testing.T) {
	// A pathological 10k-deep chain must not exhaust the call stack.
	const depth = 10000
	leaf := &stubNode{typ: "identifier", text: "x"}
	node := leaf
	for i := 0; i < depth; i++ {
		node = &stubNode{typ: "wrapper", kids: []*stubNode{node}}
	}

	got, err := Generate(node, "deep")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if n := strings.Count(got, "[label="); n != depth+1 {
		t.Errorf("node declarations = %d, want %d", n, depth+1)
	}
}

func TestGenerateMaxDepth(t *testing.T) {
	node := &stubNode{typ: "identifier", text: "x"}
	for i := 0; i < 5; i++ {
		node = &stubNode{typ: "wrapper", kids: []*stubNode{node}}
	}

	if _, err := Generate(node, "deep", WithMaxDepth(3)); !errors.Is(err, errors.ErrCodeDepthExceeded) {
		t.Errorf("Generate() error = %v, want DEPTH_EXCEEDED", err)
	}

	if _, err := Generate(node, "deep", WithMaxDepth(100)); err != nil {
		t.Errorf("Generate() error = %v, want nil", err)
	}
}

func TestGenerateWithStyle(t *testing.T) {
	style := DefaultStyle()
	style.Rankdir = "LR"
	style.LeafColor = "gold"
	style.InternalColor = "gray"

	got, err := Generate(&stubNode{typ: "a", kids: []*stubNode{{typ: "b", text: "b"}}}, "styled", WithStyle(style))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{"rankdir=LR;", `fillcolor="gold"`, `fillcolor="gray"`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestGraphName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "main", "main"},
		{"dash replaced", "my-file", "my_file"},
		{"dots replaced", "a.b.c", "a_b_c"},
		{"leading digit prefixed", "2main", "_2main"},
		{"empty falls back", "", "ast"},
		{"spaces replaced", "my file", "my_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := graphName(tt.input); got != tt.want {
				t.Errorf("graphName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
