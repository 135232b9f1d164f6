package cli

import "testing"

func TestBaseName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "main.c", "main"},
		{"with directory", "src/lib/util.cpp", "util"},
		{"no extension", "Makefile", "Makefile"},
		{"dotted name", "config.test.h", "config.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := baseName(tt.input); got != tt.want {
				t.Errorf("baseName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "src/main.c", "src/main"},
		{"output strips extension", "out/graph.dot", "main.c", "out/graph"},
		{"output without extension", "out/graph", "main.c", "out/graph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}
