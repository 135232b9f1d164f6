package ast

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/2015xli/tree-sitter-processing/pkg/errors"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Language
		wantErr bool
	}{
		{"auto", "auto", LangAuto, false},
		{"c", "c", LangC, false},
		{"cpp", "cpp", LangCPP, false},
		{"c++ alias", "c++", LangCPP, false},
		{"uppercase", "CPP", LangCPP, false},
		{"invalid", "rust", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLanguage(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectLanguageByExtension(t *testing.T) {
	tests := []struct {
		path string
		want Language
	}{
		{"main.c", LangC},
		{"main.cpp", LangCPP},
		{"main.cc", LangCPP},
		{"main.cxx", LangCPP},
		{"util.hpp", LangCPP},
		{"mod.ixx", LangCPP},
		{"MAIN.CPP", LangCPP},
		{"noext", LangC},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectLanguage(ctx, tt.path); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseC(t *testing.T) {
	tree, err := Parse(context.Background(), []byte("int main() { return 0; }\n"), LangC)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	defer tree.Close()

	root := tree.Root()
	if root.Type() != "translation_unit" {
		t.Errorf("root type = %q, want translation_unit", root.Type())
	}
	if root.ChildCount() == 0 {
		t.Error("root has no children")
	}
	if string(root.Text()) != "int main() { return 0; }\n" {
		t.Errorf("root text = %q, want full source", root.Text())
	}
}

func TestParseEmptySource(t *testing.T) {
	tree, err := Parse(context.Background(), nil, LangC)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	defer tree.Close()

	root := tree.Root()
	if root.Type() != "translation_unit" {
		t.Errorf("root type = %q, want translation_unit", root.Type())
	}
	if root.ChildCount() != 0 {
		t.Errorf("root children = %d, want 0", root.ChildCount())
	}
	if len(root.Text()) != 0 {
		t.Errorf("root text = %q, want empty", root.Text())
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	if err := os.WriteFile(path, []byte("int x = 1;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tree, err := ParseFile(context.Background(), path, LangAuto)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	defer tree.Close()

	if tree.Root().Type() != "translation_unit" {
		t.Errorf("root type = %q, want translation_unit", tree.Root().Type())
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.c"), LangC)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ParseFile() error = %v, want FILE_NOT_FOUND", err)
	}
}
