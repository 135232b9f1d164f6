package ast

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/2015xli/tree-sitter-processing/pkg/errors"
)

// cppOnlyNodeTypes are tree-sitter-cpp grammar node types that unambiguously
// indicate C++-only semantics. A header whose parse tree contains any of
// these is treated as a C++ header.
var cppOnlyNodeTypes = map[string]bool{
	"abstract_declarator":        true,
	"access_specifier":           true, // public: private: etc.
	"alias_declaration":          true, // using T = int;
	"alignas_specifier":          true,
	"attribute_declaration":      true, // [[nodiscard]] etc.
	"auto":                       true,
	"cast_expression":            true, // static_cast / dynamic_cast / etc.
	"class_specifier":            true,
	"concept_definition":         true,
	"condition_clause":           true,
	"decltype_specifier":         true,
	"delete_expression":          true,
	"dependent_type_specifier":   true,
	"enum_class_specifier":       true,
	"explicit_specifier":         true,
	"friend_declaration":         true,
	"lambda_expression":          true,
	"namespace_definition":       true,
	"new_expression":             true,
	"noexcept_specifier":         true,
	"operator_cast":              true,
	"override_specifier":         true,
	"parameter_pack_expansion":   true, // T... variadic
	"qualified_identifier":       true, // std::vector etc.
	"reference_declarator":       true, // T& or T&&
	"static_assert_declaration":  true,
	"template_argument_list":     true,
	"template_declaration":       true,
	"template_function":          true,
	"template_method":            true,
	"template_parameter_list":    true,
	"template_type":              true,
	"this":                       true,
	"throw_specifier":            true,
	"type_qualifier":             true, // constexpr, consteval, constinit etc.
	"using_declaration":          true,
	"virtual_function_specifier": true,
	"virtual_specifier":          true,
}

// ClassifyHeader reports whether the .h file at path should be treated as a
// C++ header. It returns true when a sibling file carries a C++ source
// suffix or when parsing with the C++ grammar produces C++-only constructs;
// otherwise the header is treated as C.
func ClassifyHeader(ctx context.Context, path string) (bool, error) {
	if hasCPPSibling(path) {
		return true, nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, errors.Wrap(errors.ErrCodeFileNotFound, err, "header %s does not exist", path)
		}
		return false, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	// Empty or whitespace-only headers give no signal.
	if len(bytes.TrimSpace(source)) == 0 {
		return false, nil
	}

	tree, err := Parse(ctx, source, LangCPP)
	if err != nil {
		return false, err
	}
	defer tree.Close()

	return hasCPPOnlyNodes(tree.tree.RootNode()), nil
}

// hasCPPSibling checks whether any file in the same directory has a C++
// source suffix. Directory listing failures disable the heuristic rather
// than failing classification.
func hasCPPSibling(path string) bool {
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		return false
	}
	base := filepath.Base(path)
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == base {
			continue
		}
		if cppSourceSuffixes[strings.ToLower(filepath.Ext(entry.Name()))] {
			return true
		}
	}
	return false
}

// hasCPPOnlyNodes scans named nodes for C++-only grammar constructs using an
// explicit work list. Named children carry the grammar signal; anonymous
// tokens are skipped.
func hasCPPOnlyNodes(root *sitter.Node) bool {
	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cppOnlyNodeTypes[n.Type()] {
			return true
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			stack = append(stack, n.NamedChild(i))
		}
	}
	return false
}
