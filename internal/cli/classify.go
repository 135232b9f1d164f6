package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2015xli/tree-sitter-processing/pkg/ast"
	"github.com/2015xli/tree-sitter-processing/pkg/errors"
)

// newClassifyCmd creates the classify command, which decides whether a .h
// header should be treated as C or C++.
func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [file.h]",
		Short: "Report whether a .h header is C or C++",
		Long: `Report whether a .h header is C or C++.

The decision uses two heuristics: sibling files in the same directory with
C++ source suffixes, and a parse with the C++ grammar scanned for
constructs that only exist in C++ (classes, namespaces, templates, ...).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if strings.ToLower(filepath.Ext(path)) != ".h" {
				return errors.New(errors.ErrCodeInvalidInput, "%s is not a .h header file", path)
			}

			isCPP, err := ast.ClassifyHeader(cmd.Context(), path)
			if err != nil {
				return err
			}

			if isCPP {
				printInfo("%s is a C++ header", path)
			} else {
				printInfo("%s is a C header", path)
			}
			return nil
		},
	}
}
