package cli

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/2015xli/tree-sitter-processing/pkg/ast"
	"github.com/2015xli/tree-sitter-processing/pkg/errors"
)

// newDumpCmd creates the dump command, which prints an indented text dump
// of a source file's syntax tree.
func newDumpCmd() *cobra.Command {
	var (
		output  string
		langStr string
	)

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print an indented text dump of the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := ast.ParseLanguage(langStr)
			if err != nil {
				return err
			}

			tree, err := ast.ParseFile(cmd.Context(), args[0], lang)
			if err != nil {
				return err
			}
			defer tree.Close()

			if output == "" {
				return ast.WriteTree(cmd.OutOrStdout(), tree.Root())
			}
			return writeDumpFile(tree.Root(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&langStr, "lang", "auto", "source language: auto (default), c, cpp")

	return cmd
}

// writeDumpFile writes the tree dump to path.
func writeDumpFile(root ast.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := ast.WriteTree(w, root); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}
