// Package cli implements the astdot command-line interface.
//
// This package provides commands for converting C/C++ source files into
// Graphviz DOT syntax-tree diagrams, dumping syntax trees as indented text,
// classifying ambiguous headers, and managing the render cache. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
//   - render: Parse a source file and generate DOT output plus an image
//   - dump: Print an indented text dump of the syntax tree
//   - classify: Report whether a .h header is C or C++
//   - cache: Manage the render cache
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/2015xli/tree-sitter-processing/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "astdot"

// Execute runs the astdot CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "astdot visualizes C/C++ syntax trees as Graphviz diagrams",
		Long:         `astdot parses C and C++ source files with tree-sitter and serializes the resulting syntax tree into a Graphviz DOT document, optionally rendering it to PNG, SVG, PDF, or JPG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/astdot/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
