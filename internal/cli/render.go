package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/2015xli/tree-sitter-processing/pkg/ast"
	"github.com/2015xli/tree-sitter-processing/pkg/cache"
	"github.com/2015xli/tree-sitter-processing/pkg/dot"
	"github.com/2015xli/tree-sitter-processing/pkg/errors"
	"github.com/2015xli/tree-sitter-processing/pkg/render"
)

// renderTTL is how long cached images stay valid.
const renderTTL = 30 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string       // output DOT path (default: input with .dot)
	format    string       // image format: png, svg, pdf, jpg
	lang      ast.Language // grammar selection
	stylePath string       // optional TOML style file
	noImage   bool         // stop after writing the DOT document
	noAST     bool         // skip the .ast text dump
	noCache   bool         // bypass the render cache
}

// newRenderCmd creates the render command, the main pipeline: parse the
// source file, write the AST text dump, write the DOT document, and render
// an image. Image generation failure is a warning only; the DOT document is
// the primary artifact.
func newRenderCmd() *cobra.Command {
	var langStr string
	opts := renderOpts{format: render.FormatPNG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Convert a C/C++ source file to a DOT syntax-tree diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := ast.ParseLanguage(langStr)
			if err != nil {
				return err
			}
			opts.lang = lang
			if err := render.ValidateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output DOT file (default: input with .dot extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output image format: png (default), svg, pdf, jpg")
	cmd.Flags().StringVar(&langStr, "lang", "auto", "source language: auto (default), c, cpp")
	cmd.Flags().StringVar(&opts.stylePath, "style", "", "TOML style file overriding DOT defaults")
	cmd.Flags().BoolVar(&opts.noImage, "no-image", false, "don't generate an image, only the DOT file")
	cmd.Flags().BoolVar(&opts.noAST, "no-ast", false, "skip the .ast text dump")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// runRender executes the full pipeline for a single input file.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	style := dot.DefaultStyle()
	if opts.stylePath != "" {
		var err error
		if style, err = dot.LoadStyle(opts.stylePath); err != nil {
			return err
		}
	}

	logger.Infof("Parsing %s", input)
	tree, err := ast.ParseFile(ctx, input, opts.lang)
	if err != nil {
		return err
	}
	defer tree.Close()

	if !opts.noAST {
		astPath := basePath("", input) + ".ast"
		if err := writeDumpFile(tree.Root(), astPath); err != nil {
			return err
		}
		logger.Infof("AST dump saved: %s", astPath)
	}

	p := newProgress(logger)
	doc, err := dot.Generate(tree.Root(), baseName(input), dot.WithStyle(style))
	if err != nil {
		return err
	}
	logger.Debugf("Generated DOT: %d bytes", len(doc))

	dotPath := opts.output
	if dotPath == "" {
		dotPath = basePath("", input) + ".dot"
	}
	if err := os.WriteFile(dotPath, []byte(doc), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", dotPath)
	}
	p.done(fmt.Sprintf("DOT file saved: %s", dotPath))

	if opts.noImage {
		return nil
	}

	imgPath := basePath("", dotPath) + "." + opts.format
	if err := renderImage(ctx, []byte(doc), opts.format, imgPath, opts.noCache); err != nil {
		// The DOT document was already produced; a failed image render
		// must not change the exit code.
		printWarning("Image generation failed: %v", err)
		return nil
	}
	printSuccess("Graph image generated: %s", imgPath)
	return nil
}

// renderImage renders doc to imgPath, consulting the render cache first.
func renderImage(ctx context.Context, doc []byte, format, imgPath string, noCache bool) error {
	logger := loggerFromContext(ctx)

	c := newRenderCache(noCache)
	defer c.Close()

	key := cache.RenderKey(doc, format)
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		logger.Debugf("Render cache hit for %s", format)
		return writeImage(imgPath, data)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.ToUpper(format)))
	spinner.Start()

	data, err := render.Image(ctx, doc, format)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	spinner.Stop()

	// A failed cache write is not worth failing the command over.
	_ = c.Set(ctx, key, data, renderTTL)

	return writeImage(imgPath, data)
}

// writeImage writes rendered image bytes to path.
func writeImage(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}

// newRenderCache picks the cache backend. Any problem locating the cache
// directory silently degrades to no caching.
func newRenderCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// baseName returns the file name of path without its extension. It names
// the emitted digraph.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	return strings.TrimSuffix(output, filepath.Ext(output))
}
