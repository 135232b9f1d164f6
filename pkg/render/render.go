// Package render turns DOT documents into images.
//
// PNG, SVG, and JPG are rendered in-process with
// [github.com/goccy/go-graphviz]; PDF is produced by rendering SVG first
// and converting it with the external rsvg-convert tool (librsvg).
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/2015xli/tree-sitter-processing/pkg/errors"
)

// Output image formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatJPG = "jpg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatSVG: true,
	FormatPDF: true,
	FormatJPG: true,
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png', 'svg', 'pdf', or 'jpg')", format)
	}
	return nil
}

// Image renders a DOT document to the requested format.
func Image(ctx context.Context, dot []byte, format string) ([]byte, error) {
	switch format {
	case FormatPNG:
		return viaGraphviz(ctx, dot, graphviz.PNG)
	case FormatSVG:
		return viaGraphviz(ctx, dot, graphviz.SVG)
	case FormatJPG:
		return viaGraphviz(ctx, dot, graphviz.JPG)
	case FormatPDF:
		svg, err := viaGraphviz(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return ToPDF(svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
	}
}

// viaGraphviz renders DOT in-process with go-graphviz.
func viaGraphviz(ctx context.Context, dot []byte, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
