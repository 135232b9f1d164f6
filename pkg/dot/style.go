package dot

import (
	"github.com/BurntSushi/toml"

	"github.com/2015xli/tree-sitter-processing/pkg/errors"
)

// Style controls the document-level attributes emitted in the DOT header
// and the per-class node fill colors.
type Style struct {
	Rankdir       string `toml:"rankdir"`        // layout direction
	FontName      string `toml:"fontname"`       // font for nodes and edges
	NodeFontSize  int    `toml:"node_fontsize"`  // point size for node labels
	EdgeFontSize  int    `toml:"edge_fontsize"`  // point size for edge labels
	NodeShape     string `toml:"node_shape"`     // default node shape
	LeafColor     string `toml:"leaf_color"`     // fill for leaf nodes
	InternalColor string `toml:"internal_color"` // fill for internal nodes
}

// DefaultStyle returns the built-in style: top-to-bottom layout, Arial,
// rectangle nodes, light blue leaves, light green internal nodes.
func DefaultStyle() Style {
	return Style{
		Rankdir:       "TB",
		FontName:      "Arial",
		NodeFontSize:  10,
		EdgeFontSize:  8,
		NodeShape:     "rectangle",
		LeafColor:     "lightblue",
		InternalColor: "lightgreen",
	}
}

// LoadStyle reads a TOML style file and overlays it on the defaults, so a
// file only needs to name the attributes it changes.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "load style %s", path)
	}
	return s, nil
}
