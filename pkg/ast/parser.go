package ast

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/2015xli/tree-sitter-processing/pkg/errors"
)

// Language selects the tree-sitter grammar used for parsing.
type Language string

// Supported languages.
const (
	LangAuto Language = "auto" // pick by file extension (and header classification)
	LangC    Language = "c"
	LangCPP  Language = "cpp"
)

// ParseLanguage converts a CLI flag value into a Language.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(s)) {
	case LangAuto:
		return LangAuto, nil
	case LangC:
		return LangC, nil
	case LangCPP, "c++":
		return LangCPP, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidLanguage, "invalid language: %s (must be 'auto', 'c', or 'cpp')", s)
	}
}

// cppSourceSuffixes are file extensions that unambiguously indicate C++.
var cppSourceSuffixes = map[string]bool{
	".cpp":  true,
	".hpp":  true,
	".cc":   true,
	".cxx":  true,
	".hxx":  true,
	".hh":   true,
	".ixx":  true,
	".cppm": true,
	".ccm":  true,
}

// DetectLanguage picks a grammar for path. Files with a C++ suffix parse as
// C++, bare .h headers go through the classification heuristic in
// [ClassifyHeader], and everything else parses as C.
func DetectLanguage(ctx context.Context, path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case cppSourceSuffixes[ext]:
		return LangCPP
	case ext == ".h":
		if isCPP, err := ClassifyHeader(ctx, path); err == nil && isCPP {
			return LangCPP
		}
		return LangC
	default:
		return LangC
	}
}

// grammar returns the tree-sitter language for lang. LangAuto must be
// resolved by the caller before parsing.
func grammar(lang Language) (*sitter.Language, error) {
	switch lang {
	case LangC:
		return c.GetLanguage(), nil
	case LangCPP:
		return cpp.GetLanguage(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidLanguage, "no grammar for language %q", lang)
	}
}

// Parse parses source with the given grammar and returns the resulting
// tree. The returned Tree keeps source alive for the node spans; callers
// should Close it when done.
func Parse(ctx context.Context, source []byte, lang Language) (*Tree, error) {
	g, err := grammar(lang)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(g)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParseFailed, err, "parse source")
	}
	return &Tree{tree: tree, src: source}, nil
}

// ParseFile reads and parses the file at path. With LangAuto the grammar is
// chosen by [DetectLanguage].
func ParseFile(ctx context.Context, path string, lang Language) (*Tree, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	if lang == LangAuto {
		lang = DetectLanguage(ctx, path)
	}
	return Parse(ctx, source, lang)
}
