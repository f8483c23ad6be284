// Package langreg maps language names and file paths to loaded
// tree-sitter grammars. It bundles a small set of built-in grammars
// and uses go-enry to classify content when a file's extension is not
// decisive.
package langreg

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_json "github.com/tree-sitter/tree-sitter-json/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/yaklabco/syntree/pkg/syntree"
)

// Canonical names for the bundled grammars.
const (
	NameGo         = "go"
	NameJavaScript = "javascript"
	NameJSON       = "json"
	NamePython     = "python"
)

// entry describes one bundled grammar. Languages load lazily: a
// grammar's cgo symbol table is only touched once something asks for
// it.
type entry struct {
	name       string
	enryName   string
	extensions []string
	load       func() *syntree.Language
}

//nolint:gochecknoglobals // Read-only registry table.
var entries = []entry{
	{
		name:       NameGo,
		enryName:   "Go",
		extensions: []string{".go"},
		load:       sync.OnceValue(func() *syntree.Language { return syntree.NewLanguage(tree_sitter_go.Language()) }),
	},
	{
		name:       NameJavaScript,
		enryName:   "JavaScript",
		extensions: []string{".js", ".mjs", ".cjs", ".jsx"},
		load:       sync.OnceValue(func() *syntree.Language { return syntree.NewLanguage(tree_sitter_javascript.Language()) }),
	},
	{
		name:       NameJSON,
		enryName:   "JSON",
		extensions: []string{".json"},
		load:       sync.OnceValue(func() *syntree.Language { return syntree.NewLanguage(tree_sitter_json.Language()) }),
	},
	{
		name:       NamePython,
		enryName:   "Python",
		extensions: []string{".py", ".pyi"},
		load:       sync.OnceValue(func() *syntree.Language { return syntree.NewLanguage(tree_sitter_python.Language()) }),
	},
}

// Names returns the canonical names of all bundled grammars, sorted.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the grammar registered under the given canonical
// name. The lookup is case-insensitive. The second result is false for
// unknown names.
func ByName(name string) (*syntree.Language, bool) {
	lowered := strings.ToLower(name)
	for _, e := range entries {
		if e.name == lowered {
			return e.load(), true
		}
	}
	return nil, false
}

// ByPath returns the grammar matching the path's file extension, plus
// its canonical name. The second result is false when no bundled
// grammar claims the extension.
func ByPath(path string) (*syntree.Language, string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, "", false
	}
	for _, e := range entries {
		for _, candidate := range e.extensions {
			if candidate == ext {
				return e.load(), e.name, true
			}
		}
	}
	return nil, "", false
}

func byEnryName(name string) (*syntree.Language, string, bool) {
	for _, e := range entries {
		if e.enryName == name {
			return e.load(), e.name, true
		}
	}
	return nil, "", false
}
