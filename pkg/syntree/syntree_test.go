package syntree_test

import (
	"context"
	"testing"

	tree_sitter_json "github.com/tree-sitter/tree-sitter-json/bindings/go"

	"github.com/yaklabco/syntree/pkg/syntree"
)

// jsonLanguage returns the JSON grammar used by most tests in this
// package.
func jsonLanguage(t *testing.T) *syntree.Language {
	t.Helper()

	lang := syntree.NewLanguage(tree_sitter_json.Language())
	if lang == nil {
		t.Fatal("failed to load JSON language")
	}
	return lang
}

// parseJSON parses source under the JSON grammar and registers cleanup
// for the parser and tree.
func parseJSON(t *testing.T, source string) *syntree.Tree {
	t.Helper()

	parser, err := syntree.NewParser(jsonLanguage(t))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	t.Cleanup(parser.Close)

	tree, err := parser.ParseString(context.Background(), source)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", source, err)
	}
	t.Cleanup(tree.Close)

	return tree
}
