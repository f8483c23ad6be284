package syntree_test

import (
	"context"
	"strings"
	"testing"

	tree_sitter_json "github.com/tree-sitter/tree-sitter-json/bindings/go"

	"github.com/yaklabco/syntree/pkg/syntree"
)

func TestNewParser_NilLanguage(t *testing.T) {
	t.Parallel()

	if _, err := syntree.NewParser(nil); err == nil {
		t.Error("NewParser(nil) should fail")
	}
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	parser, err := syntree.NewParser(jsonLanguage(t))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	defer parser.Close()

	tree, err := parser.Parse(context.Background(), []byte(`{"ok": true}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer tree.Close()

	if tree.HasError() {
		t.Error("well-formed input should parse without errors")
	}
	if tree.RootNode().Kind() != "document" {
		t.Errorf("root kind = %q, want document", tree.RootNode().Kind())
	}
}

func TestParser_ParseCancelledContext(t *testing.T) {
	t.Parallel()

	parser, err := syntree.NewParser(jsonLanguage(t))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	defer parser.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := parser.Parse(ctx, []byte(`{}`)); err == nil {
		t.Error("Parse with a cancelled context should fail")
	}
}

func TestParser_UseAfterClose(t *testing.T) {
	t.Parallel()

	parser, err := syntree.NewParser(jsonLanguage(t))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	parser.Close()
	parser.Close() // idempotent

	if _, err := parser.Parse(context.Background(), []byte(`{}`)); err == nil {
		t.Error("Parse on a closed parser should fail")
	}
}

func TestParser_EmptySource(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, "")

	root := tree.RootNode()
	if root.IsNull() {
		t.Fatal("empty input should still yield a root")
	}
	if root.ChildCount() != 0 {
		t.Errorf("empty document has %d children, want 0", root.ChildCount())
	}
}

func TestTree_CloseIdempotent(t *testing.T) {
	t.Parallel()

	parser, err := syntree.NewParser(jsonLanguage(t))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	defer parser.Close()

	tree, err := parser.ParseString(context.Background(), `[]`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	tree.Close()
	tree.Close()

	if !tree.RootNode().IsNull() {
		t.Error("a closed tree should hand out only the null handle")
	}
	if tree.HasError() {
		t.Error("a closed tree should not report errors")
	}
}

func TestTree_Language(t *testing.T) {
	t.Parallel()

	lang := jsonLanguage(t)
	parser, err := syntree.NewParser(lang)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	defer parser.Close()

	tree, err := parser.ParseString(context.Background(), `[1]`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	defer tree.Close()

	got := tree.Language()
	if got == nil {
		t.Fatal("a live tree should expose its language")
	}
	if got.SymbolCount() != lang.SymbolCount() {
		t.Errorf("tree language has %d symbols, parser language has %d",
			got.SymbolCount(), lang.SymbolCount())
	}

	var closed *syntree.Tree
	if closed.Language() != nil {
		t.Error("a nil tree should have no language")
	}
}

func TestLanguage_Introspection(t *testing.T) {
	t.Parallel()

	lang := jsonLanguage(t)

	if lang.SymbolCount() == 0 {
		t.Error("JSON grammar should have symbols")
	}
	if lang.AbiVersion() == 0 {
		t.Error("AbiVersion should be non-zero")
	}

	// Every well-known JSON production must resolve and round-trip.
	for _, kind := range []string{"document", "array", "object", "pair", "number", "string"} {
		sym, ok := lang.SymbolForName(kind, true)
		if !ok {
			t.Errorf("SymbolForName(%q) not found", kind)
			continue
		}
		if got := lang.SymbolName(sym); got != kind {
			t.Errorf("SymbolName(SymbolForName(%q)) = %q", kind, got)
		}
	}

	if _, ok := lang.SymbolForName("no_such_production", true); ok {
		t.Error("unknown production should not resolve")
	}
}

func TestLanguage_NilSafety(t *testing.T) {
	t.Parallel()

	if syntree.NewLanguage(nil) != nil {
		t.Error("NewLanguage(nil) should yield nil")
	}

	var lang *syntree.Language
	if lang.SymbolCount() != 0 || lang.AbiVersion() != 0 {
		t.Error("nil language should report zero counts")
	}
	if lang.SymbolName(1) != "" {
		t.Error("nil language should have no symbol names")
	}
	if _, ok := lang.SymbolForName("array", true); ok {
		t.Error("nil language should resolve nothing")
	}
}

func BenchmarkCursorTraversal(b *testing.B) {
	tree, src := benchmarkTree(b)
	defer tree.Close()
	_ = src

	b.ResetTimer()
	for range b.N {
		count := 0
		//nolint:errcheck // the callback never fails
		syntree.Walk(tree.RootNode(), func(syntree.Node) error {
			count++
			return nil
		})
	}
}

func BenchmarkNodeTraversal(b *testing.B) {
	tree, src := benchmarkTree(b)
	defer tree.Close()
	_ = src

	var recurse func(n syntree.Node) int
	recurse = func(n syntree.Node) int {
		count := 1
		for i := uint(0); i < n.ChildCount(); i++ {
			count += recurse(n.Child(i))
		}
		return count
	}

	b.ResetTimer()
	for range b.N {
		recurse(tree.RootNode())
	}
}

func benchmarkTree(b *testing.B) (*syntree.Tree, string) {
	b.Helper()

	var sb strings.Builder
	sb.WriteString("[")
	for i := range 200 {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(`{"key": [1, 2, null]}`)
	}
	sb.WriteString("]")
	source := sb.String()

	lang := syntree.NewLanguage(tree_sitter_json.Language())
	parser, err := syntree.NewParser(lang)
	if err != nil {
		b.Fatalf("NewParser: %v", err)
	}
	b.Cleanup(parser.Close)

	tree, err := parser.ParseString(context.Background(), source)
	if err != nil {
		b.Fatalf("ParseString: %v", err)
	}
	return tree, source
}
