package syntree

import (
	"unsafe"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Language binds one grammar's compiled definition. Its introspection
// surface exists for diagnostics and dynamic symbol lookup; core
// traversal never needs it.
type Language struct {
	inner *sitter.Language
}

// NewLanguage wraps the raw grammar pointer exported by a grammar's
// generated Go bindings, e.g. tree_sitter_json.Language().
func NewLanguage(ptr unsafe.Pointer) *Language {
	if ptr == nil {
		return nil
	}
	return &Language{inner: sitter.NewLanguage(ptr)}
}

// SymbolCount returns the number of distinct symbols in the grammar.
func (l *Language) SymbolCount() uint32 {
	if l == nil || l.inner == nil {
		return 0
	}
	return l.inner.NodeKindCount()
}

// SymbolName returns the grammar's name for a symbol, or "" for an
// unknown symbol.
func (l *Language) SymbolName(sym Symbol) string {
	if l == nil || l.inner == nil {
		return ""
	}
	return l.inner.NodeKindForId(uint16(sym))
}

// SymbolIsNamed reports whether a symbol corresponds to a named rule
// rather than an anonymous token.
func (l *Language) SymbolIsNamed(sym Symbol) bool {
	if l == nil || l.inner == nil {
		return false
	}
	return l.inner.NodeKindIsNamed(uint16(sym))
}

// SymbolForName looks up the symbol for a production or token name.
// The named flag selects between the named and anonymous namespaces,
// which may assign the same spelling different symbols. The second
// result is false when the grammar has no such name.
func (l *Language) SymbolForName(name string, named bool) (Symbol, bool) {
	if l == nil || l.inner == nil {
		return 0, false
	}
	id := l.inner.IdForNodeKind(name, named)
	if id == 0 {
		return 0, false
	}
	return Symbol(id), true
}

// AbiVersion returns the engine ABI version the grammar was generated
// against.
func (l *Language) AbiVersion() uint32 {
	if l == nil || l.inner == nil {
		return 0
	}
	return l.inner.AbiVersion()
}
