// Package syntree provides safe, ergonomic navigation over concrete
// syntax trees produced by the tree-sitter parsing engine. It defines:
// - Tree: the exclusive owner of one parsed structure
// - Node: a copyable, null-safe handle into a Tree
// - Cursor: a stateful traversal position with O(1) relative moves
// - Children/NamedChildren: lazy, restartable child sequences
// - Parser and Language: thin factories binding a grammar to source text
//
// The engine itself is consumed as a dependency; this package neither
// parses nor re-implements any of its structure.
package syntree

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Tree owns the parsed structure for one source text under one
// grammar. Node handles and Cursors borrow from it: the Tree must
// outlive every handle and cursor derived from it, and this package
// performs no reference counting across that boundary. After Close,
// derived handles and cursors are dangling and must not be used.
//
// A Tree is never mutated after parsing, so any number of goroutines
// may traverse it concurrently as long as each holds its own Cursor.
type Tree struct {
	inner *sitter.Tree
}

// RootNode returns the tree's top-level node. It is never the null
// handle for a successfully parsed input, even a syntactically invalid
// one: error recovery embeds error nodes in the structure instead of
// aborting construction.
func (t *Tree) RootNode() Node {
	if t == nil || t.inner == nil {
		return Node{}
	}
	return wrapNode(t.inner.RootNode())
}

// Language returns the grammar the tree was parsed with, or nil for a
// closed tree.
func (t *Tree) Language() *Language {
	if t == nil || t.inner == nil {
		return nil
	}
	return &Language{inner: t.inner.Language()}
}

// HasError reports whether the parse recovered from any syntax error,
// i.e. whether the root node's HasError flag is set.
func (t *Tree) HasError() bool {
	return t.RootNode().HasError()
}

// Close releases the owned structure. It is idempotent. Every Node and
// Cursor derived from the tree is invalid afterwards.
func (t *Tree) Close() {
	if t == nil || t.inner == nil {
		return
	}
	t.inner.Close()
	t.inner = nil
}
