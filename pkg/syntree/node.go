package syntree

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Symbol is the grammar's numeric classification of a node's production
// or token kind.
type Symbol uint16

// NodeID uniquely identifies a node within its tree. It is comparable
// and hashable, so it can serve as a map or set key when deduplicating
// or memoizing across traversals of the same tree.
type NodeID uintptr

// Node is a lightweight, copyable handle referencing one position in a
// Tree. It borrows from the Tree that produced it and is valid exactly
// as long as that Tree has not been closed.
//
// The zero Node is the null handle. Every method is safe to call on a
// null handle; navigation past the edge of the tree (the parent of the
// root, a child index out of range, a missing field) yields the null
// handle rather than an error, so navigation chains compose without
// per-step guards.
type Node struct {
	inner *sitter.Node
}

func wrapNode(inner *sitter.Node) Node {
	return Node{inner: inner}
}

// IsNull reports whether this is the null handle.
func (n Node) IsNull() bool {
	return n.inner == nil
}

// IsNamed reports whether this node is named in the grammar, as opposed
// to anonymous syntax such as punctuation.
func (n Node) IsNamed() bool {
	return n.inner != nil && n.inner.IsNamed()
}

// IsMissing reports whether this node was inserted by the engine's
// error recovery to complete an otherwise-broken production.
func (n Node) IsMissing() bool {
	return n.inner != nil && n.inner.IsMissing()
}

// IsExtra reports whether this node is an "extra" (such as a comment)
// that can appear anywhere in the tree.
func (n Node) IsExtra() bool {
	return n.inner != nil && n.inner.IsExtra()
}

// HasError reports whether this node or any of its descendants is a
// syntax error.
func (n Node) HasError() bool {
	return n.inner != nil && n.inner.HasError()
}

// IsError reports whether this specific node is a syntax-error node.
func (n Node) IsError() bool {
	return n.inner != nil && n.inner.IsError()
}

// Parent returns this node's parent, or the null handle for the root.
func (n Node) Parent() Node {
	if n.inner == nil {
		return Node{}
	}
	return wrapNode(n.inner.Parent())
}

// PrevSibling returns the previous sibling, or the null handle at the
// start of the sibling list.
func (n Node) PrevSibling() Node {
	if n.inner == nil {
		return Node{}
	}
	return wrapNode(n.inner.PrevSibling())
}

// NextSibling returns the next sibling, or the null handle at the end
// of the sibling list.
func (n Node) NextSibling() Node {
	if n.inner == nil {
		return Node{}
	}
	return wrapNode(n.inner.NextSibling())
}

// ChildCount returns the number of children, counting anonymous syntax
// as well as named nodes.
func (n Node) ChildCount() uint {
	if n.inner == nil {
		return 0
	}
	return n.inner.ChildCount()
}

// Child returns the i-th child, or the null handle if i is out of
// range.
func (n Node) Child(i uint) Node {
	if n.inner == nil {
		return Node{}
	}
	return wrapNode(n.inner.Child(i))
}

// NamedChildCount returns the number of named children.
func (n Node) NamedChildCount() uint {
	if n.inner == nil {
		return 0
	}
	return n.inner.NamedChildCount()
}

// NamedChild returns the i-th named child, skipping anonymous syntax,
// or the null handle if i is out of range.
func (n Node) NamedChild(i uint) Node {
	if n.inner == nil {
		return Node{}
	}
	return wrapNode(n.inner.NamedChild(i))
}

// FieldNameForChild returns the grammar field name bound to the i-th
// child, or "" if that position has no field.
func (n Node) FieldNameForChild(i uint32) string {
	if n.inner == nil {
		return ""
	}
	return n.inner.FieldNameForChild(i)
}

// ChildByFieldName returns the child bound to the given field name, or
// the null handle if this node's production has no such field.
func (n Node) ChildByFieldName(name string) Node {
	if n.inner == nil {
		return Node{}
	}
	return wrapNode(n.inner.ChildByFieldName(name))
}

// ID returns this node's identity. Two handles reached by different
// navigation paths compare equal exactly when they denote the same
// structural position. The null handle's ID is zero.
func (n Node) ID() NodeID {
	if n.inner == nil {
		return 0
	}
	return NodeID(n.inner.Id())
}

// Equal reports whether both handles denote the same position in the
// same tree.
func (n Node) Equal(other Node) bool {
	return n.ID() == other.ID()
}

// Symbol returns the grammar's numeric classification for this node.
func (n Node) Symbol() Symbol {
	if n.inner == nil {
		return 0
	}
	return Symbol(n.inner.KindId())
}

// Kind returns the grammar's name for this node's production, such as
// "array" or "string_literal".
func (n Node) Kind() string {
	if n.inner == nil {
		return ""
	}
	return n.inner.Kind()
}

// SExpr returns a parenthesized dump of the subtree rooted at this
// node. It is meant for debugging and snapshot tests, not for machine
// consumption.
func (n Node) SExpr() string {
	if n.inner == nil {
		return ""
	}
	return n.inner.ToSexp()
}

// ByteExtent returns the byte-offset span this node occupies in the
// parsed source.
func (n Node) ByteExtent() ByteExtent {
	if n.inner == nil {
		return ByteExtent{}
	}
	return ByteExtent{Start: n.inner.StartByte(), End: n.inner.EndByte()}
}

// PointExtent returns the row/column span this node occupies in the
// parsed source.
func (n Node) PointExtent() PointExtent {
	if n.inner == nil {
		return PointExtent{}
	}
	start := n.inner.StartPosition()
	end := n.inner.EndPosition()
	return PointExtent{
		Start: Point{Row: start.Row, Column: start.Column},
		End:   Point{Row: end.Row, Column: end.Column},
	}
}

// Text slices the literal source text this node spans out of source,
// which must be the same text that was parsed. The handle itself keeps
// no copy of the source.
func (n Node) Text(source []byte) []byte {
	if n.inner == nil {
		return nil
	}
	ext := n.ByteExtent()
	if ext.End > uint(len(source)) {
		return nil
	}
	return source[ext.Start:ext.End]
}

// Cursor returns a new Cursor positioned at this node, or nil for the
// null handle. The caller should Close the cursor when done.
func (n Node) Cursor() *Cursor {
	if n.inner == nil {
		return nil
	}
	return &Cursor{inner: n.inner.Walk()}
}
