package syntree

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Cursor is a stateful traversal position inside one Tree. Moving to
// the parent, a sibling, or a child of the current position is
// amortized O(1), which makes cursors the right tool for depth-first
// walks; re-deriving each step through separate Node handles walks
// from the root every time.
//
// A Cursor always denotes exactly one valid position. Each navigation
// method either succeeds and moves the cursor, or fails, returns
// false, and leaves the position unchanged.
//
// A Cursor borrows from the Tree it traverses and must not outlive it.
// A single Cursor is not safe for concurrent use; concurrent readers
// of one tree should each hold their own.
//
// All methods tolerate a nil receiver, treating it as a cursor whose
// every move fails and whose current node is the null handle.
type Cursor struct {
	inner *sitter.TreeCursor
}

// Close releases the cursor's engine-side state. The cursor must not
// be used afterwards.
func (c *Cursor) Close() {
	if c == nil || c.inner == nil {
		return
	}
	c.inner.Close()
	c.inner = nil
}

// Copy returns an independent cursor at the same position. The two
// cursors may then diverge freely.
func (c *Cursor) Copy() *Cursor {
	if c == nil || c.inner == nil {
		return nil
	}
	return &Cursor{inner: c.inner.Copy()}
}

// Node returns the handle for the cursor's current position.
func (c *Cursor) Node() Node {
	if c == nil || c.inner == nil {
		return Node{}
	}
	return wrapNode(c.inner.Node())
}

// Depth returns the number of ancestor steps between the current
// position and the node the cursor was constructed at or last Reset
// to.
func (c *Cursor) Depth() uint32 {
	if c == nil || c.inner == nil {
		return 0
	}
	return c.inner.Depth()
}

// Reset rebinds the cursor to an arbitrary node, which may belong to a
// different tree, and zeroes the depth origin. Resetting to the null
// handle is a no-op.
func (c *Cursor) Reset(node Node) {
	if c == nil || c.inner == nil || node.inner == nil {
		return
	}
	c.inner.Reset(*node.inner)
}

// ResetTo rebinds the cursor to another cursor's exact position and
// depth state.
func (c *Cursor) ResetTo(other *Cursor) {
	if c == nil || c.inner == nil || other == nil || other.inner == nil {
		return
	}
	c.inner.ResetTo(other.inner)
}

// GotoParent moves to the parent of the current node. It returns false
// without moving if the cursor is already at the node it was bound to.
func (c *Cursor) GotoParent() bool {
	if c == nil || c.inner == nil {
		return false
	}
	return c.inner.GotoParent()
}

// GotoFirstChild moves to the first child of the current node. It
// returns false without moving if the node has no children.
func (c *Cursor) GotoFirstChild() bool {
	if c == nil || c.inner == nil {
		return false
	}
	return c.inner.GotoFirstChild()
}

// GotoLastChild moves to the last child of the current node. It
// returns false without moving if the node has no children.
func (c *Cursor) GotoLastChild() bool {
	if c == nil || c.inner == nil {
		return false
	}
	return c.inner.GotoLastChild()
}

// GotoNextSibling moves to the next sibling of the current node. It
// returns false without moving at the end of the sibling list.
func (c *Cursor) GotoNextSibling() bool {
	if c == nil || c.inner == nil {
		return false
	}
	return c.inner.GotoNextSibling()
}

// GotoPreviousSibling moves to the previous sibling of the current
// node. It returns false without moving at the start of the sibling
// list.
func (c *Cursor) GotoPreviousSibling() bool {
	if c == nil || c.inner == nil {
		return false
	}
	return c.inner.GotoPreviousSibling()
}
