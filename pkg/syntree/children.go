package syntree

import "iter"

// Children returns a lazy, finite sequence over this node's direct
// children, anonymous syntax included, in source order. Each range
// over the sequence builds a fresh cursor internally and releases it
// when iteration stops, so the sequence is restartable: ranging twice
// yields the children from the start both times. The sequence is empty
// for the null handle and for leaf nodes.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		cursor := n.Cursor()
		if cursor == nil {
			return
		}
		defer cursor.Close()
		for ok := cursor.GotoFirstChild(); ok; ok = cursor.GotoNextSibling() {
			if !yield(cursor.Node()) {
				return
			}
		}
	}
}

// NamedChildren returns the subsequence of Children holding only named
// nodes. It has the same laziness and restartability as Children.
func (n Node) NamedChildren() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for child := range n.Children() {
			if !child.IsNamed() {
				continue
			}
			if !yield(child) {
				return
			}
		}
	}
}
