package syntree

// WalkFunc is the callback signature for Walk. Returning a non-nil
// error stops the walk and propagates the error.
type WalkFunc func(n Node) error

// Walk performs a pre-order traversal of the subtree rooted at root.
// The traversal is driven by a single internal Cursor, so each step is
// amortized O(1) regardless of tree depth.
func Walk(root Node, walkFunc WalkFunc) error {
	return WalkWithContext(root, walkFunc, nil)
}

// WalkWithContext traverses the subtree rooted at root, calling enter
// before a node's children are visited and leave after. Either
// callback may be nil. A non-nil error from either stops the walk.
func WalkWithContext(root Node, enter, leave WalkFunc) error {
	if root.IsNull() {
		return nil
	}

	cursor := root.Cursor()
	defer cursor.Close()

	for {
		if enter != nil {
			if err := enter(cursor.Node()); err != nil {
				return err
			}
		}

		if cursor.GotoFirstChild() {
			continue
		}

		// Leaf reached: leave it, then climb until a sibling exists.
		if leave != nil {
			if err := leave(cursor.Node()); err != nil {
				return err
			}
		}
		for !cursor.GotoNextSibling() {
			if !cursor.GotoParent() {
				return nil
			}
			if leave != nil {
				if err := leave(cursor.Node()); err != nil {
					return err
				}
			}
		}
	}
}

// FindAll returns all nodes in the subtree matching the predicate, in
// pre-order.
func FindAll(root Node, predicate func(n Node) bool) []Node {
	var result []Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node in pre-order matching the
// predicate, or the null handle if none matches.
func FindFirst(root Node, predicate func(n Node) bool) Node {
	var found Node

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(node Node) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns all nodes in the subtree whose Kind matches.
func FindByKind(root Node, kind string) []Node {
	return FindAll(root, func(n Node) bool {
		return n.Kind() == kind
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
