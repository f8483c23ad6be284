package syntree_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/syntree/pkg/syntree"
)

// collectPreOrder gathers node IDs by recursing through the child
// iterator, independent of the cursor-driven Walk under test.
func collectPreOrder(n syntree.Node, out *[]syntree.NodeID) {
	*out = append(*out, n.ID())
	for child := range n.Children() {
		collectPreOrder(child, out)
	}
}

func TestWalk_VisitsEveryNodeInPreOrder(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, `[1, [2, {"k": null}], 3]`)
	root := tree.RootNode()

	var want []syntree.NodeID
	collectPreOrder(root, &want)

	var got []syntree.NodeID
	err := syntree.Walk(root, func(n syntree.Node) error {
		got = append(got, n.ID())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visit order diverges at index %d", i)
		}
	}
}

func TestWalk_NullRoot(t *testing.T) {
	t.Parallel()

	err := syntree.Walk(syntree.Node{}, func(syntree.Node) error {
		t.Error("callback should not run for the null handle")
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, `[1, 2, 3]`)
	sentinel := errors.New("done")

	visits := 0
	err := syntree.Walk(tree.RootNode(), func(syntree.Node) error {
		visits++
		if visits == 3 {
			return sentinel
		}
		return nil
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("Walk error = %v, want sentinel", err)
	}
	if visits != 3 {
		t.Errorf("visited %d nodes after stop, want 3", visits)
	}
}

func TestWalkWithContext_PairsEnterAndLeave(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, `[1, [2]]`)
	root := tree.RootNode()

	open := map[syntree.NodeID]int{}
	enters, leaves := 0, 0

	err := syntree.WalkWithContext(root,
		func(n syntree.Node) error {
			open[n.ID()]++
			enters++
			return nil
		},
		func(n syntree.Node) error {
			open[n.ID()]--
			if open[n.ID()] < 0 {
				t.Errorf("leave without matching enter for %q", n.Kind())
			}
			leaves++
			return nil
		})
	if err != nil {
		t.Fatalf("WalkWithContext: %v", err)
	}

	if enters != leaves {
		t.Errorf("enters = %d, leaves = %d", enters, leaves)
	}
	for id, n := range open {
		if n != 0 {
			t.Errorf("node %d entered %d more times than left", id, n)
		}
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, `[1, 2, [3]]`)

	numbers := syntree.FindByKind(tree.RootNode(), "number")
	if len(numbers) != 3 {
		t.Errorf("found %d number nodes, want 3", len(numbers))
	}
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, `[1, [2]]`)

	inner := syntree.FindFirst(tree.RootNode(), func(n syntree.Node) bool {
		return n.Kind() == "array" && n.Parent().Kind() == "array"
	})
	if inner.IsNull() {
		t.Fatal("expected to find the nested array")
	}
	if got := inner.NamedChildCount(); got != 1 {
		t.Errorf("nested array has %d named children, want 1", got)
	}

	missing := syntree.FindFirst(tree.RootNode(), func(n syntree.Node) bool {
		return n.Kind() == "object"
	})
	if !missing.IsNull() {
		t.Error("FindFirst with no match should yield the null handle")
	}
}
