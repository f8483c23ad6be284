package syntree_test

import (
	"slices"
	"testing"

	"github.com/yaklabco/syntree/pkg/syntree"
)

func TestChildren_MatchesIndexedAccess(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, `[1, null, "x"]`)
	array := tree.RootNode().NamedChild(0)

	var got []syntree.NodeID
	for child := range array.Children() {
		got = append(got, child.ID())
	}

	k := array.ChildCount()
	if uint(len(got)) != k {
		t.Fatalf("iterated %d children, want %d", len(got), k)
	}
	for i := uint(0); i < k; i++ {
		if got[i] != array.Child(i).ID() {
			t.Errorf("child %d: iterated %d, indexed %d", i, got[i], array.Child(i).ID())
		}
	}
}

func TestChildren_Restartable(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, `[1, 2]`)
	array := tree.RootNode().NamedChild(0)
	seq := array.Children()

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	if len(first) == 0 {
		t.Fatal("expected a non-empty child sequence")
	}
	if len(first) != len(second) {
		t.Fatalf("restarted sequence has %d elements, want %d", len(second), len(first))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("element %d differs between acquisitions", i)
		}
	}
}

func TestChildren_EmptyCases(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, `[1]`)
	number := tree.RootNode().NamedChild(0).NamedChild(0)

	for range number.Children() {
		t.Error("a leaf should yield no children")
	}

	var null syntree.Node
	for range null.Children() {
		t.Error("the null handle should yield no children")
	}
}

func TestChildren_EarlyBreak(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, `[1, 2, 3]`)
	array := tree.RootNode().NamedChild(0)

	count := 0
	for range array.Children() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("stopped after %d elements, want 2", count)
	}
}

func TestNamedChildren_FiltersAnonymous(t *testing.T) {
	t.Parallel()

	tree := parseJSON(t, `[1, null]`)
	array := tree.RootNode().NamedChild(0)

	var kinds []string
	for child := range array.NamedChildren() {
		if !child.IsNamed() {
			t.Errorf("NamedChildren yielded anonymous node %q", child.Kind())
		}
		kinds = append(kinds, child.Kind())
	}

	want := []string{"number", "null"}
	if !slices.Equal(kinds, want) {
		t.Errorf("named children = %v, want %v", kinds, want)
	}
	if uint(len(kinds)) != array.NamedChildCount() {
		t.Errorf("yielded %d named children, count says %d", len(kinds), array.NamedChildCount())
	}
}
