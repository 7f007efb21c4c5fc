package seqtree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestZeroTreeIsEmpty(t *testing.T) {
	var tree Tree[string]
	if tree.Len() != 0 || !tree.IsEmpty() {
		t.Fatalf("expected zero tree to be empty, has length %d", tree.Len())
	}
	if got := tree.Values(); len(got) != 0 {
		t.Fatalf("expected no values, got %v", got)
	}
	if tree.Height() != 0 {
		t.Fatalf("expected height 0, got %d", tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to validate, got %v", err)
	}
	if err := tree.Insert(0, "x"); err != nil {
		t.Fatalf("insert into zero tree failed: %v", err)
	}
	if tree.Len() != 1 {
		t.Fatalf("expected length 1, got %d", tree.Len())
	}
}

func TestInsertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqtree")
	defer teardown()
	//
	tree := New[string]()
	inserts := []struct {
		index int
		value string
	}{
		{0, "a"}, {1, "b"}, {0, "c"}, {2, "d"},
	}
	for _, ins := range inserts {
		if err := tree.Insert(ins.index, ins.value); err != nil {
			t.Fatalf("insert(%d, %q) failed: %v", ins.index, ins.value, err)
		}
	}
	want := []string{"c", "a", "d", "b"}
	if diff := cmp.Diff(want, tree.Values()); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
	if tree.Len() != 4 {
		t.Fatalf("expected length 4, got %d", tree.Len())
	}
	t.Logf("tree =\n%s", tree)
	//
	err := tree.Insert(5, "x")
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for insert(5), got %v", err)
	}
	if diff := cmp.Diff(want, tree.Values()); diff != "" {
		t.Fatalf("failed insert modified tree (-want +got):\n%s", diff)
	}
	if tree.Len() != 4 {
		t.Fatalf("failed insert changed length to %d", tree.Len())
	}
}

func TestInsertScenarioShape(t *testing.T) {
	tree := New[string]()
	_ = tree.Insert(0, "a")
	_ = tree.Insert(1, "b")
	_ = tree.Insert(0, "c")
	_ = tree.Insert(2, "d")
	want := "a [4]\n" +
		"  L c [1]\n" +
		"  R b [2]\n" +
		"    L d [1]\n"
	if got := tree.String(); got != want {
		t.Fatalf("unexpected tree shape:\n%s\nwant:\n%s", got, want)
	}
	if tree.Height() != 3 {
		t.Fatalf("expected height 3, got %d", tree.Height())
	}
}

func TestInsertBoundaries(t *testing.T) {
	tree := New[int]()
	if err := tree.Insert(0, 7); err != nil {
		t.Fatalf("insert(0) on empty tree failed: %v", err)
	}
	if diff := cmp.Diff([]int{7}, tree.Values()); diff != "" {
		t.Fatalf("unexpected sequence (-want +got):\n%s", diff)
	}
	for i := 0; i < 5; i++ {
		if err := tree.Insert(tree.Len(), i); err != nil {
			t.Fatalf("insert at end failed: %v", err)
		}
	}
	before := tree.Values()
	for _, index := range []int{-1, tree.Len() + 1, tree.Len() + 100} {
		err := tree.Insert(index, 99)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange for insert(%d), got %v", index, err)
		}
		if tree.Len() != len(before) {
			t.Fatalf("insert(%d) changed length to %d", index, tree.Len())
		}
		if diff := cmp.Diff(before, tree.Values()); diff != "" {
			t.Fatalf("insert(%d) modified sequence (-want +got):\n%s", index, diff)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestAppendOnlyDegeneratesToList(t *testing.T) {
	tree := New[int]()
	const n = 200
	for i := 0; i < n; i++ {
		tree.Append(i)
	}
	if tree.Height() != n {
		t.Fatalf("expected right spine of height %d, got %d", n, tree.Height())
	}
	values := tree.Values()
	for i, v := range values {
		if v != i {
			t.Fatalf("expected %d at position %d, got %d", i, i, v)
		}
	}
}

func TestPrependReversesOrder(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 50; i++ {
		if err := tree.Insert(0, i); err != nil {
			t.Fatalf("insert(0) failed: %v", err)
		}
	}
	values := tree.Values()
	for i, v := range values {
		if v != 49-i {
			t.Fatalf("expected %d at position %d, got %d", 49-i, i, v)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestInsertShiftsFollowingElements(t *testing.T) {
	tree := FromValues("a", "b", "c", "d", "e")
	before := tree.Values()
	if err := tree.Insert(2, "X"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	after := tree.Values()
	if after[2] != "X" {
		t.Fatalf("expected X at position 2, got %q", after[2])
	}
	if diff := cmp.Diff(before[:2], after[:2]); diff != "" {
		t.Fatalf("elements before insertion point changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before[2:], after[3:]); diff != "" {
		t.Fatalf("elements after insertion point not shifted (-want +got):\n%s", diff)
	}
}

func TestValuesLookingLikeEmptyAreStored(t *testing.T) {
	tree := New[any]()
	tree.Append(nil)
	tree.Append(empty[any]{})
	tree.Append("")
	if tree.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	values := tree.Values()
	if values[0] != nil || values[2] != "" {
		t.Fatalf("unexpected values %v", values)
	}
}

func TestIterationIsRepeatable(t *testing.T) {
	tree := FromValues(3, 1, 4, 1, 5, 9, 2, 6)
	var first, second []int
	for v := range tree.All() {
		first = append(first, v)
	}
	for v := range tree.All() {
		second = append(second, v)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("iterations differ (-first +second):\n%s", diff)
	}
	tree.Append(5)
	var third []int
	for v := range tree.All() {
		third = append(third, v)
	}
	if len(third) != len(first)+1 || third[len(third)-1] != 5 {
		t.Fatalf("iteration does not reflect mutation: %v", third)
	}
}

func TestIterationStopsEarly(t *testing.T) {
	tree := FromValues(0, 1, 2, 3, 4, 5)
	var seen []int
	for v := range tree.All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, seen); diff != "" {
		t.Fatalf("unexpected prefix (-want +got):\n%s", diff)
	}
	for i, v := range tree.Indexed() {
		if i != v {
			t.Fatalf("expected position %d to hold %d, got %d", i, i, v)
		}
	}
}

func TestEachStopsAtError(t *testing.T) {
	tree := FromValues("a", "b", "c")
	stop := errors.New("stop")
	var visited []int
	err := tree.Each(func(i int, _ string) error {
		visited = append(visited, i)
		if i == 1 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if diff := cmp.Diff([]int{0, 1}, visited); diff != "" {
		t.Fatalf("unexpected visits (-want +got):\n%s", diff)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := FromValues(1, 2, 3)
	asNode[int](tree.root).n = 7
	err := tree.Check()
	if !errors.Is(err, ErrCorruptTree) {
		t.Fatalf("expected ErrCorruptTree, got %v", err)
	}
}
