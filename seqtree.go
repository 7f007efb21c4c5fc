package seqtree

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// Tree is a counting binary tree holding a sequence of values of type T.
//
// A tree created by
//
//	Tree[T]{}
//
// is a valid object and behaves like the empty sequence.
//
// Positions are zero-based. Inserting at position i shifts all elements
// previously at positions ≥ i one position to the right. Elements are never
// moved physically, the shift results from the order of an in-order walk.
//
// Trees are not safe for concurrent use.
type Tree[T any] struct {
	root subtree[T] // nil or empty[T] for an empty tree
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{root: empty[T]{}}
}

// FromValues creates a tree holding values in order.
func FromValues[T any](values ...T) *Tree[T] {
	t := New[T]()
	for _, v := range values {
		t.Append(v)
	}
	return t
}

func (t *Tree[T]) top() subtree[T] {
	if t == nil || t.root == nil {
		return empty[T]{}
	}
	return t.root
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return t.top().size()
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.top().isEmpty()
}

// Insert inserts value at position index, where 0 ≤ index ≤ Len().
// An index outside of this range results in ErrIndexOutOfRange and leaves
// the tree unchanged.
//
// Insertion walks down from the root. If index is within the range of the
// left subtree, including the position right after its last element, the
// walk turns left. Otherwise it turns right, with index reduced by the
// left subtree's size plus one. The first empty slot reached takes the new
// node. Every node passed on the way counts one more element.
//
// There is no rebalancing.
func (t *Tree[T]) Insert(index int, value T) error {
	assert(t != nil, "Insert called on nil tree")
	size := t.Len()
	if index < 0 || index > size {
		tracer().Debugf("seqtree: rejecting insert at %d, length is %d", index, size)
		return fmt.Errorf("%w: insert at %d, length is %d", ErrIndexOutOfRange, index, size)
	}
	if t.root == nil {
		t.root = empty[T]{}
	}
	slot := &t.root
	for {
		n := asNode[T](*slot)
		if n == nil {
			*slot = newNode(value)
			return nil
		}
		n.n++
		if ls := n.left.size(); index <= ls {
			slot = &n.left
		} else {
			index -= ls + 1
			slot = &n.right
		}
	}
}

// Append adds value at the end of the sequence.
// It is equivalent to Insert(Len(), value).
func (t *Tree[T]) Append(value T) {
	err := t.Insert(t.Len(), value)
	assert(err == nil, "Append: insert at end of sequence failed")
}

// Height returns the number of nodes on the longest path from the root to
// a leaf, with 0 for an empty tree. For a tree built from random positions
// this is expected to be a small multiple of log₂(Len()).
func (t *Tree[T]) Height() int {
	root := asNode[T](t.top())
	if root == nil {
		return 0
	}
	type level struct {
		n     *node[T]
		depth int
	}
	height := 0
	stack := []level{{root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth > height {
			height = top.depth
		}
		if l := asNode[T](top.n.left); l != nil {
			stack = append(stack, level{l, top.depth + 1})
		}
		if r := asNode[T](top.n.right); r != nil {
			stack = append(stack, level{r, top.depth + 1})
		}
	}
	return height
}
