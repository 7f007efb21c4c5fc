package seqtree

import "iter"

// All returns an iterator over all elements in sequence order.
//
// The walk is lazy and depth-first. Every call starts a new walk over the
// current state of the tree; no snapshot is taken. The tree must not be
// modified while a walk is in progress.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.walk(func(_ int, v T) bool {
			return yield(v)
		})
	}
}

// Indexed is All with positions: it returns an iterator over
// (position, element) pairs in sequence order.
func (t *Tree[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		t.walk(yield)
	}
}

// Each visits all elements in sequence order.
//
// The callback receives each element's position and value. Iteration stops
// at the first callback error and returns that error to the caller.
func (t *Tree[T]) Each(f func(int, T) error) error {
	var err error
	t.walk(func(i int, v T) bool {
		err = f(i, v)
		return err == nil
	})
	return err
}

// Values returns all elements in sequence order as a newly allocated slice.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.Len())
	t.walk(func(_ int, v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// walk does an in-order traversal with an explicit stack, so degenerated
// (list-shaped) trees do not recurse once per element.
func (t *Tree[T]) walk(fn func(int, T) bool) {
	var stack []*node[T]
	cur := asNode[T](t.top())
	i := 0
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = asNode[T](cur.left)
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(i, cur.value) {
			return
		}
		i++
		cur = asNode[T](cur.right)
	}
}
