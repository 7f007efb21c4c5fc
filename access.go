package seqtree

import "fmt"

// Get returns the element at position index, where 0 ≤ index < Len().
func (t *Tree[T]) Get(index int) (T, error) {
	if err := t.checkElementIndex("get", index); err != nil {
		var zero T
		return zero, err
	}
	return t.locate(index).value, nil
}

// Set replaces the element at position index and returns the element
// previously stored there. The shape of the tree does not change.
func (t *Tree[T]) Set(index int, value T) (T, error) {
	if err := t.checkElementIndex("set", index); err != nil {
		var zero T
		return zero, err
	}
	n := t.locate(index)
	old := n.value
	n.value = value
	return old, nil
}

// Delete removes the element at position index and returns it. All elements
// after index move one position to the left.
//
// A node with at most one child is replaced by that child. A node with two
// children takes over the value of its in-order successor, i.e. the leftmost
// node of its right subtree, and the successor node is removed instead.
// Like insertion, deletion does not rebalance.
func (t *Tree[T]) Delete(index int) (T, error) {
	if err := t.checkElementIndex("delete", index); err != nil {
		var zero T
		return zero, err
	}
	slot := &t.root
	for {
		n := asNode[T](*slot)
		assert(n != nil, "Delete: position not found in non-empty subtree")
		ls := n.left.size()
		if index == ls {
			break
		}
		n.n--
		if index < ls {
			slot = &n.left
		} else {
			index -= ls + 1
			slot = &n.right
		}
	}
	target := asNode[T](*slot)
	removed := target.value
	switch {
	case target.left.isEmpty():
		*slot = target.right
	case target.right.isEmpty():
		*slot = target.left
	default:
		target.n--
		succ := &target.right
		for {
			m := asNode[T](*succ)
			if m.left.isEmpty() {
				target.value = m.value
				*succ = m.right
				break
			}
			m.n--
			succ = &m.left
		}
	}
	return removed, nil
}

// locate finds the node at a position known to be valid.
func (t *Tree[T]) locate(index int) *node[T] {
	cur := asNode[T](t.top())
	for cur != nil {
		ls := cur.left.size()
		switch {
		case index < ls:
			cur = asNode[T](cur.left)
		case index == ls:
			return cur
		default:
			index -= ls + 1
			cur = asNode[T](cur.right)
		}
	}
	panic("locate: position not found in tree")
}

func (t *Tree[T]) checkElementIndex(op string, index int) error {
	if size := t.Len(); index < 0 || index >= size {
		tracer().Debugf("seqtree: rejecting %s at %d, length is %d", op, index, size)
		return fmt.Errorf("%w: %s at %d, length is %d", ErrIndexOutOfRange, op, index, size)
	}
	return nil
}
