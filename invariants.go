package seqtree

import "fmt"

// Check validates the size bookkeeping of every node.
//
// It is meant for tests and debugging; a violation indicates a bug in this
// package or concurrent modification of a tree.
func (t *Tree[T]) Check() error {
	_, err := checkSubtree[T](t.top(), 0)
	if err != nil {
		tracer().Errorf("seqtree: %v", err)
	}
	return err
}

// checkSubtree returns the number of elements under s. offset is the sequence
// position of the first element of s, used for error messages.
func checkSubtree[T any](s subtree[T], offset int) (int, error) {
	switch n := s.(type) {
	case nil:
		return 0, fmt.Errorf("%w: nil child near position %d", ErrCorruptTree, offset)
	case empty[T]:
		return 0, nil
	case *node[T]:
		if n == nil {
			return 0, fmt.Errorf("%w: nil node near position %d", ErrCorruptTree, offset)
		}
		l, err := checkSubtree[T](n.left, offset)
		if err != nil {
			return 0, err
		}
		r, err := checkSubtree[T](n.right, offset+l+1)
		if err != nil {
			return 0, err
		}
		if n.n != l+r+1 {
			return 0, fmt.Errorf("%w: node at position %d has size %d, subtree holds %d",
				ErrCorruptTree, offset+l, n.n, l+r+1)
		}
		return n.n, nil
	}
	return 0, fmt.Errorf("%w: unknown node type %T", ErrCorruptTree, s)
}
