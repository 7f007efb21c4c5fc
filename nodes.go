package seqtree

// subtree is either a *node or the empty marker. Children are never nil
// pointers, so recursive helpers can ask any child for its size.
type subtree[T any] interface {
	size() int
	isEmpty() bool
}

// empty marks the absence of a node. It is a distinct type, not a value, so
// a tree may hold any value of T without ambiguity.
type empty[T any] struct{}

func (empty[T]) size() int     { return 0 }
func (empty[T]) isEmpty() bool { return true }

type node[T any] struct {
	value T
	left  subtree[T]
	right subtree[T]
	// n is the number of elements in this subtree, including this node:
	// n == 1 + left.size() + right.size()
	n int
}

func newNode[T any](value T) *node[T] {
	return &node[T]{
		value: value,
		left:  empty[T]{},
		right: empty[T]{},
		n:     1,
	}
}

func (n *node[T]) size() int     { return n.n }
func (n *node[T]) isEmpty() bool { return false }

// asNode returns s as a node, or nil for the empty marker.
func asNode[T any](s subtree[T]) *node[T] {
	if n, ok := s.(*node[T]); ok {
		return n
	}
	return nil
}
