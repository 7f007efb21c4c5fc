package bench

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/seqtree"
)

// Sequence is an ordered sequence supporting insertion at arbitrary
// positions. Insert must reject positions outside of [0…Len] with an error
// wrapping seqtree.ErrIndexOutOfRange.
type Sequence[T any] interface {
	Insert(index int, value T) error
	Len() int
	All() iter.Seq[T]
}

var _ Sequence[int] = (*seqtree.Tree[int])(nil)
var _ Sequence[int] = (*Slice[int])(nil)

// Slice is the flat baseline: a Go slice where every insertion shifts all
// following elements.
//
// The zero value is an empty sequence.
type Slice[T any] struct {
	items []T
}

// Insert inserts value at position index.
func (s *Slice[T]) Insert(index int, value T) error {
	if index < 0 || index > len(s.items) {
		return fmt.Errorf("%w: insert at %d, length is %d", seqtree.ErrIndexOutOfRange,
			index, len(s.items))
	}
	s.items = slices.Insert(s.items, index, value)
	return nil
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// All returns an iterator over all elements in order.
func (s *Slice[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}
