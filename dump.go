package seqtree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented picture of the tree's structure to w, one node per
// line in pre-order. Each line shows which side of its parent a node hangs
// on, its value and the size of its subtree:
//
//	a [4]
//	  L c [1]
//	  R b [2]
//	    L d [1]
//
// Empty children are not printed.
func (t *Tree[T]) Dump(w io.Writer) error {
	return dumpSubtree[T](w, t.top(), "", 0)
}

// String returns the output of Dump. An empty tree results in an
// empty string.
func (t *Tree[T]) String() string {
	var b strings.Builder
	_ = t.Dump(&b)
	return b.String()
}

func dumpSubtree[T any](w io.Writer, s subtree[T], side string, depth int) error {
	n := asNode[T](s)
	if n == nil {
		return nil
	}
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%s%s%v [%d]\n", indent, side, n.value, n.n); err != nil {
		return err
	}
	if err := dumpSubtree[T](w, n.left, "L ", depth+1); err != nil {
		return err
	}
	return dumpSubtree[T](w, n.right, "R ", depth+1)
}
