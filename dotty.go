package seqtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() *nodeids[T] {
	return &nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if n != nil {
		if id, ok := ids.idTable[n]; ok {
			return id
		}
		ids.idTable[n] = ids.max
	}
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are labeled with their value and subtree size; empty children are
// drawn as small blank circles.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	var visit func(n *node[T]) int
	visit = func(n *node[T]) int {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%s\\n[%d]", escapeDot(fmt.Sprint(n.value)), n.n)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(false))
		for _, child := range []subtree[T]{n.left, n.right} {
			var childID int
			if c := asNode[T](child); c != nil {
				childID = visit(c)
			} else {
				childID = ids.alloc(nil)
				fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"\"%s];\n", childID, nodeDotStyles(true))
			}
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", ID, childID)
		}
		return ID
	}
	if root := asNode[T](tree.top()); root != nil {
		visit(root)
	}
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isEmpty bool) string {
	if isEmpty {
		return ",color=black,shape=circle,fixedsize=true,width=.2"
	}
	return ",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=box"
}

// escapeDot quotes characters which would end or alter a DOT string label.
// Backslashes have to be escaped first.
func escapeDot(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
