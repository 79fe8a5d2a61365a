package substrings

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Visitor is called once per node with its depth below the starting node.
// Returning false prunes the node's subtree.
type Visitor func(n *Node, depth int) bool

// WalkDepthFirst visits n and its descendants in pre-order, children in label
// order. That order is rank order.
func WalkDepthFirst(n *Node, v Visitor) {
	walk(n, 0, v)
}

func walk(n *Node, depth int, v Visitor) {
	if !v(n, depth) {
		return
	}
	for _, child := range n.children {
		walk(child, depth+1, v)
	}
}

// WalkBreadthFirst visits n and its descendants level by level, each level
// in label order.
func WalkBreadthFirst(n *Node, v Visitor) {
	type queued struct {
		node  *Node
		depth int
	}
	queue := []queued{{node: n}}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if !v(next.node, next.depth) {
			continue
		}
		for _, child := range next.node.children {
			queue = append(queue, queued{node: child, depth: next.depth + 1})
		}
	}
}

// Dump writes one "label|count" line per node, depth first, indented by depth.
// The root is written as ".".
func (s *Set) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var err error
	WalkDepthFirst(s.root, func(n *Node, depth int) bool {
		label := "."
		if n != s.root {
			label = string(n.label)
		}
		_, err = fmt.Fprintf(bw, "%s%s|%d\n", strings.Repeat("  ", depth), label, n.count)
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// All lists every distinct substring in rank order, so All()[k-1] == Find(k).
func (s *Set) All() []string {
	result := make([]string, 0, s.Size())
	path := []rune{}
	var collect func(n *Node)
	collect = func(n *Node) {
		for _, child := range n.children {
			path = append(path, child.label)
			result = append(result, string(path))
			collect(child)
			path = path[:len(path)-1]
		}
	}
	collect(s.root)
	return result
}
