package substrings

// partition is the child of a node that holds a requested local rank, along
// with the number of substrings owned by the siblings ordered before it.
// node is nil only when the rank overran the children, which means the counts
// are inconsistent.
type partition struct {
	before int
	node   *Node
}

// partitionOf scans n's children in label order and picks the first one whose
// running total reaches k (1-indexed).
func partitionOf(n *Node, k int) partition {
	before := 0
	for _, child := range n.children {
		if before+child.count >= k {
			return partition{before: before, node: child}
		}
		before += child.count
	}
	return partition{before: before}
}
