package substrings

import "sort"

// rootLabel marks the sentinel root. It is never written into a result.
const rootLabel rune = 0

// Node is one position in the suffix trie. The path of labels from the root
// down to a node spells exactly one distinct substring.
type Node struct {
	label rune
	// ascending by label; this order is what defines rank.
	children []*Node
	// substrings ending at or below this node, itself included.
	count int
}

func newNode(label rune) *Node {
	return &Node{label: label, count: 1}
}

func (n *Node) Label() rune {
	return n.label
}

func (n *Node) Count() int {
	return n.count
}

// Children returns the children in ascending label order. The slice is owned
// by the node and must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the child labelled c, or nil.
func (n *Node) Child(c rune) *Node {
	if i, ok := n.search(c); ok {
		return n.children[i]
	}
	return nil
}

func (n *Node) search(c rune) (int, bool) {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].label >= c
	})
	return i, i < len(n.children) && n.children[i].label == c
}

// attach returns the child labelled c, creating it when absent. created
// reports whether a new node was made.
func (n *Node) attach(c rune) (child *Node, created bool) {
	i, ok := n.search(c)
	if ok {
		return n.children[i], false
	}
	child = newNode(c)
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child, true
}

func (n *Node) accumulate(delta int) {
	if delta < 0 {
		panic("substrings: negative count delta")
	}
	n.count += delta
}
