// Package substrings keeps the set of distinct substrings of every string
// inserted so far, and selects the k-th of them in lexicographic order.
//
// The set is a suffix trie whose nodes carry the size of their subtree.
// Inserting a string of length n costs O(n²) character steps; finding the k-th
// substring costs O(len(result) × alphabet) regardless of how many substrings
// are stored.
//
// A Set is not safe for concurrent use.
package substrings

import (
	"strings"

	"go.uber.org/zap"

	"gitlab.com/pnathan/kthsub/src/lib/log"
)

type Set struct {
	root *Node
}

func New() *Set {
	return &Set{root: &Node{label: rootLabel}}
}

// Root exposes the sentinel root for traversals. Its label is meaningless and
// its count is Size().
func (s *Set) Root() *Node {
	return s.root
}

// Size is the number of distinct substrings inserted so far.
func (s *Set) Size() int {
	return s.root.count
}

// Insert adds every substring of str and returns how many of them were not
// already present. Substrings are runs of characters, not bytes; invalid UTF-8
// is read as utf8.RuneError. The empty string adds nothing.
func (s *Set) Insert(str string) int {
	chars := []rune(str)
	added := 0
	for i := range chars {
		added += insertSuffix(s.root, chars[i:])
	}
	return added
}

// insertSuffix walks suffix down from n, creating missing nodes, and returns
// the number of nodes created below n. Counts are only touched on the path of
// nodes that actually gained descendants.
func insertSuffix(n *Node, suffix []rune) int {
	if len(suffix) == 0 {
		return 0
	}
	next, created := n.attach(suffix[0])
	added := insertSuffix(next, suffix[1:])
	if created {
		// next already counts itself; only the levels above need the extra one.
		added++
	}
	if added > 0 {
		n.accumulate(added)
	}
	return added
}

// Find returns the order-th (1-indexed) distinct substring in lexicographic
// order. Order is by character code point, which is also the byte order of
// the UTF-8 encoding. ok is false when order is outside [1, Size()].
func (s *Set) Find(order int) (string, bool) {
	if order < 1 || order > s.Size() {
		return "", false
	}

	var b strings.Builder
	p := partitionOf(s.root, order)
	n, k := p.node, order-p.before
	for {
		if n == nil {
			log.Error("substring trie counts are inconsistent",
				zap.Int("order", order), zap.String("prefix", b.String()), zap.Int("size", s.Size()))
			return "", false
		}
		b.WriteRune(n.label)
		if k == 1 {
			return b.String(), true
		}
		// rank 1 under n is n itself; the rest live in its children.
		p = partitionOf(n, k-1)
		n = p.node
		k -= p.before + 1
	}
}
