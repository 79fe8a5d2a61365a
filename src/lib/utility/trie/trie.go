// Package trie is a byte trie used as a membership set for fixed-size keys
// such as digests.
package trie

type node struct {
	children map[byte]*node
	terminal bool
}

type Trie struct {
	root *node
	size int
}

func New(ss [][]byte) *Trie {
	result := &Trie{root: &node{children: map[byte]*node{}}}
	for _, s := range ss {
		result.Put(s)
	}
	return result
}

// Len is the number of distinct keys put.
func (t *Trie) Len() int {
	return t.size
}

// Exist reports whether s was put. Proper prefixes of a key are not members,
// and the empty key never is.
func (t *Trie) Exist(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	n := t.root
	for _, c := range s {
		next, ok := n.children[c]
		if !ok {
			return false
		}
		n = next
	}
	return n.terminal
}

// Put adds s and reports whether it was new. Putting an empty key is a no-op.
func (t *Trie) Put(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	n := t.root
	for _, c := range s {
		next, ok := n.children[c]
		if !ok {
			next = &node{children: map[byte]*node{}}
			n.children[c] = next
		}
		n = next
	}
	if n.terminal {
		return false
	}
	n.terminal = true
	t.size++
	return true
}
