package substrings

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func labels(nodes []*Node) string {
	b := []rune{}
	for _, n := range nodes {
		b = append(b, n.Label())
	}
	return string(b)
}

func TestWalkOrders(t *testing.T) {
	s := build(t, pairSet, 8)

	var dfs, bfs []*Node
	var depths []int
	WalkDepthFirst(s.Root(), func(n *Node, depth int) bool {
		if depth > 0 {
			dfs = append(dfs, n)
		}
		return true
	})
	WalkBreadthFirst(s.Root(), func(n *Node, depth int) bool {
		if depth > 0 {
			bfs = append(bfs, n)
			depths = append(depths, depth)
		}
		return true
	})

	// root(8): a(6) [a(3) [b c] b c] b c
	require.Equal(t, "aabcbcbc", labels(dfs))
	require.Equal(t, "abcabcbc", labels(bfs))
	require.Equal(t, []int{1, 1, 1, 2, 2, 2, 3, 3}, depths)
}

func TestWalkPrunes(t *testing.T) {
	s := build(t, pairSet, 8)

	visited := 0
	WalkDepthFirst(s.Root(), func(n *Node, depth int) bool {
		visited++
		return depth < 1
	})
	require.Equal(t, 4, visited)

	visited = 0
	WalkBreadthFirst(s.Root(), func(n *Node, depth int) bool {
		visited++
		return n.Label() != 'a'
	})
	// root, a (pruned), b, c
	require.Equal(t, 4, visited)
}

func TestDump(t *testing.T) {
	s := build(t, pairSet, 8)

	var out bytes.Buffer
	require.NoError(t, s.Dump(&out))
	require.Equal(t, `.|8
  a|6
    a|3
      b|1
      c|1
    b|1
    c|1
  b|1
  c|1
`, out.String())
}

func TestAll(t *testing.T) {
	s := build(t, pairSet, 8)
	require.Equal(t, []string{"a", "aa", "aab", "aac", "ab", "ac", "b", "c"}, s.All())
	require.Empty(t, New().All())
}
