package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/pnathan/kthsub/src/lib/findstrings"
)

func TestWriteSubstrings(t *testing.T) {
	set := findstrings.NewSet()
	set.Insert("aac")
	set.Insert("aab")

	var out bytes.Buffer
	require.NoError(t, writeSubstrings(&out, set))
	require.Equal(t, "a\naa\naab\naac\nab\nac\nb\nc\n", out.String())

	out.Reset()
	require.NoError(t, writeSubstrings(&out, findstrings.NewSet()))
	require.Empty(t, out.String())
}
