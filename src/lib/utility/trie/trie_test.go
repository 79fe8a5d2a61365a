package trie

import (
	"testing"
)

func TestPut(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{name: "one", s: "x"},
		{name: "two", s: "xo"},
		{name: "three", s: "xox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(nil)
			if tr.Exist([]byte(tt.s)) {
				t.Fatal("found inappropriately")
			}
			if !tr.Put([]byte(tt.s)) {
				t.Fatal("first put not reported as new")
			}
			if !tr.Exist([]byte(tt.s)) {
				t.Fatal("could not find")
			}
			if tr.Put([]byte(tt.s)) {
				t.Fatal("second put reported as new")
			}
			if tr.Len() != 1 {
				t.Fatalf("Len() = %d", tr.Len())
			}
		})
	}
}

func TestExactCases(t *testing.T) {
	tr := New([][]byte{
		[]byte("XoXoX"),
		[]byte("XoXoX1"),
		[]byte("XoXoX2"),
		[]byte("YoXoX"),
	})
	if tr.Len() != 4 {
		t.Errorf("Len() = %d", tr.Len())
	}
	if tr.Exist(nil) || tr.Put(nil) {
		t.Errorf("empty key handled as a member")
	}
	if tr.Exist([]byte("o")) {
		t.Error("character wrongly installed")
	}
	if tr.Exist([]byte("XoXoX2-AND")) {
		t.Error("too long string detected")
	}

	for _, s := range []string{"X", "Xo", "XoXo"} {
		if tr.Exist([]byte(s)) {
			t.Errorf("prefix %q treated as a member", s)
		}
	}
	for _, s := range []string{"XoXoX", "XoXoX1", "XoXoX2", "YoXoX"} {
		if !tr.Exist([]byte(s)) {
			t.Errorf("%q not installed", s)
		}
	}
}
