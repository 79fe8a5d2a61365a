// Package findstrings guards a substrings.Set for use from concurrent
// request handlers, and short-circuits strings that were already inserted.
package findstrings

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"

	"gitlab.com/pnathan/kthsub/src/lib/findapi"
	"gitlab.com/pnathan/kthsub/src/lib/log"
	"gitlab.com/pnathan/kthsub/src/lib/substrings"
	"gitlab.com/pnathan/kthsub/src/lib/utility"
	"gitlab.com/pnathan/kthsub/src/lib/utility/trie"
)

const digestSize = 32

type InternalSet struct {
	set  *substrings.Set
	seen *trie.Trie

	strings     int
	duplicates  int
	totalLength int

	sync.RWMutex
}

func NewSet() *InternalSet {
	return &InternalSet{
		set:  substrings.New(),
		seen: trie.New(nil),
	}
}

// Digest is the SHAKE256 sum of s, framed by its length.
func Digest(s string) []byte {
	buf := utility.Concat(utility.UintToBytes(uint64(len(s))), []byte(s))
	h := make([]byte, digestSize)
	sha3.ShakeSum256(h, buf)
	return h
}

// Insert adds s and returns the number of new distinct substrings. A string
// inserted before contributes nothing, so it is not walked again.
func (s *InternalSet) Insert(str string) int {
	digest := Digest(str)

	s.Lock()
	defer s.Unlock()
	s.totalLength += len(str)
	if !s.seen.Put(digest) {
		s.duplicates++
		log.Debug("string already inserted", zap.Int("length", len(str)))
		return 0
	}
	s.strings++
	return s.set.Insert(str)
}

func (s *InternalSet) Find(order int) (string, bool) {
	s.RLock()
	defer s.RUnlock()
	return s.set.Find(order)
}

func (s *InternalSet) Size() int {
	s.RLock()
	defer s.RUnlock()
	return s.set.Size()
}

func (s *InternalSet) Statistics() findapi.Statistics {
	s.RLock()
	defer s.RUnlock()
	return findapi.Statistics{
		Strings:     s.strings,
		Duplicates:  s.duplicates,
		Substrings:  s.set.Size(),
		TotalLength: s.totalLength,
	}
}

// View runs fn with the read lock held, for dumps and other traversals.
func (s *InternalSet) View(fn func(set *substrings.Set) error) error {
	s.RLock()
	defer s.RUnlock()
	return fn(s.set)
}
