package main

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Signature is the canonical pattern of a sequence: position i holds the
// index at which the unit at i was first seen. "egg" and "add" both map to [0 1 1].
type Signature []int

// SignatureOf computes the pattern signature of units in a single pass
func SignatureOf[T comparable](units []T) Signature {
	sig := make(Signature, len(units))
	seen := make(map[T]int)
	for i, u := range units {
		idx, ok := seen[u]
		if !ok {
			idx = len(seen)
			seen[u] = idx
		}
		sig[i] = idx
	}
	return sig
}

// SignatureOfWord computes the signature of a word, rune by rune
func SignatureOfWord(word string) Signature {
	return SignatureOf([]rune(word))
}

// Isomorphic reports whether a consistent one-to-one rune substitution maps a onto b
func Isomorphic(a, b string) bool {
	return SignatureOfWord(a).Equal(SignatureOfWord(b))
}

// Good reports whether at least one value repeats, i.e. the source had a
// repeated unit. The empty signature is not good.
func (s Signature) Good() bool {
	// Values are allocated densely from 0, so the distinct count is max+1.
	distinct := 0
	for _, v := range s {
		if v+1 > distinct {
			distinct = v + 1
		}
	}
	return distinct != len(s)
}

func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Key returns an exact encoding of the signature usable as a map key
func (s Signature) Key() string {
	return string(s.bytes())
}

// Hash returns the FNV-64a digest of the signature
func (s Signature) Hash() uint64 {
	h := fnv.New64a()
	h.Write(s.bytes())
	return h.Sum64()
}

func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (s Signature) bytes() []byte {
	buf := make([]byte, 0, len(s))
	for _, v := range s {
		buf = binary.AppendUvarint(buf, uint64(v))
	}
	return buf
}
