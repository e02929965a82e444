// foundwords.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the bounded deduplicating set of found words used
// once per board evaluation.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package boggle

import "bytes"

const (
	// foundWordsCapacity is a prime comfortably above the few thousand
	// words a single board can plausibly yield, keeping the load factor
	// at peak occupancy well below 0.5.
	foundWordsCapacity = 16411
	maxWordLength       = 16
)

// foundWordSet is an open-addressed hash table with linear probing. Keys are
// word byte-strings stored inline; a parallel slice of used slot indices
// enables an O(n) reset without scanning the whole table.
type foundWordSet struct {
	slots [foundWordsCapacity][maxWordLength]byte
	lens  [foundWordsCapacity]uint8
	used  []int32
}

func newFoundWordSet() *foundWordSet {
	return &foundWordSet{used: make([]int32, 0, 1024)}
}

// fnv1a hashes a word the way nothing in this codebase's dependency
// lineage does already; no third-party hashing library appears anywhere in
// the example corpus for this narrow concern, so this stays on the
// standard-library algorithm (see DESIGN.md).
func fnv1a(word []byte) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, b := range word {
		h ^= uint64(b)
		h *= prime
	}
	return h
}

// insert returns true if word was not already present. Duplicate detection
// tolerates arbitrary hash collisions via linear probing.
func (s *foundWordSet) insert(word []byte) bool {
	h := fnv1a(word) % foundWordsCapacity
	for {
		if s.lens[h] == 0 {
			copy(s.slots[h][:], word)
			s.lens[h] = uint8(len(word))
			s.used = append(s.used, int32(h))
			return true
		}
		if int(s.lens[h]) == len(word) && bytes.Equal(s.slots[h][:len(word)], word) {
			return false
		}
		h = (h + 1) % foundWordsCapacity
	}
}

// reset empties the set in O(distinct previously inserted words).
func (s *foundWordSet) reset() {
	for _, idx := range s.used {
		s.lens[idx] = 0
	}
	s.used = s.used[:0]
}

// snapshot returns the set's contents in a deterministic order given the
// sequence of insertions (the order slots were first occupied).
func (s *foundWordSet) snapshot() []string {
	out := make([]string, 0, len(s.used))
	for _, idx := range s.used {
		out = append(out, string(s.slots[idx][:s.lens[idx]]))
	}
	return out
}

func (s *foundWordSet) count() int { return len(s.used) }
