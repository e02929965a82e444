// dawg_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Tests for the packed DAWG dictionary.

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

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sort"
	"testing"
)

// trieNode and the functions below build a small in-memory DAWG for tests.
// There is no real compiled dictionary artefact available in this
// workspace, so tests build their own, the way a from-scratch DAWG builder
// flattens a trie into the packed node format.
type trieNode struct {
	children map[byte]*trieNode
	letter   byte
	eow      bool
}

func insertWord(root *trieNode, word string) {
	cur := root
	for i := 0; i < len(word); i++ {
		c := word[i]
		if cur.children == nil {
			cur.children = make(map[byte]*trieNode)
		}
		child, ok := cur.children[c]
		if !ok {
			child = &trieNode{letter: c}
			cur.children[c] = child
		}
		cur = child
	}
	cur.eow = true
}

func sortedChildren(m map[byte]*trieNode) []*trieNode {
	out := make([]*trieNode, 0, len(m))
	for _, n := range m {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].letter < out[j].letter })
	return out
}

// buildTestDictionary flattens a word list into a packed Dictionary,
// mirroring the node layout a real compiled DAWG file would have.
func buildTestDictionary(words []string) *Dictionary {
	root := &trieNode{}
	for _, w := range words {
		insertWord(root, w)
	}

	nodes := []dawgNode{0}
	var flatten func(children []*trieNode) uint32
	flatten = func(children []*trieNode) uint32 {
		if len(children) == 0 {
			return 0
		}
		start := uint32(len(nodes))
		for range children {
			nodes = append(nodes, 0)
		}
		for idx, child := range children {
			childIndex := flatten(sortedChildren(child.children))
			word := uint32(child.letter)
			if child.eow {
				word |= nodeEOWBit
			}
			if idx == len(children)-1 {
				word |= nodeEOLBit
			}
			word |= childIndex << nodeChildShift
			nodes[start+uint32(idx)] = dawgNode(word)
		}
		return start
	}
	flatten(sortedChildren(root.children))
	return &Dictionary{nodes: nodes}
}

func TestDictionaryContains(t *testing.T) {
	dict := buildTestDictionary([]string{"CAT", "CATS", "CAR", "CARS", "DOG"})

	positive := []string{"CAT", "CATS", "CAR", "CARS", "DOG"}
	for _, w := range positive {
		if !dict.Contains(w) {
			t.Errorf("expected dictionary to contain %q", w)
		}
	}

	negative := []string{"CA", "CATSS", "DO", "DOGS", "XYZ", ""}
	for _, w := range negative {
		if dict.Contains(w) {
			t.Errorf("expected dictionary not to contain %q", w)
		}
	}
}

func TestReadDictionaryRoundTrip(t *testing.T) {
	dict := buildTestDictionary([]string{"TERN", "TEN", "RATES", "EATS"})

	var buf bytes.Buffer
	raw := make([]uint32, len(dict.nodes))
	for i, n := range dict.nodes {
		raw[i] = uint32(n)
	}
	binary.Write(&buf, binary.LittleEndian, uint32(len(raw)))
	binary.Write(&buf, binary.LittleEndian, raw)

	loaded, err := readDictionary(&buf)
	if err != nil {
		t.Fatalf("readDictionary: %v", err)
	}
	for _, w := range []string{"TERN", "TEN", "RATES", "EATS"} {
		if !loaded.Contains(w) {
			t.Errorf("round-tripped dictionary missing %q", w)
		}
	}
	if loaded.Contains("MISSING") {
		t.Errorf("round-tripped dictionary should not contain MISSING")
	}
}

func TestReadDictionaryShortFile(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(10))
	binary.Write(&buf, binary.LittleEndian, []uint32{1, 2, 3})

	_, err := readDictionary(&buf)
	if err == nil {
		t.Fatal("expected an error for a truncated file")
	}
	var dictErr *Error
	if !errors.As(err, &dictErr) || dictErr.Kind != FormatError {
		t.Errorf("expected a FormatError, got %v", err)
	}
}
