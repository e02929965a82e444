// dawg.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the packed Directed Acyclic Word Graph (DAWG):
// loading the binary node array and the four accessors traversal needs.

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
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	nodeLetterMask = 0xFF
	nodeEOLBit     = 1 << 8
	nodeEOWBit     = 1 << 9
	nodeChildShift = 10
)

// dawgNode is a single packed 32-bit DAWG node: bits 0-7 the letter, bit 8
// end-of-sibling-list, bit 9 end-of-word, bits 10-31 the first-child index.
// Wrapping the raw integer in a newtype with inline accessor methods keeps
// access zero-cost; nothing here checks for the sentinel, so callers must
// not traverse from index 0.
type dawgNode uint32

func (n dawgNode) letter() byte  { return byte(n & nodeLetterMask) }
func (n dawgNode) eol() bool     { return n&nodeEOLBit != 0 }
func (n dawgNode) eow() bool     { return n&nodeEOWBit != 0 }
func (n dawgNode) child() uint32 { return uint32(n) >> nodeChildShift }

// Dictionary is a compiled, read-only DAWG. It is safe to share by reference
// across any number of evaluators or goroutines once loaded: the backing
// array is append-only and never mutated after LoadDictionary returns.
type Dictionary struct {
	nodes []dawgNode
}

// LoadDictionary reads a packed DAWG from the binary file at path. The first
// four bytes are a little-endian uint32 element count N, followed by N
// packed 32-bit node words; node 0 is the sentinel "no node" and real nodes
// start at index 1.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(IoError, "LoadDictionary", err)
	}
	defer f.Close()
	return readDictionary(f)
}

func readDictionary(r io.Reader) (*Dictionary, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, newError(IoError, "LoadDictionary", fmt.Errorf("reading node count: %w", err))
	}
	raw := make([]uint32, count)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, newError(FormatError, "LoadDictionary",
				fmt.Errorf("header declares %d nodes but the file is shorter", count))
		}
		return nil, newError(IoError, "LoadDictionary", err)
	}
	nodes := make([]dawgNode, count)
	for i, w := range raw {
		nodes[i] = dawgNode(w)
	}
	if len(nodes) == 0 {
		nodes = []dawgNode{0}
	}
	return &Dictionary{nodes: nodes}, nil
}

// letter, eow, sibling and child are total functions on any non-zero index
// i that the caller has reached via a valid traversal step; behaviour at
// index 0 is undefined by contract, matching the "no node" sentinel.
func (d *Dictionary) letter(i uint32) byte { return d.nodes[i].letter() }
func (d *Dictionary) eow(i uint32) bool    { return d.nodes[i].eow() }

func (d *Dictionary) sibling(i uint32) uint32 {
	if d.nodes[i].eol() {
		return 0
	}
	return i + 1
}

func (d *Dictionary) child(i uint32) uint32 { return d.nodes[i].child() }

// NumNodes returns the size of the backing node array, including the
// sentinel at index 0.
func (d *Dictionary) NumNodes() int { return len(d.nodes) }

// Contains reports whether word is spelled out, letter by letter, by some
// path from the root. It ignores multi-letter tile expansion entirely and
// exists for debugging and tests, not for board search; it is the simple
// word-lookup analogue of a single-purpose sibling/child walk.
func (d *Dictionary) Contains(word string) bool {
	if len(word) == 0 || len(d.nodes) <= 1 {
		return false
	}
	i := uint32(1)
	for pos := 0; pos < len(word); pos++ {
		c := word[pos]
		for {
			if i == 0 {
				return false
			}
			if d.letter(i) == c {
				break
			}
			i = d.sibling(i)
		}
		if pos == len(word)-1 {
			return d.eow(i)
		}
		i = d.child(i)
	}
	return false
}
