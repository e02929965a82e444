// tile.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements tile code decoding: a single byte either spells one
// ordinary letter or a predefined two-letter expansion.

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

// tileKind distinguishes an ordinary single-letter tile from a multi-letter
// tile, following the tagged-variant shape favoured over branching on byte
// ranges at every call site.
type tileKind int

const (
	tileLetter tileKind = iota
	tileMulti
)

// decodedTile is the result of decoding a tile code: a single letter, or a
// pair of letters for a multi-letter tile. a is always the first letter to
// match against the DAWG; b is only meaningful when kind is tileMulti.
type decodedTile struct {
	kind tileKind
	a, b byte
}

// multiExpansions maps a digit tile code to its fixed two-letter expansion.
// '0' expands to "__", which never matches a real DAWG letter and therefore
// always short-circuits the traversal in step.
var multiExpansions = map[byte][2]byte{
	'0': {'_', '_'},
	'1': {'Q', 'U'},
	'2': {'I', 'N'},
	'3': {'T', 'H'},
	'4': {'E', 'R'},
	'5': {'H', 'E'},
}

// decodeTile classifies a tile code into its decoded form. Each digit maps
// to exactly one expansion; there is no fallthrough between cases.
func decodeTile(c byte) decodedTile {
	if exp, ok := multiExpansions[c]; ok {
		return decodedTile{kind: tileMulti, a: exp[0], b: exp[1]}
	}
	return decodedTile{kind: tileLetter, a: c}
}

// isValidDieFace reports whether c is a legal tile code: an uppercase
// letter, or a digit '0'..'5' denoting a multi-letter tile.
func isValidDieFace(c byte) bool {
	if c >= 'A' && c <= 'Z' {
		return true
	}
	return c >= '0' && c <= '5'
}
