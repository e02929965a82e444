// prefilter.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the cheap statistical prefilter applied to a freshly
// rolled board before running the full search.

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

// strictRequiredLetters are the letters checked for presence under very
// strict constraints: at least one of these must appear on the board.
var strictRequiredLetters = []byte{'S', 'D', 'G'}

func vowelBearing(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U', '2', '5':
		return true
	}
	return false
}

func isCommonConsonant(c byte) bool {
	switch c {
	case 'S', 'R', 'T', 'N', 'L':
		return true
	}
	return false
}

func isMultiTile(c byte) bool {
	return c >= '0' && c <= '5'
}

// LooksPromising is a cheap, side-effect-free check on a freshly rolled
// board: false positives merely waste a search, and a false negative
// (rejecting a board that would in fact have passed) merely wastes a roll.
// Tighter constraints only add checks, so a board rejected under looser
// constraints is also rejected under tighter ones.
func LooksPromising(board *Board, c Constraints) bool {
	n := len(board.Dice)
	if n == 0 {
		return true
	}

	var vowels, consonants, multi int
	var hasRequiredLetter bool
	for _, tile := range board.Dice {
		if vowelBearing(tile) {
			vowels++
		}
		if isCommonConsonant(tile) {
			consonants++
		}
		if isMultiTile(tile) {
			multi++
		}
		if containsByte(strictRequiredLetters, tile) {
			hasRequiredLetter = true
		}
	}

	strict := c.MinWords > 100
	veryStrict := c.MinWords > 200 || c.MinLongest > 10

	minVowelFrac, maxVowelFrac := 0.15, 0.65
	if strict {
		minVowelFrac, maxVowelFrac = 0.20, 0.55
	}
	vowelFrac := float64(vowels) / float64(n)
	if vowelFrac < minVowelFrac || vowelFrac > maxVowelFrac {
		return false
	}

	minConsonants := 1
	switch {
	case veryStrict:
		minConsonants = 3
	case strict:
		minConsonants = 2
	}
	if consonants < minConsonants {
		return false
	}

	if multi > n/2 {
		return false
	}

	if veryStrict && (vowels < 3 || !hasRequiredLetter) {
		return false
	}

	return true
}
