// board.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Board struct and its operations

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
	"fmt"
	"strings"
)

// MaxBoardSize is the largest width*height this package supports: the used
// mask needs one bit per position and must fit in a uint64.
const MaxBoardSize = 36

// unboundedSentinel stands in for a "-1 means unbounded" constraint field
// once normalised for internal comparisons.
const unboundedSentinel = 1 << 30

// Constraints bounds the lexical quality of an acceptable board. Any "max"
// field set to -1 denotes "unbounded".
type Constraints struct {
	MinWords    int
	MaxWords    int
	MinScore    int
	MaxScore    int
	MinLongest  int
	MaxLongest  int
	MinLegalLen int
}

func (c Constraints) normalizedMaxWords() int {
	if c.MaxWords < 0 {
		return unboundedSentinel
	}
	return c.MaxWords
}

func (c Constraints) normalizedMaxScore() int {
	if c.MaxScore < 0 {
		return unboundedSentinel
	}
	return c.MaxScore
}

func (c Constraints) normalizedMaxLongest() int {
	if c.MaxLongest < 0 {
		return unboundedSentinel
	}
	return c.MaxLongest
}

// ScoreTable maps word length to points. Lengths past the table's end use
// the last entry.
type ScoreTable []int

// Score returns the point value of a word of the given length.
func (t ScoreTable) Score(length int) int {
	if len(t) == 0 || length < 0 {
		return 0
	}
	if length >= len(t) {
		return t[len(t)-1]
	}
	return t[length]
}

// DefaultScoreTable is the classic Boggle scoring table: words shorter than
// 3 letters are worthless, and anything 8 letters or longer scores 11.
var DefaultScoreTable = ScoreTable{0, 0, 0, 1, 1, 2, 3, 5, 11, 11, 11, 11, 11, 11, 11, 11, 11}

// Board owns a flat, row-major dice layout. Position (y, x) maps to index
// y*Width + x, and to bit y*Width+x in an Evaluator's used mask.
type Board struct {
	Width, Height int
	Dice          []byte
}

// NewBoard allocates a Board of the given dimensions, failing with
// BoardTooLarge if width*height exceeds MaxBoardSize.
func NewBoard(width, height int) (*Board, error) {
	if width*height > MaxBoardSize {
		return nil, newError(BoardTooLarge, "NewBoard",
			fmt.Errorf("%dx%d board has %d cells, which exceeds %d", width, height, width*height, MaxBoardSize))
	}
	return &Board{Width: width, Height: height, Dice: make([]byte, width*height)}, nil
}

// SetLayout overwrites the board's dice with an explicit layout string,
// validating every tile code against the allowed alphabet.
func (b *Board) SetLayout(layout string) error {
	if len(layout) != len(b.Dice) {
		return fmt.Errorf("boggle: layout has %d tiles, board has %d", len(layout), len(b.Dice))
	}
	for i := 0; i < len(layout); i++ {
		if !isValidDieFace(layout[i]) {
			return newError(BadDie, "SetLayout", fmt.Errorf("invalid tile code %q at position %d", layout[i], i))
		}
	}
	copy(b.Dice, layout)
	return nil
}

// Layout returns the current dice layout as a flat string.
func (b *Board) Layout() string {
	return string(b.Dice)
}

// String renders the board as a grid, one row per line, for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sb.WriteByte(b.Dice[y*b.Width+x])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
