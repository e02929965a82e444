// dice.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Die and DiceSet types and the Fisher-Yates
// rolling operation, adapted from the original tile-bag mechanics.

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

import "fmt"

// dieFaces is the number of faces on every die.
const dieFaces = 6

// Die is a single die: exactly six tile-code faces.
type Die string

// DiceSet is an ordered collection of dice. Rolling shuffles it in place;
// the dice themselves (the six-face strings) are immutable and shared, only
// their order changes.
type DiceSet []Die

// NewDiceSet validates a list of face strings and wraps them as a DiceSet.
func NewDiceSet(faces []string) (DiceSet, error) {
	set := make(DiceSet, len(faces))
	for i, f := range faces {
		if len(f) != dieFaces {
			return nil, newError(BadDie, "NewDiceSet", fmt.Errorf("die %d has %d faces, want %d", i, len(f), dieFaces))
		}
		for j := 0; j < dieFaces; j++ {
			if !isValidDieFace(f[j]) {
				return nil, newError(BadDie, "NewDiceSet", fmt.Errorf("die %d face %d: invalid tile code %q", i, j, f[j]))
			}
		}
		set[i] = Die(f)
	}
	return set, nil
}

// StandardEnglishDice is the classic 4x4 English Boggle dice set. The
// fifteenth die's "Qu" face is encoded as tile code '1', which expands to
// "QU" per the multi-letter tile table.
var StandardEnglishDice = []string{
	"AAEEGN",
	"ABBJOO",
	"ACHOPS",
	"AFFKPS",
	"AOOTTW",
	"CIMOTU",
	"DEILRX",
	"DELRVY",
	"DISTTY",
	"EEGHNW",
	"EEINSU",
	"EHRTVW",
	"EIOSST",
	"ELRTTY",
	"HIMNU1",
	"HLNNRZ",
}

// RNG abstracts a source of uniform integers so rolling can be driven by an
// injected, seedable stream rather than global mutable state. *rand.Rand
// satisfies this interface.
type RNG interface {
	Intn(n int) int
}

// Roll shuffles dice in place with an unbiased Fisher-Yates permutation
// drawn from rng, then picks one face per die and writes the result into
// board. len(dice) must equal len(board.Dice).
func Roll(dice DiceSet, rng RNG, board *Board) error {
	if len(dice) != len(board.Dice) {
		return fmt.Errorf("boggle: dice set has %d dice, board has %d positions", len(dice), len(board.Dice))
	}
	for i := len(dice) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dice[i], dice[j] = dice[j], dice[i]
	}
	for i, d := range dice {
		face := rng.Intn(dieFaces)
		board.Dice[i] = d[face]
	}
	return nil
}
