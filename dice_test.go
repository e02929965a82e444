// dice_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Tests for dice sets and board rolling.

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
	"errors"
	"math/rand"
	"testing"
)

func TestNewDiceSetValidation(t *testing.T) {
	if _, err := NewDiceSet([]string{"AAEEGN", "AB"}); err == nil {
		t.Error("expected an error for a die with the wrong number of faces")
	}
	var dieErr *Error
	if _, err := NewDiceSet([]string{"AAEEG!"}); err == nil || !errors.As(err, &dieErr) || dieErr.Kind != BadDie {
		t.Error("expected a BadDie error for an invalid face character")
	}
	dice, err := NewDiceSet(StandardEnglishDice)
	if err != nil {
		t.Fatalf("StandardEnglishDice should validate cleanly: %v", err)
	}
	if len(dice) != 16 {
		t.Errorf("expected 16 dice, got %d", len(dice))
	}
}

func TestRollFillsBoardFromAlphabet(t *testing.T) {
	dice, err := NewDiceSet(StandardEnglishDice)
	if err != nil {
		t.Fatalf("NewDiceSet: %v", err)
	}
	board, err := NewBoard(4, 4)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	if err := Roll(dice, rng, board); err != nil {
		t.Fatalf("Roll: %v", err)
	}
	for i, c := range board.Dice {
		if !isValidDieFace(c) {
			t.Errorf("position %d has invalid tile code %q", i, c)
		}
	}
}

func TestRollSizeMismatch(t *testing.T) {
	dice, _ := NewDiceSet(StandardEnglishDice)
	board, _ := NewBoard(3, 3)
	rng := rand.New(rand.NewSource(1))
	if err := Roll(dice, rng, board); err == nil {
		t.Error("expected an error when dice count does not match board size")
	}
}
