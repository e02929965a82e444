// board_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Tests for the packed Boggle board representation.

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
	"testing"
)

func TestNewBoardTooLarge(t *testing.T) {
	_, err := NewBoard(7, 6) // 42 cells > MaxBoardSize
	if err == nil {
		t.Fatal("expected an error for a 7x6 board")
	}
	var boardErr *Error
	if !errors.As(err, &boardErr) || boardErr.Kind != BoardTooLarge {
		t.Errorf("expected BoardTooLarge, got %v", err)
	}
}

func TestBoardSetLayout(t *testing.T) {
	b, err := NewBoard(2, 2)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if err := b.SetLayout("AB1D"); err != nil {
		t.Fatalf("SetLayout: %v", err)
	}
	if b.Layout() != "AB1D" {
		t.Errorf("expected layout AB1D, got %s", b.Layout())
	}

	if err := b.SetLayout("ABC"); err == nil {
		t.Error("expected an error for a layout of the wrong length")
	}
	if err := b.SetLayout("AB!D"); err == nil {
		t.Error("expected an error for an invalid tile code")
	}
}

func TestScoreTableScore(t *testing.T) {
	table := DefaultScoreTable
	cases := []struct {
		length int
		want   int
	}{
		{0, 0}, {2, 0}, {3, 1}, {5, 2}, {8, 11}, {20, 11},
	}
	for _, c := range cases {
		if got := table.Score(c.length); got != c.want {
			t.Errorf("Score(%d) = %d, want %d", c.length, got, c.want)
		}
	}
}
