// generator.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the rejection-sampling outer loop: Generate and
// Analyse, the two public entry points over the search core.

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
	"math/rand"
	"sort"
)

// GenerateResult is the outcome of a successful Generate or Analyse call.
type GenerateResult struct {
	Words      []string
	DiceLayout string
	Tries      int
	NumWords   int
	Score      int
	Longest    int
}

// unconstrained is the constraint set Analyse evaluates under: every
// minimum at 0, every maximum unbounded.
var unconstrained = Constraints{MaxWords: -1, MaxScore: -1, MaxLongest: -1}

// Generate seeds an RNG and repeatedly rolls, prefilters and evaluates
// boards until one satisfies constraints or maxTries rolls are exhausted.
// A nil result (with a nil error) means the budget was exhausted; this is
// not an error. Structural errors (bad dice, an oversized board) are
// returned immediately and are not retried.
func Generate(
	dict *Dictionary,
	scoreTable ScoreTable,
	dice DiceSet,
	width, height int,
	constraints Constraints,
	maxTries int,
	seed int64,
) (*GenerateResult, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}

	rolling := make(DiceSet, len(dice))
	copy(rolling, dice)

	rng := rand.New(rand.NewSource(seed))
	evaluator := NewEvaluator(dict, scoreTable)

	for t := 1; t <= maxTries; t++ {
		if err := Roll(rolling, rng, board); err != nil {
			return nil, err
		}
		if !LooksPromising(board, constraints) {
			continue
		}
		if !evaluator.Evaluate(board, constraints) {
			continue
		}
		words := evaluator.FoundWords()
		sort.Strings(words)
		numWords, score, longest := evaluator.Stats()
		return &GenerateResult{
			Words:      words,
			DiceLayout: board.Layout(),
			Tries:      t,
			NumWords:   numWords,
			Score:      score,
			Longest:    longest,
		}, nil
	}
	return nil, nil
}

// Analyse bypasses rolling and constraints entirely, running the search
// under unconstrained bounds against an exact, caller-supplied layout, and
// returning every word found.
func Analyse(dict *Dictionary, scoreTable ScoreTable, width, height int, layout string) (*GenerateResult, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	if err := board.SetLayout(layout); err != nil {
		return nil, err
	}

	evaluator := NewEvaluator(dict, scoreTable)
	evaluator.Evaluate(board, unconstrained)

	words := evaluator.FoundWords()
	sort.Strings(words)
	numWords, score, longest := evaluator.Stats()
	return &GenerateResult{
		Words:      words,
		DiceLayout: board.Layout(),
		NumWords:   numWords,
		Score:      score,
		Longest:    longest,
	}, nil
}
