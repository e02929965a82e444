// strategy.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements BoardPicker, a strategy for choosing the best board
// among several accepted candidates, adapted from the original
// highest-scoring-move robot strategy.

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

import "sort"

// BoardPicker selects the best board from a batch of accepted candidates.
type BoardPicker interface {
	Pick(results []*GenerateResult) *GenerateResult
}

// byScore sorts a slice of results in descending rank order.
type byScore struct {
	results []*GenerateResult
	rankOf  func(*GenerateResult) int
}

func (b byScore) Len() int      { return len(b.results) }
func (b byScore) Swap(i, j int) { b.results[i], b.results[j] = b.results[j], b.results[i] }
func (b byScore) Less(i, j int) bool {
	return b.rankOf(b.results[i]) > b.rankOf(b.results[j])
}

// HighScorePicker always returns the highest-ranked board: total score
// first, longest word as a tiebreaker.
type HighScorePicker struct{}

func highScoreRank(r *GenerateResult) int {
	return r.Score*1000 + r.Longest
}

// Pick implements BoardPicker.
func (HighScorePicker) Pick(results []*GenerateResult) *GenerateResult {
	if len(results) == 0 {
		return nil
	}
	sort.Sort(byScore{results: results, rankOf: highScoreRank})
	return results[0]
}
