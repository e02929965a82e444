// batch.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements concurrent batch board generation: a worker pool in
// which every goroutine owns its own Evaluator, dice copy and RNG, adapted
// from the original riddle-generation worker pool.

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
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
)

// BatchParams configures a concurrent batch generation run.
type BatchParams struct {
	Dice          DiceSet
	ScoreTable    ScoreTable
	Width, Height int
	Constraints   Constraints
	NumWorkers    int
	NumCandidates int
	Picker        BoardPicker
}

// BatchStats aggregates attempt counters across every worker in a batch run.
type BatchStats struct {
	Attempts         int64
	Accepted         int64
	ContextCancelled int64
}

// GenerateBatch runs params.NumWorkers goroutines, each independently
// rolling and evaluating boards with its own Evaluator and *rand.Rand,
// until params.NumCandidates boards have been accepted in total or ctx is
// cancelled. The best candidate, per params.Picker, is returned; a nil
// result means no worker ever accepted a board before cancellation.
//
// This is additive to Generate: the search core itself remains
// single-threaded and synchronous (see the concurrency and resource model),
// concurrency only exists across independent Evaluator instances.
func GenerateBatch(ctx context.Context, dict *Dictionary, params BatchParams) (*GenerateResult, *BatchStats, error) {
	workers := params.NumWorkers
	if workers <= 0 {
		workers = 1
	}
	picker := params.Picker
	if picker == nil {
		picker = HighScorePicker{}
	}

	stats := &BatchStats{}
	candidateChan := make(chan *GenerateResult, params.NumCandidates)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			evaluator := NewEvaluator(dict, params.ScoreTable)
			dice := make(DiceSet, len(params.Dice))
			copy(dice, params.Dice)
			board, err := NewBoard(params.Width, params.Height)
			if err != nil {
				return
			}

			for atomic.LoadInt64(&stats.Accepted) < int64(params.NumCandidates) {
				select {
				case <-ctx.Done():
					atomic.AddInt64(&stats.ContextCancelled, 1)
					return
				default:
				}
				atomic.AddInt64(&stats.Attempts, 1)
				if err := Roll(dice, rng, board); err != nil {
					return
				}
				if !LooksPromising(board, params.Constraints) {
					continue
				}
				if !evaluator.Evaluate(board, params.Constraints) {
					continue
				}
				numWords, score, longest := evaluator.Stats()
				result := &GenerateResult{
					Words:      evaluator.FoundWords(),
					DiceLayout: board.Layout(),
					NumWords:   numWords,
					Score:      score,
					Longest:    longest,
				}
				if atomic.AddInt64(&stats.Accepted, 1) <= int64(params.NumCandidates) {
					candidateChan <- result
				}
			}
		}(int64(w) + 1)
	}

	go func() {
		wg.Wait()
		close(candidateChan)
	}()

	var candidates []*GenerateResult
	for result := range candidateChan {
		candidates = append(candidates, result)
	}

	if len(candidates) == 0 {
		return nil, stats, nil
	}
	return picker.Pick(candidates), stats, nil
}
