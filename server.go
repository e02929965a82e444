// server.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the HTTP JSON handlers for board generation and
// analysis, adapted from the original move-generation request handlers.

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
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
)

// GenerateRequest is the JSON body of a board generation request.
type GenerateRequest struct {
	Dictionary  string   `json:"dictionary"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Dice        []string `json:"dice"`
	MinWords    int      `json:"min_words"`
	MaxWords    int      `json:"max_words"`
	MinScore    int      `json:"min_score"`
	MaxScore    int      `json:"max_score"`
	MinLongest  int      `json:"min_longest"`
	MaxLongest  int      `json:"max_longest"`
	MinLegalLen int      `json:"min_legal_len"`
	MaxTries    int      `json:"max_tries"`
	Seed        int64    `json:"seed"`
}

// GenerateResponse mirrors GenerateResult, with an explicit Found flag so
// clients can tell budget exhaustion apart from a zero-value response.
type GenerateResponse struct {
	Found      bool     `json:"found"`
	Words      []string `json:"words,omitempty"`
	DiceLayout string   `json:"dice_layout,omitempty"`
	Tries      int      `json:"tries,omitempty"`
	Score      int      `json:"score,omitempty"`
	Longest    int      `json:"longest,omitempty"`
}

// AnalyseRequest is the JSON body of a fixed-board analysis request.
type AnalyseRequest struct {
	Dictionary string `json:"dictionary"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Layout     string `json:"layout"`
}

// AnalyseResponse carries every word found on a fixed board.
type AnalyseResponse struct {
	Words   []string `json:"words"`
	Score   int      `json:"score"`
	Longest int      `json:"longest"`
}

// Service wires a set of named dictionaries, a shared score table, an
// optional result cache and an optional archive into the HTTP handlers.
type Service struct {
	Dictionaries map[string]*Dictionary
	ScoreTable   ScoreTable
	Cache        *ResultCache
	Archive      *Archive
}

// decodeDictionary looks up a named dictionary, the way decodeLocale once
// picked a Dawg and TileSet by locale string.
func (s *Service) decodeDictionary(name string) (*Dictionary, error) {
	dict, ok := s.Dictionaries[name]
	if !ok {
		return nil, fmt.Errorf("unknown dictionary %q", name)
	}
	return dict, nil
}

// HandleGenerateRequest decodes a GenerateRequest, runs Generate, archives
// an acceptance if configured, and writes a GenerateResponse.
func (s *Service) HandleGenerateRequest(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	dict, err := s.decodeDictionary(req.Dictionary)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dice, err := NewDiceSet(req.Dice)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	constraints := Constraints{
		MinWords: req.MinWords, MaxWords: req.MaxWords,
		MinScore: req.MinScore, MaxScore: req.MaxScore,
		MinLongest: req.MinLongest, MaxLongest: req.MaxLongest,
		MinLegalLen: req.MinLegalLen,
	}

	result, err := Generate(dict, s.ScoreTable, dice, req.Width, req.Height, constraints, req.MaxTries, req.Seed)
	if err != nil {
		log.Printf("generate: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := GenerateResponse{}
	if result != nil {
		resp = GenerateResponse{
			Found: true, Words: result.Words, DiceLayout: result.DiceLayout,
			Tries: result.Tries, Score: result.Score, Longest: result.Longest,
		}
		if s.Archive != nil {
			if err := s.Archive.Save(r.Context(), &BoardRecord{
				DiceLayout: result.DiceLayout, NumWords: result.NumWords,
				Score: result.Score, Longest: result.Longest, Tries: result.Tries,
			}); err != nil {
				log.Printf("archive: %v", err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleAnalyseRequest decodes an AnalyseRequest, runs Analyse (through the
// result cache when configured), and writes an AnalyseResponse.
func (s *Service) HandleAnalyseRequest(w http.ResponseWriter, r *http.Request) {
	var req AnalyseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	dict, err := s.decodeDictionary(req.Dictionary)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fetch := func() (*GenerateResult, error) {
		return Analyse(dict, s.ScoreTable, req.Width, req.Height, req.Layout)
	}
	var result *GenerateResult
	if s.Cache != nil {
		result, err = s.Cache.Lookup(req.Dictionary+"|"+req.Layout, fetch)
	} else {
		result, err = fetch()
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	words := append([]string(nil), result.Words...)
	sort.Strings(words)
	resp := AnalyseResponse{Words: words, Score: result.Score, Longest: result.Longest}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
