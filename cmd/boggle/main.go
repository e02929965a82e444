// main.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements a CLI that generates dice boards under
// flag-configured constraints, adapted from the original game-simulation
// command-line tool.

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

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vthorsteinsson/goboggle"
)

func main() {
	dictPath := flag.String("dict", "", "path to a compiled DAWG dictionary file")
	width := flag.Int("width", 4, "board width")
	height := flag.Int("height", 4, "board height")
	count := flag.Int("n", 1, "number of boards to generate")
	minWords := flag.Int("min-words", 1, "minimum number of words")
	maxWords := flag.Int("max-words", -1, "maximum number of words (-1 = unbounded)")
	minScore := flag.Int("min-score", 0, "minimum score")
	maxScore := flag.Int("max-score", -1, "maximum score (-1 = unbounded)")
	minLongest := flag.Int("min-longest", 3, "minimum longest word length")
	maxLongest := flag.Int("max-longest", -1, "maximum longest word length (-1 = unbounded)")
	minLegalLen := flag.Int("min-legal-len", 3, "shortest word length that counts as found")
	maxTries := flag.Int("max-tries", 1000, "maximum rolls before giving up")
	seed := flag.Int64("seed", 1, "RNG seed for the first board")
	flag.Parse()

	boggle.LoadEnv(".env")

	if *dictPath == "" {
		log.Fatal("missing -dict")
	}
	dict, err := boggle.LoadDictionary(*dictPath)
	if err != nil {
		log.Fatalf("loading dictionary: %v", err)
	}

	dice, err := boggle.NewDiceSet(boggle.StandardEnglishDice)
	if err != nil {
		log.Fatalf("building dice set: %v", err)
	}

	constraints := boggle.Constraints{
		MinWords: *minWords, MaxWords: *maxWords,
		MinScore: *minScore, MaxScore: *maxScore,
		MinLongest: *minLongest, MaxLongest: *maxLongest,
		MinLegalLen: *minLegalLen,
	}

	for i := 0; i < *count; i++ {
		result, err := boggle.Generate(
			dict, boggle.DefaultScoreTable, dice,
			*width, *height, constraints, *maxTries, *seed+int64(i),
		)
		if err != nil {
			log.Fatalf("generate: %v", err)
		}
		if result == nil {
			fmt.Fprintln(os.Stderr, "no board found within budget")
			continue
		}
		fmt.Printf("%s  words=%d score=%d longest=%d tries=%d\n",
			result.DiceLayout, result.NumWords, result.Score, result.Longest, result.Tries)
		for _, word := range result.Words {
			fmt.Println(" ", word)
		}
	}
}
