// cache_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Tests for the result cache.

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

func TestResultCacheFetchesOnceThenHitsCache(t *testing.T) {
	cache, err := NewResultCache(8)
	if err != nil {
		t.Fatalf("NewResultCache: %v", err)
	}

	calls := 0
	fetch := func() (*GenerateResult, error) {
		calls++
		return &GenerateResult{DiceLayout: "AAAA", NumWords: 1}, nil
	}

	first, err := cache.Lookup("k", fetch)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	second, err := cache.Lookup("k", fetch)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected fetch to run exactly once, ran %d times", calls)
	}
	if first != second {
		t.Errorf("expected the cached call to return the same pointer")
	}
}

func TestResultCacheDoesNotCacheErrors(t *testing.T) {
	cache, err := NewResultCache(8)
	if err != nil {
		t.Fatalf("NewResultCache: %v", err)
	}

	wantErr := errors.New("boom")
	calls := 0
	fetch := func() (*GenerateResult, error) {
		calls++
		return nil, wantErr
	}

	if _, err := cache.Lookup("k", fetch); !errors.Is(err, wantErr) {
		t.Fatalf("expected the fetch error to propagate, got %v", err)
	}
	if _, err := cache.Lookup("k", fetch); !errors.Is(err, wantErr) {
		t.Fatalf("expected the fetch error to propagate again, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected a failed fetch to be retried rather than cached, ran %d times", calls)
	}
}

func TestResultCacheDistinctKeys(t *testing.T) {
	cache, err := NewResultCache(8)
	if err != nil {
		t.Fatalf("NewResultCache: %v", err)
	}

	a, err := cache.Lookup("a", func() (*GenerateResult, error) {
		return &GenerateResult{DiceLayout: "a"}, nil
	})
	if err != nil {
		t.Fatalf("Lookup a: %v", err)
	}
	b, err := cache.Lookup("b", func() (*GenerateResult, error) {
		return &GenerateResult{DiceLayout: "b"}, nil
	})
	if err != nil {
		t.Fatalf("Lookup b: %v", err)
	}
	if a.DiceLayout != "a" || b.DiceLayout != "b" {
		t.Errorf("expected distinct keys to resolve independently, got %q and %q", a.DiceLayout, b.DiceLayout)
	}
}
