// cache.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements ResultCache, an LRU memoising Analyse results,
// adapted from the original DAWG cross-check cache.

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
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// ResultCache memoises Analyse results by an opaque caller-chosen key
// (typically dictionary name + dice layout), so a service that sees the
// same layout more than once need not re-run the search.
type ResultCache struct {
	mu    sync.Mutex
	cache *simplelru.LRU
}

// NewResultCache creates a ResultCache holding at most size entries.
func NewResultCache(size int) (*ResultCache, error) {
	l, err := simplelru.NewLRU(size, nil)
	if err != nil {
		return nil, err
	}
	return &ResultCache{cache: l}, nil
}

// Lookup returns the cached result for key, calling fetch and caching its
// result on a miss. A fetch error is never cached.
func (c *ResultCache) Lookup(key string, fetch func() (*GenerateResult, error)) (*GenerateResult, error) {
	c.mu.Lock()
	if v, ok := c.cache.Get(key); ok {
		c.mu.Unlock()
		return v.(*GenerateResult), nil
	}
	c.mu.Unlock()

	result, err := fetch()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache.Add(key, result)
	c.mu.Unlock()
	return result, nil
}
