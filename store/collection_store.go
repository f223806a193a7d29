// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/casedesk/monitoring"
	"github.com/l3montree-dev/casedesk/utils"
)

type Loader[T any] func(ctx context.Context) ([]T, error)

const allKey = "all"

// CollectionStore keeps one backend collection in memory until it expires or
// gets invalidated. Concurrent loads of an empty store share one request.
type CollectionStore[T any] struct {
	name  string
	cache *expirable.LRU[string, []T]
	load  Loader[T]
	key   func(T) int

	loadMu sync.Mutex
	// bumped on every invalidation so an in-flight load does not
	// repopulate the cache with data older than the invalidation
	generation uint64
	genMu      sync.Mutex
}

func NewCollectionStore[T any](name string, ttl time.Duration, load Loader[T], key func(T) int) *CollectionStore[T] {
	return &CollectionStore[T]{
		name:  name,
		cache: expirable.NewLRU[string, []T](1, nil, ttl),
		load:  load,
		key:   key,
	}
}

func (s *CollectionStore[T]) Name() string {
	return s.name
}

// All returns a copy of the collection, loading it on a miss.
func (s *CollectionStore[T]) All(ctx context.Context) ([]T, error) {
	if items, ok := s.cache.Get(allKey); ok {
		monitoring.StoreHits.WithLabelValues(s.name).Inc()
		return slices.Clone(items), nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if items, ok := s.cache.Get(allKey); ok {
		monitoring.StoreHits.WithLabelValues(s.name).Inc()
		return slices.Clone(items), nil
	}

	gen := s.currentGeneration()
	items, err := s.load(ctx)
	if err != nil {
		monitoring.StoreLoads.WithLabelValues(s.name, "error").Inc()
		return nil, err
	}
	monitoring.StoreLoads.WithLabelValues(s.name, "ok").Inc()
	if items == nil {
		items = []T{}
	}

	s.genMu.Lock()
	if gen == s.generation {
		s.cache.Add(allKey, items)
	}
	s.genMu.Unlock()

	return slices.Clone(items), nil
}

// Invalidate drops the cached collection. The next All reloads it.
func (s *CollectionStore[T]) Invalidate() {
	s.genMu.Lock()
	s.generation++
	s.cache.Remove(allKey)
	s.genMu.Unlock()
	monitoring.StoreInvalidations.WithLabelValues(s.name).Inc()
}

// Merge replaces the item with the same key or appends it. Nothing happens
// if the collection is not loaded.
func (s *CollectionStore[T]) Merge(item T) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	items, ok := s.cache.Peek(allKey)
	if !ok {
		return
	}
	s.cache.Add(allKey, utils.Upsert(slices.Clone(items), item, s.key))
}

// Remove drops the item with the given key from a loaded collection.
func (s *CollectionStore[T]) Remove(id int) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	items, ok := s.cache.Peek(allKey)
	if !ok {
		return
	}
	s.cache.Add(allKey, slices.DeleteFunc(slices.Clone(items), func(t T) bool {
		return s.key(t) == id
	}))
}

func (s *CollectionStore[T]) currentGeneration() uint64 {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.generation
}
