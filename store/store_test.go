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
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
}

func countingLoader(calls *atomic.Int32, items ...item) Loader[item] {
	return func(ctx context.Context) ([]item, error) {
		calls.Add(1)
		return items, nil
	}
}

func itemKey(i item) int { return i.ID }

func TestCollectionStore(t *testing.T) {
	t.Run("should load once and serve from memory", func(t *testing.T) {
		var calls atomic.Int32
		s := NewCollectionStore("items", time.Minute, countingLoader(&calls, item{1, "a"}), itemKey)

		for range 3 {
			items, err := s.All(context.Background())
			require.NoError(t, err)
			assert.Len(t, items, 1)
		}
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("should reload after an invalidation", func(t *testing.T) {
		var calls atomic.Int32
		s := NewCollectionStore("items", time.Minute, countingLoader(&calls, item{1, "a"}), itemKey)

		_, err := s.All(context.Background())
		require.NoError(t, err)
		s.Invalidate()
		_, err = s.All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("should reload after the ttl", func(t *testing.T) {
		var calls atomic.Int32
		s := NewCollectionStore("items", 20*time.Millisecond, countingLoader(&calls, item{1, "a"}), itemKey)

		_, err := s.All(context.Background())
		require.NoError(t, err)
		time.Sleep(60 * time.Millisecond)
		_, err = s.All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("should share one load between concurrent readers", func(t *testing.T) {
		var calls atomic.Int32
		s := NewCollectionStore("items", time.Minute, func(ctx context.Context) ([]item, error) {
			calls.Add(1)
			time.Sleep(10 * time.Millisecond)
			return []item{{1, "a"}}, nil
		}, itemKey)

		var wg sync.WaitGroup
		for range 10 {
			wg.Go(func() {
				_, err := s.All(context.Background())
				assert.NoError(t, err)
			})
		}
		wg.Wait()
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("should not cache failed loads", func(t *testing.T) {
		var calls atomic.Int32
		s := NewCollectionStore("items", time.Minute, func(ctx context.Context) ([]item, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("backend down")
			}
			return []item{{1, "a"}}, nil
		}, itemKey)

		_, err := s.All(context.Background())
		assert.Error(t, err)
		items, err := s.All(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("should merge into a loaded collection", func(t *testing.T) {
		var calls atomic.Int32
		s := NewCollectionStore("items", time.Minute, countingLoader(&calls, item{1, "a"}, item{2, "b"}), itemKey)

		s.Merge(item{3, "ignored"})
		_, err := s.All(context.Background())
		require.NoError(t, err)

		s.Merge(item{2, "b2"})
		s.Merge(item{4, "d"})
		s.Remove(1)

		items, err := s.All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []item{{2, "b2"}, {4, "d"}}, items)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("should not leak mutations of returned slices", func(t *testing.T) {
		var calls atomic.Int32
		s := NewCollectionStore("items", time.Minute, countingLoader(&calls, item{1, "a"}), itemKey)

		items, err := s.All(context.Background())
		require.NoError(t, err)
		items[0].Name = "changed"

		items, err = s.All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "a", items[0].Name)
	})
}

type fakeResource[T any] struct {
	items []T
	calls atomic.Int32
}

func (f *fakeResource[T]) List(ctx context.Context) ([]T, error) {
	f.calls.Add(1)
	return f.items, nil
}
func (f *fakeResource[T]) Get(ctx context.Context, id int) (*T, error)            { return nil, nil }
func (f *fakeResource[T]) Create(ctx context.Context, item T) (*T, error)         { return &item, nil }
func (f *fakeResource[T]) Update(ctx context.Context, id int, item T) (*T, error) { return &item, nil }
func (f *fakeResource[T]) Delete(ctx context.Context, id int) error               { return nil }

type fakeBroker struct {
	ch        chan map[string]any
	published []shared.PubSubMessage
}

func (b *fakeBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	b.published = append(b.published, message)
	return nil
}

func (b *fakeBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	return b.ch, nil
}

func newTestCaseStore() (*CaseStore, *fakeResource[dtos.TicketRecord]) {
	tickets := &fakeResource[dtos.TicketRecord]{items: []dtos.TicketRecord{{ID: 1, Title: "t", Status: "Open"}}}
	return NewCaseStore(
		&fakeResource[dtos.ClientRecord]{},
		&fakeResource[dtos.AssetRecord]{},
		&fakeResource[dtos.VulnerabilityRecord]{},
		tickets,
		&fakeResource[dtos.WorkerRecord]{},
		&fakeResource[dtos.ProjectRecord]{},
		time.Minute,
	), tickets
}

func TestCaseStore(t *testing.T) {
	t.Run("should transform records into view models", func(t *testing.T) {
		s, _ := newTestCaseStore()
		tickets, err := s.Tickets.All(context.Background())
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, "t", tickets[0].Title)
	})

	t.Run("should invalidate collections received from the broker", func(t *testing.T) {
		s, tickets := newTestCaseStore()
		broker := &fakeBroker{ch: make(chan map[string]any, 1)}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		require.NoError(t, s.ListenForInvalidations(ctx, broker))

		_, err := s.Tickets.All(ctx)
		require.NoError(t, err)

		broker.ch <- map[string]any{"collection": CollectionTickets}
		assert.Eventually(t, func() bool {
			_, err := s.Tickets.All(ctx)
			return err == nil && tickets.calls.Load() == 2
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("should publish invalidations", func(t *testing.T) {
		s, tickets := newTestCaseStore()
		broker := &fakeBroker{}

		_, err := s.Tickets.All(context.Background())
		require.NoError(t, err)
		s.Publish(context.Background(), broker, CollectionTickets)

		require.Len(t, broker.published, 1)
		assert.Equal(t, shared.CaseInvalidation, broker.published[0].GetChannel())
		assert.Equal(t, CollectionTickets, broker.published[0].GetPayload()["collection"])

		_, err = s.Tickets.All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), tickets.calls.Load())
	})

	t.Run("should invalidate everything for an empty name", func(t *testing.T) {
		s, tickets := newTestCaseStore()
		_, err := s.Tickets.All(context.Background())
		require.NoError(t, err)
		s.Invalidate("")
		_, err = s.Tickets.All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), tickets.calls.Load())
	})
}
