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
	"log/slog"
	"os"
	"time"

	"github.com/l3montree-dev/casedesk/dtos"
	"github.com/l3montree-dev/casedesk/shared"
	"github.com/l3montree-dev/casedesk/transformer"
)

const (
	CollectionClients         = "clients"
	CollectionAssets          = "assets"
	CollectionVulnerabilities = "vulnerabilities"
	CollectionTickets         = "tickets"
	CollectionWorkers         = "workers"
	CollectionProjects        = "projects"
)

const defaultTTL = 30 * time.Second

// TTLFromEnv reads CASE_STORE_TTL, e.g. "1m".
func TTLFromEnv() time.Duration {
	if v := os.Getenv("CASE_STORE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		slog.Warn("invalid CASE_STORE_TTL, using default", "value", v, "default", defaultTTL)
	}
	return defaultTTL
}

// CaseStore holds the view models of every backend collection.
type CaseStore struct {
	Clients         *CollectionStore[dtos.ClientDTO]
	Assets          *CollectionStore[dtos.AssetDTO]
	Vulnerabilities *CollectionStore[dtos.VulnerabilityDTO]
	Tickets         *CollectionStore[dtos.TicketDTO]
	Workers         *CollectionStore[dtos.WorkerDTO]
	Projects        *CollectionStore[dtos.ProjectDTO]
}

type invalidator interface {
	Invalidate()
}

func listAndTransform[R, V any](list func(ctx context.Context) ([]R, error), transform func([]R) []V) Loader[V] {
	return func(ctx context.Context) ([]V, error) {
		records, err := list(ctx)
		if err != nil {
			return nil, err
		}
		return transform(records), nil
	}
}

func NewCaseStore(
	clients shared.ClientAPI,
	assets shared.AssetAPI,
	vulnerabilities shared.VulnerabilityAPI,
	tickets shared.TicketAPI,
	workers shared.WorkerAPI,
	projects shared.ProjectAPI,
	ttl time.Duration,
) *CaseStore {
	return &CaseStore{
		Clients: NewCollectionStore(CollectionClients, ttl,
			listAndTransform(clients.List, transformer.ClientsToView),
			func(c dtos.ClientDTO) int { return c.ID }),
		Assets: NewCollectionStore(CollectionAssets, ttl,
			listAndTransform(assets.List, transformer.AssetsToView),
			func(a dtos.AssetDTO) int { return a.ID }),
		Vulnerabilities: NewCollectionStore(CollectionVulnerabilities, ttl,
			listAndTransform(vulnerabilities.List, transformer.VulnerabilitiesToView),
			func(v dtos.VulnerabilityDTO) int { return v.ID }),
		Tickets: NewCollectionStore(CollectionTickets, ttl,
			listAndTransform(tickets.List, transformer.TicketsToView),
			func(t dtos.TicketDTO) int { return t.ID }),
		Workers: NewCollectionStore(CollectionWorkers, ttl,
			listAndTransform(workers.List, transformer.WorkersToView),
			func(w dtos.WorkerDTO) int { return w.ID }),
		Projects: NewCollectionStore(CollectionProjects, ttl,
			listAndTransform(projects.List, transformer.ProjectsToView),
			func(p dtos.ProjectDTO) int { return p.ID }),
	}
}

func (c *CaseStore) collections() map[string]invalidator {
	return map[string]invalidator{
		CollectionClients:         c.Clients,
		CollectionAssets:          c.Assets,
		CollectionVulnerabilities: c.Vulnerabilities,
		CollectionTickets:         c.Tickets,
		CollectionWorkers:         c.Workers,
		CollectionProjects:        c.Projects,
	}
}

// Invalidate drops one collection by name. An empty name drops all of them.
func (c *CaseStore) Invalidate(collection string) {
	all := c.collections()
	if collection == "" {
		for _, s := range all {
			s.Invalidate()
		}
		return
	}
	s, ok := all[collection]
	if !ok {
		slog.Warn("unknown collection, ignoring invalidation", "collection", collection)
		return
	}
	s.Invalidate()
}

// ListenForInvalidations drops collections changed by other instances until
// ctx is done.
func (c *CaseStore) ListenForInvalidations(ctx context.Context, broker shared.PubSubBroker) error {
	ch, err := broker.Subscribe(shared.CaseInvalidation)
	if err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case payload, ok := <-ch:
				if !ok {
					return
				}
				collection, _ := payload["collection"].(string)
				slog.Debug("received invalidation", "collection", collection)
				c.Invalidate(collection)
			}
		}
	}()
	return nil
}

// Publish invalidates the collection locally and tells the other instances.
func (c *CaseStore) Publish(ctx context.Context, broker shared.PubSubBroker, collection string) {
	c.Invalidate(collection)
	c.Notify(ctx, broker, collection)
}

// Notify only tells the other instances, for callers which already merged
// the change into the local store. A nil broker is a no-op.
func (c *CaseStore) Notify(ctx context.Context, broker shared.PubSubBroker, collection string) {
	if broker == nil {
		return
	}
	if err := broker.Publish(ctx, shared.NewInvalidationMessage(collection)); err != nil {
		slog.Warn("could not publish invalidation", "collection", collection, "err", err)
	}
}
