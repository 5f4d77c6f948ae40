// Package memory provides in-process implementations of the persistence
// ports, used in tests and redis-less development runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"security-funnel-service/internal/domain"
)

// LeadStore mirrors the key-value contract in process: records keyed by
// id, listed in lexicographic key order with a last-key continuation
// cursor, the same shape a prefix scan over lead:{id} keys produces.
type LeadStore struct {
	mu    sync.RWMutex
	leads map[string]domain.Lead
}

func NewLeadStore() *LeadStore {
	return &LeadStore{leads: make(map[string]domain.Lead)}
}

func (s *LeadStore) Put(_ context.Context, lead domain.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads[lead.ID] = lead
	return nil
}

func (s *LeadStore) Get(_ context.Context, id string) (domain.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lead, ok := s.leads[id]
	if !ok {
		return domain.Lead{}, domain.ErrLeadNotFound
	}
	return lead, nil
}

func (s *LeadStore) List(_ context.Context, cursor string, limit int) ([]domain.Lead, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.leads))
	for id := range s.leads {
		if cursor == "" || id > cursor {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	items := make([]domain.Lead, 0, len(ids))
	for _, id := range ids {
		items = append(items, s.leads[id])
	}

	next := ""
	if len(ids) > 0 {
		last := ids[len(ids)-1]
		for id := range s.leads {
			if id > last {
				next = last
				break
			}
		}
	}
	return items, next, nil
}

func (s *LeadStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.leads, id)
	return nil
}
