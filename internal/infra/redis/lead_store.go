// Package redis implements the lead store on a Redis key-value backend.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"security-funnel-service/internal/domain"
)

const leadKeyPrefix = "lead:"

// LeadStore persists leads as JSON values under lead:{id} keys. Listing
// is a SCAN over the prefix; the SCAN cursor doubles as the opaque
// pagination token (cursor 0 means the scan is complete).
type LeadStore struct {
	client *redis.Client
}

func NewLeadStore(client *redis.Client) *LeadStore {
	return &LeadStore{client: client}
}

func (s *LeadStore) Put(ctx context.Context, lead domain.Lead) error {
	data, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}
	return s.client.Set(ctx, leadKey(lead.ID), data, 0).Err()
}

func (s *LeadStore) Get(ctx context.Context, id string) (domain.Lead, error) {
	data, err := s.client.Get(ctx, leadKey(id)).Result()
	if err == redis.Nil {
		return domain.Lead{}, domain.ErrLeadNotFound
	}
	if err != nil {
		return domain.Lead{}, err
	}
	var lead domain.Lead
	if err := json.Unmarshal([]byte(data), &lead); err != nil {
		return domain.Lead{}, fmt.Errorf("unmarshal lead %s: %w", id, err)
	}
	return lead, nil
}

// List scans one batch of lead keys and hydrates them in a single MGET.
// SCAN makes no page-size promise, so a batch may hold fewer (or slightly
// more) records than limit; callers follow the cursor until it is empty.
func (s *LeadStore) List(ctx context.Context, cursor string, limit int) ([]domain.Lead, string, error) {
	start, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	keys, next, err := s.client.Scan(ctx, start, leadKeyPrefix+"*", int64(limit)).Result()
	if err != nil {
		return nil, "", err
	}

	leads := make([]domain.Lead, 0, len(keys))
	if len(keys) > 0 {
		values, err := s.client.MGet(ctx, keys...).Result()
		if err != nil {
			return nil, "", err
		}
		for _, value := range values {
			raw, ok := value.(string)
			if !ok {
				// Key vanished between SCAN and MGET.
				continue
			}
			var lead domain.Lead
			if err := json.Unmarshal([]byte(raw), &lead); err != nil {
				return nil, "", fmt.Errorf("unmarshal lead: %w", err)
			}
			leads = append(leads, lead)
		}
	}

	if next == 0 {
		return leads, "", nil
	}
	return leads, strconv.FormatUint(next, 10), nil
}

// Delete is unconditional; removing an absent key is not an error.
func (s *LeadStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, leadKey(id)).Err()
}

func leadKey(id string) string {
	return leadKeyPrefix + id
}

func parseCursor(cursor string) (uint64, error) {
	if cursor == "" {
		return 0, nil
	}
	value, err := strconv.ParseUint(cursor, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor %q: %w", cursor, err)
	}
	return value, nil
}
