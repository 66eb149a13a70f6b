package cache

import (
	"context"
	"time"

	"supermarket/pos/internal/domain"
)

// SearchCache holds product search results keyed by the normalized
// keyword. Entries are TTL-bounded; stale stock figures inside a cached
// result are acceptable for the lifetime of the entry.
type SearchCache interface {
	Get(ctx context.Context, keyword string) ([]domain.Product, bool, error)
	Set(ctx context.Context, keyword string, products []domain.Product, ttl time.Duration) error
}

type NoopSearchCache struct{}

func (NoopSearchCache) Get(_ context.Context, _ string) ([]domain.Product, bool, error) {
	return nil, false, nil
}

func (NoopSearchCache) Set(_ context.Context, _ string, _ []domain.Product, _ time.Duration) error {
	return nil
}
