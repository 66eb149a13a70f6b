package inventory

import (
	"context"
	"log"
	"strings"
	"time"

	"supermarket/pos/internal/cache"
	"supermarket/pos/internal/domain"
	"supermarket/pos/internal/store"
)

// Service owns the product catalog: lookups, keyword search and stock
// mutation. Search results go through the cache; everything else hits
// the repository directly.
type Service struct {
	repo      store.Repository
	cache     cache.SearchCache
	searchTTL time.Duration
}

func New(repo store.Repository, searchCache cache.SearchCache, searchTTL time.Duration) *Service {
	if searchCache == nil {
		searchCache = cache.NoopSearchCache{}
	}
	if searchTTL < time.Second {
		searchTTL = 20 * time.Second
	}

	return &Service{
		repo:      repo,
		cache:     searchCache,
		searchTTL: searchTTL,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	return s.repo.GetProductByBarcode(ctx, barcode)
}

// SearchProducts matches the keyword case-insensitively against product
// name and category, in catalog order. Cache failures are logged and
// the lookup falls through to the repository.
func (s *Service) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	if cached, hit, err := s.cache.Get(ctx, keyword); err != nil {
		log.Printf("[inventory] WARN: search cache get failed keyword=%q: %v", keyword, err)
	} else if hit {
		return cached, nil
	}

	results, err := s.repo.SearchProducts(ctx, keyword)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, keyword, results, s.searchTTL); err != nil {
		log.Printf("[inventory] WARN: search cache set failed keyword=%q: %v", keyword, err)
	}

	return results, nil
}

// UpdateProductStock applies a stock delta: negative for a sale,
// positive for a return or restock.
func (s *Service) UpdateProductStock(ctx context.Context, id string, delta int) error {
	return s.repo.AdjustStock(ctx, id, delta)
}

func (s *Service) AddProduct(ctx context.Context, product domain.Product) error {
	return s.repo.AddProduct(ctx, product)
}
