package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/elegance/internal/domain"
)

// CatalogService caches the product list and derives the storefront sections
type CatalogService struct {
	repo   domain.CatalogRepository
	logger *slog.Logger

	mu       sync.RWMutex
	products []domain.Product
	byID     map[domain.ProductID]int
	loaded   bool
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo domain.CatalogRepository, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		repo:   repo,
		logger: logger,
		byID:   make(map[domain.ProductID]int),
	}
}

// Load fetches the catalog and replaces the cached list.
// On failure the previous list is kept.
func (s *CatalogService) Load(ctx context.Context) error {
	s.logger.Debug("loading catalog")

	products, err := s.repo.Products(ctx)
	if err != nil {
		s.logger.Error("catalog load failed", "error", err)
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	byID := make(map[domain.ProductID]int, len(products))
	unique := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if _, dup := byID[p.ID]; dup {
			s.logger.Warn("duplicate product id in catalog", "id", p.ID)
			continue
		}
		byID[p.ID] = len(unique)
		unique = append(unique, p)
	}

	s.mu.Lock()
	s.products = unique
	s.byID = byID
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("catalog loaded", "products", len(unique))
	return nil
}

// Loaded reports whether a catalog has been fetched successfully
func (s *CatalogService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Products returns every product in catalog order
func (s *CatalogService) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

// NewArrivals returns products flagged as new, or all products if none are
func (s *CatalogService) NewArrivals() []domain.Product {
	return s.section(func(p domain.Product) bool { return p.IsNew })
}

// BestSellers returns discounted products, or all products if none are
func (s *CatalogService) BestSellers() []domain.Product {
	return s.section(func(p domain.Product) bool { return p.Discount > 0 })
}

func (s *CatalogService) section(keep func(domain.Product) bool) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Product
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]domain.Product(nil), s.products...)
	}
	return out
}

// Find returns the product with the given ID
func (s *CatalogService) Find(id domain.ProductID) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return s.products[i], nil
}

// Search returns products whose name fuzzy-matches query, closest first.
// Ties keep catalog order.
func (s *CatalogService) Search(query string) []domain.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.products))
	for i, p := range s.products {
		names[i] = p.Name
	}

	ranks := fuzzy.RankFindFold(query, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	results := make([]domain.Product, 0, len(ranks))
	for _, r := range ranks {
		results = append(results, s.products[r.OriginalIndex])
	}

	s.logger.Debug("search complete", "query", query, "results", len(results))
	return results
}
