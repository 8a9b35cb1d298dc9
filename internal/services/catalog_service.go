package services

import (
	"platemarket/internal/domain"
	"platemarket/internal/query"
	"platemarket/internal/repos"
)

// CatalogService serves the listing store: an immutable snapshot of the
// catalog taken once at startup.
type CatalogService struct {
	listings []domain.Listing
	byID     map[string]int
	regions  []string
}

func NewCatalogService(listings []domain.Listing) *CatalogService {
	s := &CatalogService{
		listings: append([]domain.Listing(nil), listings...),
		byID:     make(map[string]int, len(listings)),
	}
	for i, l := range s.listings {
		s.byID[l.ID] = i
	}
	s.regions = query.Regions(s.listings)
	return s
}

// LoadCatalog reads the whole catalog from the repo.
func LoadCatalog(repo *repos.ListingRepo) (*CatalogService, error) {
	all, err := repo.All()
	if err != nil {
		return nil, err
	}
	return NewCatalogService(all), nil
}

// All returns a copy of the store in store order.
func (s *CatalogService) All() []domain.Listing {
	return append([]domain.Listing(nil), s.listings...)
}

func (s *CatalogService) Len() int { return len(s.listings) }

func (s *CatalogService) Get(id string) (domain.Listing, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Listing{}, false
	}
	return s.listings[i], true
}

func (s *CatalogService) Regions() []string { return append([]string(nil), s.regions...) }

func (s *CatalogService) View(f domain.Filter, key domain.SortKey) []domain.Listing {
	return query.ComputeView(s.listings, f, key)
}

// Favorites lists the catalog entries the ledger marks favorite.
func (s *CatalogService) Favorites(l *FavoritesLedger) []domain.Listing {
	return query.FavoritesOf(s.listings, l.IsFavorite)
}
