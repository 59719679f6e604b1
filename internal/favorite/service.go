package favorite

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/wichananm65/kg-market-backend/internal/product"
)

// Catalog is the product lookup favorites need.
type Catalog interface {
	GetByID(id string) (product.Product, error)
	ListByIDs(ids []string) ([]product.Product, error)
}

type Service struct {
	repo    Repository
	catalog Catalog
	log     *log.Helper
}

func NewService(repo Repository, catalog Catalog, logger log.Logger) *Service {
	return &Service{repo: repo, catalog: catalog, log: log.NewHelper(log.With(logger, "module", "favorite"))}
}

// AddFavorite returns product.ErrNotFound for ids missing from the catalog.
func (s *Service) AddFavorite(deviceID, productID string) ([]string, error) {
	if _, err := s.catalog.GetByID(productID); err != nil {
		return nil, err
	}
	return s.repo.AddFavorite(deviceID, productID)
}

func (s *Service) RemoveFavorite(deviceID, productID string) ([]string, error) {
	return s.repo.RemoveFavorite(deviceID, productID)
}

// GetFavorites resolves the device's favorites to products, newest last.
// Products that left the catalog are skipped.
func (s *Service) GetFavorites(deviceID string) ([]product.Product, error) {
	ids, err := s.repo.GetFavorites(deviceID)
	if err != nil {
		return nil, err
	}
	return s.catalog.ListByIDs(ids)
}
