package product

import (
	"errors"
	"sort"

	"github.com/go-kratos/kratos/v2/log"
)

const (
	defaultRecommendedLimit = 12
	maxRecommendedLimit     = 100
)

type Service struct {
	repo Repository
	log  *log.Helper
}

func NewService(repo Repository, logger log.Logger) *Service {
	return &Service{repo: repo, log: log.NewHelper(log.With(logger, "module", "product"))}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

// ListByIDs resolves ids in the given order, skipping unknown ones.
func (s *Service) ListByIDs(ids []string) ([]Product, error) {
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.GetByID(id)
		if errors.Is(err, ErrNotFound) {
			s.log.Debugf("skipping unknown product %s", id)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Search runs the catalog query engine over the current catalog.
func (s *Service) Search(text string, criteria FilterCriteria) ([]Product, error) {
	catalog, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	return Query(catalog, text, criteria), nil
}

// Filters returns the facet values for the client filter sheet.
func (s *Service) Filters() (FilterMetadata, error) {
	catalog, err := s.repo.List()
	if err != nil {
		return FilterMetadata{}, err
	}
	return Facets(catalog), nil
}

// Recommended returns the popular products page: best rated first, then most
// reviewed, ties kept in catalog order.
func (s *Service) Recommended(limit, offset int) ([]Product, error) {
	if limit <= 0 {
		limit = defaultRecommendedLimit
	}
	if limit > maxRecommendedLimit {
		limit = maxRecommendedLimit
	}
	if offset < 0 {
		offset = 0
	}

	catalog, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(catalog, func(i, j int) bool {
		if catalog[i].Rating != catalog[j].Rating {
			return catalog[i].Rating > catalog[j].Rating
		}
		return catalog[i].ReviewCount > catalog[j].ReviewCount
	})

	if offset >= len(catalog) {
		return []Product{}, nil
	}
	end := offset + limit
	if end > len(catalog) {
		end = len(catalog)
	}
	return catalog[offset:end], nil
}
