package category

import "github.com/go-kratos/kratos/v2/log"

// Service provides business logic for categories.
type Service struct {
	repo Repository
	log  *log.Helper
}

func NewService(r Repository, logger log.Logger) *Service {
	return &Service{repo: r, log: log.NewHelper(log.With(logger, "module", "category"))}
}

// List returns up to `limit` categories. A failing source yields an empty
// list so the home screen still renders.
func (s *Service) List(limit int) []Category {
	items, err := s.repo.List(limit)
	if err != nil {
		s.log.Warnf("list categories: %v", err)
		return []Category{}
	}
	return items
}
