package shoppingmall

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/wichananm65/kg-market-backend/internal/media"
)

// Service provides business logic for shopping-mall endpoints.
type Service struct {
	repo  Repository
	media media.Resolver
	log   *log.Helper
}

func NewService(r Repository, resolver media.Resolver, logger log.Logger) *Service {
	return &Service{repo: r, media: resolver, log: log.NewHelper(log.With(logger, "module", "shopping-mall"))}
}

func (s *Service) List(ctx context.Context, limit int) []Mall {
	items, err := s.repo.List(limit)
	if err != nil {
		s.log.Warnf("list malls: %v", err)
		return []Mall{}
	}
	for i := range items {
		items[i].Image = s.media.Resolve(ctx, items[i].Image)
	}
	return items
}

func (s *Service) GetByID(ctx context.Context, id string) (Mall, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return Mall{}, err
	}
	m.Image = s.media.Resolve(ctx, m.Image)
	return m, nil
}
