package banner

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/wichananm65/kg-market-backend/internal/media"
)

// Service provides business logic for banners.
type Service struct {
	repo  Repository
	media media.Resolver
	log   *log.Helper
}

func NewService(r Repository, resolver media.Resolver, logger log.Logger) *Service {
	return &Service{repo: r, media: resolver, log: log.NewHelper(log.With(logger, "module", "banner"))}
}

// List returns up to `limit` banners with client-ready image URLs. An empty
// list is fine: the client falls back to its bundled hero image.
func (s *Service) List(ctx context.Context, limit int) []Banner {
	items, err := s.repo.List(limit)
	if err != nil {
		s.log.Warnf("list banners: %v", err)
		return []Banner{}
	}
	for i := range items {
		items[i].Image = s.media.Resolve(ctx, items[i].Image)
	}
	return items
}
