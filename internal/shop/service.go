package shop

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/wichananm65/kg-market-backend/internal/feed"
	"github.com/wichananm65/kg-market-backend/internal/media"
	"github.com/wichananm65/kg-market-backend/internal/product"
)

// pageProducts is how many products the shop screen previews.
const pageProducts = 6

type ProductSource interface {
	List() ([]product.Product, error)
}

type FeedSource interface {
	List(ctx context.Context) ([]feed.Entry, error)
}

type Service struct {
	repo     Repository
	products ProductSource
	feed     FeedSource
	media    media.Resolver
	log      *log.Helper
}

func NewService(repo Repository, products ProductSource, feedSource FeedSource, resolver media.Resolver, logger log.Logger) *Service {
	return &Service{
		repo:     repo,
		products: products,
		feed:     feedSource,
		media:    resolver,
		log:      log.NewHelper(log.With(logger, "module", "shop")),
	}
}

func (s *Service) List(ctx context.Context) ([]Shop, error) {
	shops, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	for i := range shops {
		shops[i] = s.present(ctx, shops[i])
	}
	return shops, nil
}

// Page builds the shop screen. Feed entries and the catalog are not yet
// attributed to shops, so every shop previews the whole feed and the first
// catalog products.
func (s *Service) Page(ctx context.Context, id string) (Page, error) {
	sh, err := s.repo.GetByID(id)
	if err != nil {
		return Page{}, err
	}

	entries, err := s.feed.List(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("shop %s videos: %w", id, err)
	}
	videos := make([]VideoPreview, 0, len(entries))
	for _, e := range entries {
		videos = append(videos, VideoPreview{EntryID: e.ID, Type: e.Type, Preview: e.Preview(), Likes: e.Likes})
	}

	catalog, err := s.products.List()
	if err != nil {
		return Page{}, fmt.Errorf("shop %s products: %w", id, err)
	}
	if len(catalog) > pageProducts {
		catalog = catalog[:pageProducts]
	}

	all, err := s.List(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("shop %s others: %w", id, err)
	}
	others := make([]Shop, 0, len(all))
	for _, o := range all {
		if o.ID != sh.ID {
			others = append(others, o)
		}
	}

	return Page{Shop: s.present(ctx, sh), Videos: videos, Products: catalog, OtherShops: others}, nil
}

func (s *Service) present(ctx context.Context, sh Shop) Shop {
	sh.Image = s.media.Resolve(ctx, sh.Image)
	sh.Logo = s.media.Resolve(ctx, sh.Logo)
	return sh
}
