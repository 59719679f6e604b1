package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/wichananm65/kg-market-backend/internal/banner"
	"github.com/wichananm65/kg-market-backend/internal/cart"
	"github.com/wichananm65/kg-market-backend/internal/category"
	"github.com/wichananm65/kg-market-backend/internal/config"
	"github.com/wichananm65/kg-market-backend/internal/device"
	"github.com/wichananm65/kg-market-backend/internal/favorite"
	"github.com/wichananm65/kg-market-backend/internal/feed"
	"github.com/wichananm65/kg-market-backend/internal/media"
	"github.com/wichananm65/kg-market-backend/internal/product"
	"github.com/wichananm65/kg-market-backend/internal/shop"
	shoppingmall "github.com/wichananm65/kg-market-backend/internal/shopping-mall"
)

// repositories are the catalog sources: Postgres when a database is
// configured, the built-in static catalog otherwise.
type repositories struct {
	products   product.Repository
	feed       feed.Repository
	categories category.Repository
	banners    banner.Repository
	malls      shoppingmall.Repository
	shops      shop.Repository
}

func newRepositories(db *sql.DB) repositories {
	if db == nil {
		return repositories{
			products:   product.NewInMemoryRepository(product.SampleProducts()),
			feed:       feed.NewInMemoryRepository(feed.SampleEntries()),
			categories: category.NewInMemoryRepository(category.SampleCategories()),
			banners:    banner.NewInMemoryRepository(banner.SampleBanners()),
			malls:      shoppingmall.NewInMemoryRepository(shoppingmall.SampleMalls()),
			shops:      shop.NewInMemoryRepository(shop.SampleShops()),
		}
	}
	return repositories{
		products:   product.NewPostgresRepository(db),
		feed:       feed.NewPostgresRepository(db),
		categories: category.NewPostgresRepository(db),
		banners:    banner.NewPostgresRepository(db),
		malls:      shoppingmall.NewPostgresRepository(db),
		shops:      shop.NewPostgresRepository(db),
	}
}

// handlers holds everything the HTTP app registers.
type handlers struct {
	device     *device.Handler
	product    *product.Handler
	feed       *feed.Handler
	category   *category.Handler
	banner     *banner.Handler
	mall       *shoppingmall.Handler
	shop       *shop.Handler
	favorite   *favorite.Handler
	cart       *cart.Handler
	signingKey []byte
}

func newHandlers(repos repositories, resolver media.Resolver, threshold float64, signingKey []byte, logger log.Logger) (handlers, error) {
	issuer, err := device.NewIssuer(signingKey)
	if err != nil {
		return handlers{}, err
	}

	products := product.NewService(repos.products, logger)
	feedService := feed.NewService(repos.feed, resolver, threshold, logger)

	return handlers{
		device:     device.NewHandler(issuer),
		product:    product.NewHandler(products),
		feed:       feed.NewHandler(feedService),
		category:   category.NewHandler(category.NewService(repos.categories, logger)),
		banner:     banner.NewHandler(banner.NewService(repos.banners, resolver, logger)),
		mall:       shoppingmall.NewHandler(shoppingmall.NewService(repos.malls, resolver, logger)),
		shop:       shop.NewHandler(shop.NewService(repos.shops, repos.products, feedService, resolver, logger)),
		favorite:   favorite.NewHandler(favorite.NewService(favorite.NewInMemoryRepository(), products, logger)),
		cart:       cart.NewHandler(cart.NewService(cart.NewInMemoryRepository(), products, logger)),
		signingKey: signingKey,
	}, nil
}

// openDB returns nil without error when no database is configured.
func openDB(ctx context.Context, url string) (*sql.DB, error) {
	if url == "" {
		return nil, nil
	}
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// signingKey returns the configured JWT secret. The development key is only
// accepted with a warning.
func signingKey(cfg config.Config, logger log.Logger) []byte {
	key, err := cfg.SigningKey()
	if errors.Is(err, config.ErrMissingJWTSecret) {
		log.NewHelper(logger).Warn("JWT_SECRET is not set, using the development signing key")
	}
	return key
}
