package shop

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/kg-market-backend/internal/feed"
	"github.com/wichananm65/kg-market-backend/internal/logging"
	"github.com/wichananm65/kg-market-backend/internal/media"
	"github.com/wichananm65/kg-market-backend/internal/product"
)

func newTestApp() *fiber.App {
	logger := logging.Discard()
	products := product.NewInMemoryRepository(product.SampleProducts())
	feedSvc := feed.NewService(feed.NewInMemoryRepository(feed.SampleEntries()), media.Passthrough{}, 50, logger)
	svc := NewService(NewInMemoryRepository(SampleShops()), products, feedSvc, media.Passthrough{}, logger)

	app := fiber.New()
	NewHandler(svc).RegisterPublicRoutes(app)
	return app
}

func TestGetShops(t *testing.T) {
	res, err := newTestApp().Test(httptest.NewRequest("GET", "/api/v1/shops", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var shops []Shop
	require.NoError(t, json.NewDecoder(res.Body).Decode(&shops))
	require.Len(t, shops, 2)
	require.Equal(t, "Fashion Store KG", shops[0].Name)
}

func TestGetShopPage(t *testing.T) {
	res, err := newTestApp().Test(httptest.NewRequest("GET", "/api/v1/shops/1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var page Page
	require.NoError(t, json.NewDecoder(res.Body).Decode(&page))
	require.Equal(t, "1", page.Shop.ID)
	require.Len(t, page.Products, 6)
	require.Len(t, page.OtherShops, 1)
	require.Equal(t, "2", page.OtherShops[0].ID)

	require.Len(t, page.Videos, 5)
	// video tiles show the thumbnail, image tiles the media itself
	entries := feed.SampleEntries()
	require.Equal(t, *entries[0].Thumbnail, page.Videos[0].Preview)
	require.Equal(t, entries[1].MediaURL, page.Videos[1].Preview)
	require.Equal(t, 1234, page.Videos[0].Likes)
}

func TestGetShopPage_NotFound(t *testing.T) {
	res, err := newTestApp().Test(httptest.NewRequest("GET", "/api/v1/shops/77", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"shop_id", "name", "image", "logo", "addresses", "description", "rating", "review_count", "video_count", "product_count"}).
		AddRow("1", "Fashion Store KG", "shops/1.jpg", "shops/1-logo.jpg", `{"ТЦ Вефа, 2 этаж, бутик 215"}`, "Модная одежда", 4.8, 342, 24, 156).
		AddRow("2", "Style Bishkek", nil, nil, nil, nil, 4.6, 218, 18, 89)
	mock.ExpectQuery("FROM shop").WillReturnRows(rows)

	shops, err := NewPostgresRepository(db).List()
	require.NoError(t, err)
	require.Len(t, shops, 2)
	require.Equal(t, []string{"ТЦ Вефа, 2 этаж, бутик 215"}, shops[0].Addresses)
	require.Equal(t, []string{}, shops[1].Addresses)
	require.Empty(t, shops[1].Logo)
	require.NoError(t, mock.ExpectationsWereMet())
}
