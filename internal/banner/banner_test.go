package banner

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/kg-market-backend/internal/logging"
)

type cdnResolver struct{}

func (cdnResolver) Resolve(_ context.Context, locator string) string {
	return "https://cdn.example.com/" + locator
}

func TestGetBanner(t *testing.T) {
	app := fiber.New()
	svc := NewService(NewInMemoryRepository(SampleBanners()), cdnResolver{}, logging.Discard())
	NewHandler(svc).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/product/banner", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var items []Banner
	require.NoError(t, json.NewDecoder(res.Body).Decode(&items))
	require.Len(t, items, 1)
	require.Equal(t, "Зимняя распродажа", items[0].Title)
	require.Equal(t, "https://cdn.example.com/banners/hero-banner.png", items[0].Image)
	require.NotNil(t, items[0].Discount)
	require.Equal(t, "50%", *items[0].Discount)
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"banner_id", "title", "subtitle", "image", "discount"}).
		AddRow("1", "Зимняя распродажа", "Скидки до 50%", "banners/hero.png", "50%").
		AddRow("2", "Новинки", nil, nil, nil)
	mock.ExpectQuery("FROM banner").WithArgs(10).WillReturnRows(rows)

	items, err := NewPostgresRepository(db).List(10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "50%", *items[0].Discount)
	require.Nil(t, items[1].Discount)
	require.Empty(t, items[1].Image)
	require.NoError(t, mock.ExpectationsWereMet())
}
