package shoppingmall

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/kg-market-backend/internal/logging"
	"github.com/wichananm65/kg-market-backend/internal/media"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	svc := NewService(NewInMemoryRepository(SampleMalls()), media.Passthrough{}, logging.Discard())
	NewHandler(svc).RegisterPublicRoutes(app)
	return app
}

func TestGetShoppingMalls(t *testing.T) {
	res, err := newTestApp().Test(httptest.NewRequest("GET", "/api/v1/shopping-mall", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var malls []Mall
	require.NoError(t, json.NewDecoder(res.Body).Decode(&malls))
	require.Len(t, malls, 2)
	require.Equal(t, "Вефа Центр", malls[0].Name)
	require.NotNil(t, malls[0].Coordinates)
	require.Len(t, malls[0].Promotions, 3)
}

func TestGetShoppingMall(t *testing.T) {
	app := newTestApp()

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/shopping-mall/2", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var m Mall
	require.NoError(t, json.NewDecoder(res.Body).Decode(&m))
	require.Equal(t, "Дордой Плаза", m.Name)

	res, err = app.Test(httptest.NewRequest("GET", "/api/v1/shopping-mall/42", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

var mallRowColumns = []string{"mall_id", "name", "image", "address", "latitude", "longitude", "schedule", "phone", "promotions"}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(mallRowColumns).
		AddRow("1", "Вефа Центр", "malls/vefa.jpg", "пр. Чуй 155/1, Бишкек", 42.8573, 74.6096, "Пн-Вс: 10:00 - 22:00", "+996 312 123 456", `{"Скидки до 50%","Акция 2+1"}`).
		AddRow("2", "Дордой Плаза", nil, "ул. Ибраимова 115, Бишкек", nil, 74.6178, nil, nil, nil)
	mock.ExpectQuery("FROM shopping_mall").WithArgs(100).WillReturnRows(rows)

	malls, err := NewPostgresRepository(db).List(100)
	require.NoError(t, err)
	require.Len(t, malls, 2)
	require.Equal(t, &Coordinates{Latitude: 42.8573, Longitude: 74.6096}, malls[0].Coordinates)
	require.Equal(t, []string{"Скидки до 50%", "Акция 2+1"}, malls[0].Promotions)
	require.Nil(t, malls[1].Coordinates)
	require.Equal(t, []string{}, malls[1].Promotions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectQuery("WHERE mall_id").WithArgs("9").WillReturnRows(sqlmock.NewRows(mallRowColumns))

	_, err = NewPostgresRepository(db).GetByID("9")
	require.ErrorIs(t, err, ErrNotFound)
}
