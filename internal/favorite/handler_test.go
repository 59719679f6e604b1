package favorite

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/kg-market-backend/internal/device/devicetest"
	"github.com/wichananm65/kg-market-backend/internal/logging"
	"github.com/wichananm65/kg-market-backend/internal/product"
)

func makeAppWithFavoriteHandler() *fiber.App {
	logger := logging.Discard()
	catalog := product.NewService(product.NewInMemoryRepository(product.SampleProducts()), logger)
	h := NewHandler(NewService(NewInMemoryRepository(), catalog, logger))

	app := fiber.New()
	app.Use(devicetest.FakeAuth())
	h.RegisterProtectedRoutes(app)
	return app
}

func call(t *testing.T, app *fiber.App, method, deviceID, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, "/api/v1/favorites", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if deviceID != "" {
		req.Header.Set(devicetest.HeaderDeviceID, deviceID)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	var raw json.RawMessage
	_ = json.NewDecoder(res.Body).Decode(&raw)
	return res.StatusCode, raw
}

func TestFavoriteRoutes(t *testing.T) {
	app := makeAppWithFavoriteHandler()
	dev := uuid.NewString()

	status, _ := call(t, app, "GET", "", "")
	require.Equal(t, fiber.StatusUnauthorized, status)

	status, body := call(t, app, "GET", dev, "")
	require.Equal(t, fiber.StatusOK, status)
	require.JSONEq(t, `[]`, string(body))

	status, _ = call(t, app, "POST", dev, `{"productId":"2"}`)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, app, "POST", dev, `{"productId":"5"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = call(t, app, "POST", dev, `{"productId":"2"}`)
	require.Equal(t, fiber.StatusConflict, status)

	status, _ = call(t, app, "POST", dev, `{"productId":"404"}`)
	require.Equal(t, fiber.StatusNotFound, status)

	status, _ = call(t, app, "POST", dev, `{"productId":""}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, body = call(t, app, "GET", dev, "")
	require.Equal(t, fiber.StatusOK, status)
	var favs []product.Product
	require.NoError(t, json.Unmarshal(body, &favs))
	require.Len(t, favs, 2)
	require.Equal(t, "2", favs[0].ID)
	require.Equal(t, "5", favs[1].ID)

	status, body = call(t, app, "DELETE", dev, `{"productId":"2"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.JSONEq(t, `{"productId":"2","favoriteProductIds":["5"]}`, string(body))

	status, _ = call(t, app, "DELETE", dev, `{"productId":"2"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestFavorites_ArePerDevice(t *testing.T) {
	app := makeAppWithFavoriteHandler()
	a, b := uuid.NewString(), uuid.NewString()

	status, _ := call(t, app, "POST", a, `{"productId":"1"}`)
	require.Equal(t, fiber.StatusOK, status)

	_, body := call(t, app, "GET", b, "")
	require.JSONEq(t, `[]`, string(body))
}
