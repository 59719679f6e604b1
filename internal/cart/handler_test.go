package cart

import (
	"encoding/json"
	"io"
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

func makeAppWithCartHandler() *fiber.App {
	logger := logging.Discard()
	catalog := product.NewService(product.NewInMemoryRepository(product.SampleProducts()), logger)
	h := NewHandler(NewService(NewInMemoryRepository(), catalog, logger))

	app := fiber.New()
	app.Use(devicetest.FakeAuth())
	h.RegisterProtectedRoutes(app)
	return app
}

func send(t *testing.T, app *fiber.App, method, target, deviceID, body string) (int, Cart) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	if deviceID != "" {
		req.Header.Set(devicetest.HeaderDeviceID, deviceID)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	var cart Cart
	if res.StatusCode == fiber.StatusOK {
		require.NoError(t, json.NewDecoder(res.Body).Decode(&cart))
	}
	return res.StatusCode, cart
}

func TestCartRoutes_Registered(t *testing.T) {
	app := makeAppWithCartHandler()
	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Method+" "+r.Path] = true
		}
	}
	require.True(t, routes["GET /api/v1/cart"])
	require.True(t, routes["DELETE /api/v1/cart"])
	require.True(t, routes["POST /api/v1/product/cart"])
}

func TestCart_AddAndTotals(t *testing.T) {
	app := makeAppWithCartHandler()
	dev := uuid.NewString()

	status, _ := send(t, app, "GET", "/api/v1/cart", "", "")
	require.Equal(t, fiber.StatusUnauthorized, status)

	status, cart := send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"1","size":"M"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, 1, cart.TotalQuantity)
	require.Equal(t, 4500, cart.TotalPrice)

	status, cart = send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"1","size":"M","quantity":2}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 3, cart.Items[0].Quantity)
	require.Equal(t, 13500, cart.Items[0].LineTotal)

	// another size is a separate line
	status, cart = send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"1","size":"L"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, cart.Items, 2)

	status, cart = send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"6","size":"2-3"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, 5, cart.TotalQuantity)
	require.Equal(t, 4500*4+2400, cart.TotalPrice)

	status, cart = send(t, app, "GET", "/api/v1/cart", dev, "")
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, []string{"M", "L", "2-3"}, []string{cart.Items[0].Size, cart.Items[1].Size, cart.Items[2].Size})
}

func TestCart_DecrementRemovesLine(t *testing.T) {
	app := makeAppWithCartHandler()
	dev := uuid.NewString()

	send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"3","size":"28","quantity":2}`)

	_, cart := send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"3","size":"28","quantity":-1}`)
	require.Equal(t, 1, cart.TotalQuantity)

	_, cart = send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"3","size":"28","quantity":-5}`)
	require.Empty(t, cart.Items)
	require.Equal(t, 0, cart.TotalPrice)

	// zero is a no-op that returns the cart
	status, cart := send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"3","size":"28","quantity":0}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Empty(t, cart.Items)
}

func TestCart_Errors(t *testing.T) {
	app := makeAppWithCartHandler()
	dev := uuid.NewString()

	status, _ := send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"1"}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, _ = send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"1","size":"XXL"}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, _ = send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"99","size":"M"}`)
	require.Equal(t, fiber.StatusNotFound, status)

	status, _ = send(t, app, "POST", "/api/v1/product/cart", dev, `{"size":"M"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestCart_Clear(t *testing.T) {
	app := makeAppWithCartHandler()
	dev := uuid.NewString()

	send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"2","size":"XL"}`)

	status, _ := send(t, app, "DELETE", "/api/v1/cart", dev, "")
	require.Equal(t, fiber.StatusNoContent, status)

	_, cart := send(t, app, "GET", "/api/v1/cart", dev, "")
	require.Empty(t, cart.Items)
	require.NotNil(t, cart.Items)
}

func TestCart_LineQuantityIsCapped(t *testing.T) {
	app := makeAppWithCartHandler()
	dev := uuid.NewString()

	status, _ := send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"1","size":"M","quantity":1000}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, cart := send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"1","size":"M","quantity":999}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, 999*4500, cart.TotalPrice)

	status, _ = send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"1","size":"M"}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, _ = send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"1","size":"M","quantity":9223372036854775807}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	_, cart = send(t, app, "GET", "/api/v1/cart", dev, "")
	require.Equal(t, 999, cart.TotalQuantity)

	// decrementing stays allowed at the cap
	status, cart = send(t, app, "POST", "/api/v1/product/cart", dev, `{"productId":"1","size":"M","quantity":-1}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, 998, cart.TotalQuantity)
}
