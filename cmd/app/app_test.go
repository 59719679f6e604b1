package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/kg-market-backend/internal/device"
	"github.com/wichananm65/kg-market-backend/internal/logging"
	"github.com/wichananm65/kg-market-backend/internal/media"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	h, err := newHandlers(newRepositories(nil), media.Passthrough{}, 50, []byte("test-secret"), logging.Discard())
	require.NoError(t, err)
	return newApp(h, appOptions{})
}

func issueToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("POST", "/api/v1/device", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)
	var tok device.Token
	require.NoError(t, json.NewDecoder(res.Body).Decode(&tok))
	return tok.Token
}

func TestApp_PublicRoutes(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/healthz",
		"/api/v1/products",
		"/api/v1/product/filters",
		"/api/v1/product/recommended",
		"/api/v1/product/category",
		"/api/v1/product/banner",
		"/api/v1/product/1",
		"/api/v1/feed",
		"/api/v1/shopping-mall",
		"/api/v1/shopping-mall/1",
		"/api/v1/shops",
		"/api/v1/shops/1",
	} {
		res, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode, path)
	}
}

func TestApp_StaticProductPathsWinOverID(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/product/category", nil))
	require.NoError(t, err)
	var cats []map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&cats))
	require.Len(t, cats, 6)
	require.Contains(t, cats[0], "icon")
}

func TestApp_ProtectedRoutesNeedDeviceToken(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/cart", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	token := issueToken(t, app)

	req := httptest.NewRequest("POST", "/api/v1/product/cart", strings.NewReader(`{"productId":"2","size":"L"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	res, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	req = httptest.NewRequest("GET", "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var body struct {
		TotalPrice int `json:"totalPrice"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, 8900, body.TotalPrice)
}

func TestApp_FeedSessionWithRealToken(t *testing.T) {
	app := newTestApp(t)
	token := issueToken(t, app)

	post := func(path, body string) int {
		req := httptest.NewRequest("POST", path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := app.Test(req)
		require.NoError(t, err)
		return res.StatusCode
	}

	require.Equal(t, fiber.StatusNotFound, post("/api/v1/feed/session/focus", `{"focused":true}`))
	require.Equal(t, fiber.StatusOK, post("/api/v1/feed/session", ``))
	require.Equal(t, fiber.StatusOK, post("/api/v1/feed/session/focus", `{"focused":true}`))
	require.Equal(t, fiber.StatusOK, post("/api/v1/feed/session/visibility", `{"viewableItems":[{"index":2,"visiblePercent":80}]}`))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"KG_MARKET_ADDR", "DATABASE_URL", "JWT_SECRET", "FEED_VISIBILITY_THRESHOLD", "MEDIA_BUCKET", "MEDIA_URL_TTL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSearchCmd(t *testing.T) {
	clearEnv(t)

	out, err := execute(t, "", "search", "куртка")
	require.NoError(t, err)
	require.Contains(t, out, "Куртка зимняя")
	require.Contains(t, out, "1 product(s)")

	out, err = execute(t, "", "search", "--category", "Женщинам", "--max-price", "4000")
	require.NoError(t, err)
	require.Contains(t, out, "Джинсы классические")
	require.Contains(t, out, "Свитер шерстяной")
	require.NotContains(t, out, "Платье вечернее")

	out, err = execute(t, "", "search", "--sizes", "XXXL")
	require.NoError(t, err)
	require.Contains(t, out, "no products found")
}

func TestFeedSimulateCmd(t *testing.T) {
	script := strings.Join([]string{
		"# open the feed",
		"focus on",
		"visible 1:30 2:80",
		"visible",
		"entries 2",
		"visible 0:90",
		"focus off",
	}, "\n")

	out, err := execute(t, script, "feed", "simulate")
	require.NoError(t, err)

	want := []string{
		"> focus on", "  play  1",
		"> visible 1:30 2:80", "  pause 1", "  play  3", "  active=2 focused=true",
		"> entries 2", "  pause 3", "  active=2 (none) focused=true",
		"> visible 0:90", "  play  1",
		"> focus off", "  pause 1",
	}
	last := -1
	for _, w := range want {
		i := strings.Index(out[last+1:], w)
		require.GreaterOrEqual(t, i, 0, "missing %q after offset %d in:\n%s", w, last, out)
		last += 1 + i
	}
}

func TestFeedSimulateCmd_RejectsBadInput(t *testing.T) {
	_, err := execute(t, "visible 2-80\n", "feed", "simulate")
	require.Error(t, err)

	_, err = execute(t, "jump 3\n", "feed", "simulate")
	require.Error(t, err)

	_, err = execute(t, "", "feed", "simulate", "--threshold", "0")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "kgmarket version "))
}
