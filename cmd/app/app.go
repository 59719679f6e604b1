package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wichananm65/kg-market-backend/internal/device"
)

type appOptions struct {
	accessLog bool
}

func newApp(h handlers, opts appOptions) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "kgmarket"})
	app.Use(recover.New())
	if opts.accessLog {
		app.Use(fiberlogger.New())
	}
	setupCORS(app)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	h.device.RegisterPublicRoutes(app)
	h.feed.RegisterPublicRoutes(app)
	h.shop.RegisterPublicRoutes(app)
	h.mall.RegisterPublicRoutes(app)
	// static /api/v1/product/* paths before the product :id route
	h.banner.RegisterPublicRoutes(app)
	h.category.RegisterPublicRoutes(app)
	h.product.RegisterPublicRoutes(app)

	app.Use(device.Middleware(h.signingKey))

	h.feed.RegisterProtectedRoutes(app)
	h.favorite.RegisterProtectedRoutes(app)
	h.cart.RegisterProtectedRoutes(app)
	return app
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}
