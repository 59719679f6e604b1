package favorite

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/kg-market-backend/internal/device"
	"github.com/wichananm65/kg-market-backend/internal/product"
)

// Handler delegates favorite operations to the favorite service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/favorites", h.getFavorites)
	app.Post("/api/v1/favorites", h.addFavorite)
	app.Delete("/api/v1/favorites", h.removeFavorite)
}

type favoriteRequest struct {
	ProductID string `json:"productId"`
}

func parseFavoriteRequest(c *fiber.Ctx) (string, error) {
	payload := new(favoriteRequest)
	if err := c.BodyParser(payload); err != nil {
		return "", err
	}
	id := strings.TrimSpace(payload.ProductID)
	if id == "" {
		return "", errors.New("invalid productId")
	}
	return id, nil
}

func (h *Handler) addFavorite(c *fiber.Ctx) error {
	productID, err := parseFavoriteRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	deviceID, err := device.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	favs, err := h.service.AddFavorite(deviceID, productID)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case errors.Is(err, ErrAlreadyFavorite):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "product already in favorites"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"productId": productID, "favoriteProductIds": favs})
}

func (h *Handler) removeFavorite(c *fiber.Ctx) error {
	productID, err := parseFavoriteRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	deviceID, err := device.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	favs, err := h.service.RemoveFavorite(deviceID, productID)
	if err != nil {
		if errors.Is(err, ErrNotFavorite) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "product not in favorites"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"productId": productID, "favoriteProductIds": favs})
}

func (h *Handler) getFavorites(c *fiber.Ctx) error {
	deviceID, err := device.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	favs, err := h.service.GetFavorites(deviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(favs)
}
