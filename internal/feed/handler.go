package feed

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/kg-market-backend/internal/device"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/feed", h.listFeed)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/feed/session", h.openSession)
	app.Get("/api/v1/feed/session", h.getSession)
	app.Delete("/api/v1/feed/session", h.closeSession)
	app.Post("/api/v1/feed/session/visibility", h.reportVisibility)
	app.Post("/api/v1/feed/session/focus", h.setFocus)
	app.Post("/api/v1/feed/:id/like", h.toggleLike)
}

type visibilityRequest struct {
	ViewableItems []viewToken `json:"viewableItems"`
}

type viewToken struct {
	Index          *int     `json:"index"`
	VisiblePercent *float64 `json:"visiblePercent"`
}

type focusRequest struct {
	Focused *bool `json:"focused"`
}

func (h *Handler) listFeed(c *fiber.Ctx) error {
	entries, err := h.service.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(entries)
}

func (h *Handler) openSession(c *fiber.Ctx) error {
	deviceID, err := device.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	state, err := h.service.OpenSession(deviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(state)
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	deviceID, err := device.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	state, err := h.service.Session(deviceID)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(state)
}

func (h *Handler) closeSession(c *fiber.Ctx) error {
	deviceID, err := device.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if err := h.service.CloseSession(deviceID); err != nil {
		return sessionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) reportVisibility(c *fiber.Ctx) error {
	deviceID, err := device.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(visibilityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	report := make(Report, 0, len(payload.ViewableItems))
	for _, it := range payload.ViewableItems {
		if it.Index == nil || it.VisiblePercent == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "index and visiblePercent are required"})
		}
		report = append(report, ViewToken{Index: *it.Index, VisiblePercent: *it.VisiblePercent})
	}
	state, err := h.service.ReportVisibility(deviceID, report)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(state)
}

func (h *Handler) setFocus(c *fiber.Ctx) error {
	deviceID, err := device.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(focusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Focused == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "focused is required"})
	}
	state, err := h.service.SetFocus(deviceID, *payload.Focused)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(state)
}

func (h *Handler) toggleLike(c *fiber.Ctx) error {
	deviceID, err := device.GetDeviceIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	res, err := h.service.ToggleLike(deviceID, c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "feed entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(res)
}

func sessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "feed session not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}
