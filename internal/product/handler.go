package product

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.searchProducts)
	app.Get("/api/v1/product/filters", h.getFilters)
	app.Get("/api/v1/product/recommended", h.getRecommended)
	app.Get("/api/v1/product/:id", h.getProduct)
}

func (h *Handler) searchProducts(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	products, err := h.service.Search(c.Query("q"), criteria)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getFilters(c *fiber.Ctx) error {
	meta, err := h.service.Filters()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(meta)
}

func (h *Handler) getRecommended(c *fiber.Ctx) error {
	// support pagination: ?limit=12&offset=0
	limit := 0
	offset := 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}
	items, err := h.service.Recommended(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(p)
}

// parseCriteria reads the filter query parameters. The "all" category chip
// is the same as sending no category.
func parseCriteria(c *fiber.Ctx) (FilterCriteria, error) {
	var criteria FilterCriteria

	if cat := strings.TrimSpace(c.Query("category")); cat != "" && cat != AllCategories {
		criteria.Category = ptrString(cat)
	}
	if v := c.Query("minPrice"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return FilterCriteria{}, errors.New("minPrice must be an integer")
		}
		criteria.MinPrice = &n
	}
	if v := c.Query("maxPrice"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return FilterCriteria{}, errors.New("maxPrice must be an integer")
		}
		criteria.MaxPrice = &n
	}
	criteria.Sizes = splitList(c.Query("sizes"))
	criteria.Brands = splitList(c.Query("brands"))
	return criteria, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
