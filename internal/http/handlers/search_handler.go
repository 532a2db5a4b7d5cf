package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stockpile/internal/domain"
	applog "stockpile/internal/log"
	"stockpile/internal/services"
	"stockpile/internal/validate"
)

type SearchHandler struct {
	Inv *services.InventoryService
}

// API backs the reactive search box: every keystroke re-queries the
// store. GET /api/v1/products?q=term; an empty term returns the full list.
func (h *SearchHandler) API(c *fiber.Ctx) error {
	q := validate.Q(c.Query("q"))
	products, err := h.Inv.SearchProducts(q)
	if err != nil {
		applog.Error(c, "search.fail", err, map[string]any{"q": q})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load products"})
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(fiber.Map{"q": q, "count": len(products), "products": products})
}
