package handlers

import (
	"github.com/gocarina/gocsv"
	"github.com/gofiber/fiber/v2"

	applog "stockpile/internal/log"
	"stockpile/internal/services"
	"stockpile/internal/validate"
)

type ExportHandler struct {
	Inv *services.InventoryService
}

// CSV streams the current (optionally filtered) product list as a CSV
// download. GET /products/export.csv?q=term
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	q := validate.Q(c.Query("q"))
	products, err := h.Inv.SearchProducts(q)
	if err != nil {
		applog.Error(c, "export.fail", err, map[string]any{"q": q})
		return c.Status(fiber.StatusInternalServerError).SendString("could not export products")
	}

	out, err := gocsv.MarshalString(&products)
	if err != nil {
		applog.Error(c, "export.marshal.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("could not export products")
	}

	applog.Info(c, "export.csv", map[string]any{"rows": len(products), "q": q})
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.SendString(out)
}
