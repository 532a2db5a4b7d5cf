package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"stockpile/internal/domain"
	applog "stockpile/internal/log"
	"stockpile/internal/services"
	"stockpile/internal/validate"
)

type ProductHandler struct {
	Inv *services.InventoryService
}

// draft carries the raw form values so a rejected submit can re-render
// the form exactly as the user typed it.
type draft struct {
	Name     string
	Category string
	Price    string
	Quantity string
}

func draftFromForm(c *fiber.Ctx) draft {
	return draft{
		Name:     c.FormValue("name"),
		Category: c.FormValue("category"),
		Price:    c.FormValue("price"),
		Quantity: c.FormValue("quantity"),
	}
}

func draftFromProduct(p domain.Product) draft {
	return draft{
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price.String(),
		Quantity: strconv.Itoa(p.Quantity),
	}
}

// parseDraft validates all four fields and reports every problem at
// once, keyed by field name for inline display.
func parseDraft(d draft) (name, category string, price decimal.Decimal, quantity int, errs map[string]string) {
	errs = map[string]string{}
	var ok bool
	if name, ok = validate.Name(d.Name); !ok {
		errs["name"] = "Please enter a product name"
	}
	if category, ok = validate.Category(d.Category); !ok {
		errs["category"] = "Please enter a category"
	}
	if price, ok = validate.Price(d.Price); !ok {
		errs["price"] = "Price must be a number greater than 0"
	}
	if quantity, ok = validate.Quantity(d.Quantity); !ok {
		errs["quantity"] = "Quantity must be a whole number of 0 or more"
	}
	if len(errs) == 0 {
		errs = nil
	}
	return
}

// GET /
func (h *ProductHandler) Index(c *fiber.Ctx) error {
	q := validate.Q(c.Query("q"))
	products, err := h.Inv.SearchProducts(q)
	if err != nil {
		applog.Error(c, "product.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products. Please retry."})
	}

	data := fiber.Map{"Products": products, "Count": len(products), "Q": q}

	// ?edit=<id> switches the form into edit mode, prefilled from the store.
	if rawEdit := c.Query("edit"); rawEdit != "" {
		id, ok := validate.ID(rawEdit)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "edit", "value": rawEdit})
			setFlash(c, "error", "Invalid product reference.")
			return c.Redirect("/")
		}
		p, err := h.Inv.GetProduct(id)
		if errors.Is(err, domain.ErrNotFound) {
			setFlash(c, "error", "That product no longer exists.")
			return c.Redirect("/")
		}
		if err != nil {
			applog.Error(c, "product.get.fail", err, map[string]any{"id": id})
			setFlash(c, "error", "Could not load that product.")
			return c.Redirect("/")
		}
		data["Edit"] = p
		data["Draft"] = draftFromProduct(p)
	}

	return render(c, "index", data)
}

// renderForm re-renders the index page with the draft and its field
// errors, reloading the full list so the table stays truthful.
func (h *ProductHandler) renderForm(c *fiber.Ctx, status int, d draft, errs map[string]string, editID int64) error {
	products, err := h.Inv.ListProducts()
	if err != nil {
		applog.Error(c, "product.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products. Please retry."})
	}
	data := fiber.Map{
		"Products": products, "Count": len(products), "Q": "",
		"Draft": d, "Errors": errs,
	}
	if editID > 0 {
		data["Edit"] = domain.Product{ID: editID, Name: d.Name}
	}
	return render(c.Status(status), "index", data)
}

// POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	d := draftFromForm(c)
	name, category, price, quantity, errs := parseDraft(d)
	if errs != nil {
		applog.Info(c, "product.create.invalid", map[string]any{"fields": errs})
		return h.renderForm(c, fiber.StatusUnprocessableEntity, d, errs, 0)
	}

	id, err := h.Inv.CreateProduct(name, category, price, quantity)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return h.renderForm(c, fiber.StatusUnprocessableEntity, d, map[string]string{ve.Field: ve.Reason}, 0)
		}
		applog.Error(c, "product.create.fail", err, nil)
		setFlash(c, "error", "Could not add the product. Please try again.")
		return c.Redirect("/")
	}

	applog.Audit(c, "product.create", map[string]any{"id": id, "name": name})
	setFlash(c, "success", "Product added.")
	return c.Redirect("/")
}

// POST /products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		setFlash(c, "error", "Invalid product reference.")
		return c.Redirect("/")
	}

	d := draftFromForm(c)
	name, category, price, quantity, errs := parseDraft(d)
	if errs != nil {
		applog.Info(c, "product.update.invalid", map[string]any{"id": id, "fields": errs})
		return h.renderForm(c, fiber.StatusUnprocessableEntity, d, errs, id)
	}

	err := h.Inv.UpdateProduct(id, name, category, price, quantity)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		setFlash(c, "error", "That product no longer exists.")
		return c.Redirect("/")
	case err != nil:
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return h.renderForm(c, fiber.StatusUnprocessableEntity, d, map[string]string{ve.Field: ve.Reason}, id)
		}
		applog.Error(c, "product.update.fail", err, map[string]any{"id": id})
		setFlash(c, "error", "Could not update the product. Please try again.")
		return c.Redirect("/")
	}

	applog.Audit(c, "product.update", map[string]any{"id": id, "name": name})
	setFlash(c, "success", "Product updated.")
	return c.Redirect("/")
}

// GET /products/:id/delete shows the explicit confirm step. No store
// call happens until the form on this page is submitted.
func (h *ProductHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		setFlash(c, "error", "Invalid product reference.")
		return c.Redirect("/")
	}
	p, err := h.Inv.GetProduct(id)
	if errors.Is(err, domain.ErrNotFound) {
		setFlash(c, "error", "That product no longer exists.")
		return c.Redirect("/")
	}
	if err != nil {
		applog.Error(c, "product.get.fail", err, map[string]any{"id": id})
		setFlash(c, "error", "Could not load that product.")
		return c.Redirect("/")
	}
	return render(c, "confirm_delete", fiber.Map{"P": p})
}

// POST /products/:id/delete
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		setFlash(c, "error", "Invalid product reference.")
		return c.Redirect("/")
	}

	err := h.Inv.DeleteProduct(id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		setFlash(c, "error", "That product no longer exists.")
		return c.Redirect("/")
	case err != nil:
		applog.Error(c, "product.delete.fail", err, map[string]any{"id": id})
		setFlash(c, "error", "Could not delete the product. Please try again.")
		return c.Redirect("/")
	}

	applog.Audit(c, "product.delete", map[string]any{"id": id})
	setFlash(c, "success", "Product deleted.")
	return c.Redirect("/")
}
