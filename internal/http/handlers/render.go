package handlers

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// One-shot flash notice set by a previous redirect
	if msg := c.Cookies("flash"); msg != "" {
		if dec, err := url.QueryUnescape(msg); err == nil {
			data["Flash"] = dec
		}
		kind := c.Cookies("flash_kind")
		if kind == "" {
			kind = "info"
		}
		data["FlashKind"] = kind
		clearFlash(c)
	}
	// Pick up the token the CSRF middleware put into Locals
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}

// setFlash queues a transient notice for the next rendered page.
func setFlash(c *fiber.Ctx, kind, msg string) {
	c.Cookie(&fiber.Cookie{
		Name: "flash", Value: url.QueryEscape(msg),
		Path: "/", SameSite: "Lax", Expires: time.Now().Add(time.Minute),
	})
	c.Cookie(&fiber.Cookie{
		Name: "flash_kind", Value: kind,
		Path: "/", SameSite: "Lax", Expires: time.Now().Add(time.Minute),
	})
}

func clearFlash(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{Name: "flash", Value: "", Path: "/", Expires: time.Now().Add(-time.Hour)})
	c.Cookie(&fiber.Cookie{Name: "flash_kind", Value: "", Path: "/", Expires: time.Now().Add(-time.Hour)})
}
