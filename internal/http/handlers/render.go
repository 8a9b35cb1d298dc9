package handlers

import (
	"github.com/gofiber/fiber/v2"

	"platemarket/internal/domain"
	"platemarket/internal/services"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Header badges need the session's counters on every page
	if sess, ok := c.Locals("session").(*services.Session); ok && sess != nil {
		data["FavCount"] = sess.Favorites.Len()
		data["NoticeCount"] = sess.Notices.Len()
	}
	data["Contacts"] = domain.SupportContacts
	if _, ok := data["Tab"]; !ok {
		data["Tab"] = ""
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		// Fall back to the cookie so hidden fields are never empty
		tok = c.Cookies("csrf_")
	}
	data["CSRFToken"] = tok
	return c.Render(tmpl, data)
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": msg})
}
