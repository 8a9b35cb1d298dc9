package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "platemarket/internal/log"
	"platemarket/internal/services"
	"platemarket/internal/validate"
)

type FavoritesHandler struct {
	Catalog *services.CatalogService
}

// safeBack only allows local paths as redirect targets.
func safeBack(c *fiber.Ctx, fallback string) string {
	back := c.FormValue("back")
	if back == "" || !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		return fallback
	}
	return back
}

// GET /favorites
func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	sess := session(c)
	listings := h.Catalog.Favorites(sess.Favorites)
	return render(c, "favorites", fiber.Map{
		"Tab":      "favorites",
		"Listings": listings,
		"Count":    len(listings),
		"Favs":     favoriteSet(sess),
		"Back":     "/favorites",
	})
}

// POST /favorites/toggle
func (h *FavoritesHandler) Toggle(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return c.Status(fiber.StatusBadRequest).SendString("missing listing id")
	}
	set := session(c).Favorites.Toggle(id)
	applog.Audit(c, "favorites.toggle", map[string]any{"listing": id, "count": len(set)})
	return c.Redirect(safeBack(c, "/"))
}
