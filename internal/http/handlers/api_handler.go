package handlers

import (
	"github.com/gofiber/fiber/v2"

	"platemarket/internal/domain"
	applog "platemarket/internal/log"
	"platemarket/internal/services"
	"platemarket/internal/validate"
)

// APIHandler exposes the same state as the pages as JSON under /api/v1.
type APIHandler struct {
	Catalog *services.CatalogService
}

type listingJSON struct {
	domain.Listing
	Favorite bool `json:"favorite"`
}

func withFavorites(ls []domain.Listing, sess *services.Session) []listingJSON {
	out := make([]listingJSON, 0, len(ls))
	for _, l := range ls {
		out = append(out, listingJSON{Listing: l, Favorite: sess.Favorites.IsFavorite(l.ID)})
	}
	return out
}

// GET /api/v1/listings
func (h *APIHandler) Listings(c *fiber.Ctx) error {
	f, key, errMsg := parseFilter(c)
	if errMsg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}
	view := h.Catalog.View(f, key)
	return c.JSON(fiber.Map{
		"filter":   f,
		"sort":     key,
		"count":    len(view),
		"listings": withFavorites(view, session(c)),
	})
}

// GET /api/v1/listings/:id
func (h *APIHandler) Listing(c *fiber.Ctx) error {
	l, ok := h.Catalog.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
	}
	return c.JSON(listingJSON{Listing: l, Favorite: session(c).Favorites.IsFavorite(l.ID)})
}

// GET /api/v1/regions
func (h *APIHandler) Regions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"regions": h.Catalog.Regions()})
}

// GET /api/v1/favorites
func (h *APIHandler) Favorites(c *fiber.Ctx) error {
	sess := session(c)
	return c.JSON(fiber.Map{
		"ids":      sess.Favorites.IDs(),
		"listings": withFavorites(h.Catalog.Favorites(sess.Favorites), sess),
	})
}

// POST /api/v1/favorites/:id/toggle
func (h *APIHandler) ToggleFavorite(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	sess := session(c)
	set := sess.Favorites.Toggle(id)
	applog.Audit(c, "favorites.toggle", map[string]any{"listing": id, "count": len(set)})
	return c.JSON(fiber.Map{"ids": set, "favorite": sess.Favorites.IsFavorite(id)})
}

// GET /api/v1/notifications
func (h *APIHandler) Notifications(c *fiber.Ctx) error {
	items := session(c).Notices.Items()
	return c.JSON(fiber.Map{"count": len(items), "notifications": items})
}

// DELETE /api/v1/notifications
func (h *APIHandler) ClearNotifications(c *fiber.Ctx) error {
	session(c).Notices.ClearAll()
	applog.Info(c, "notifications.clear", nil)
	return c.SendStatus(fiber.StatusNoContent)
}
