package handlers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"platemarket/internal/domain"
	"platemarket/internal/log"
	"platemarket/internal/services"
	"platemarket/internal/validate"
)

type ListingHandler struct {
	Catalog *services.CatalogService
}

// parseFilter reads q/min/max/region/sort. Bad text or region is reported
// through errMsg; the rest falls back to defaults.
func parseFilter(c *fiber.Ctx) (f domain.Filter, key domain.SortKey, errMsg string) {
	f = domain.DefaultFilter()
	key = validate.Sort(c.Query("sort"))
	f.PriceMin, f.PriceMax = validate.PriceRange(c.Query("min"), c.Query("max"))

	if q, ok := validate.Q(c.Query("q")); ok {
		f.QueryText = q
	} else {
		log.Security(c, "validation.fail", map[string]any{"field": "q"})
		errMsg = "Введите номер или код региона (буквы и цифры)"
	}
	if r, ok := validate.Region(c.Query("region")); ok {
		f.Region = r
	} else {
		log.Security(c, "validation.fail", map[string]any{"field": "region"})
		errMsg = "Неизвестный регион"
	}
	return f, key, errMsg
}

// filterQuery rebuilds the query string so forms can redirect back to the same view.
func filterQuery(f domain.Filter, key domain.SortKey) string {
	v := url.Values{}
	if f.QueryText != "" {
		v.Set("q", f.QueryText)
	}
	if f.PriceMin != domain.PriceFloor {
		v.Set("min", strconv.FormatInt(f.PriceMin, 10))
	}
	if f.PriceMax != domain.PriceCeil {
		v.Set("max", strconv.FormatInt(f.PriceMax, 10))
	}
	if f.Region != domain.AllRegions {
		v.Set("region", f.Region)
	}
	if key != domain.DefaultSort {
		v.Set("sort", string(key))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func favoriteSet(sess *services.Session) map[string]bool {
	out := map[string]bool{}
	for _, id := range sess.Favorites.IDs() {
		out[id] = true
	}
	return out
}

func (h *ListingHandler) page(c *fiber.Ctx, tab string, showFilters bool) error {
	sess := session(c)
	f, key, errMsg := parseFilter(c)
	status := fiber.StatusOK
	if errMsg != "" {
		status = fiber.StatusBadRequest
	}
	listings := h.Catalog.View(f, key)
	return render(c.Status(status), "home", fiber.Map{
		"Tab":         tab,
		"Listings":    listings,
		"Count":       len(listings),
		"Filter":      f,
		"Sort":        string(key),
		"SortOptions": domain.SortOptions,
		"Regions":     h.Catalog.Regions(),
		"PriceFloor":  domain.PriceFloor,
		"PriceCeil":   domain.PriceCeil,
		"PriceStep":   domain.PriceStep,
		"ShowFilters": showFilters || !f.IsDefault() || key != domain.DefaultSort,
		"Favs":        favoriteSet(sess),
		"Notices":     sess.Notices.Preview(),
		"Back":        c.OriginalURL(),
		"Err":         errMsg,
	})
}

// GET /
func (h *ListingHandler) Home(c *fiber.Ctx) error { return h.page(c, "home", false) }

// GET /search
func (h *ListingHandler) Search(c *fiber.Ctx) error { return h.page(c, "search", true) }

// GET /reset
func (h *ListingHandler) Reset(c *fiber.Ctx) error {
	log.Info(c, "filters.reset", nil)
	return c.Redirect("/search" + filterQuery(domain.DefaultFilter(), domain.DefaultSort))
}

// GET /listing/:id
func (h *ListingHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "listing"})
		return notFound(c, "Объявление не найдено")
	}
	l, ok := h.Catalog.Get(id)
	if !ok {
		return notFound(c, "Объявление не найдено")
	}
	sess := session(c)
	return render(c, "detail", fiber.Map{
		"L":          l,
		"IsFavorite": sess.Favorites.IsFavorite(l.ID),
		"Back":       c.OriginalURL(),
	})
}
