package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"platemarket/internal/domain"
	applog "platemarket/internal/log"
	"platemarket/internal/services"
	"platemarket/internal/validate"
)

type SubmissionHandler struct {
	Submit *services.SubmissionService
}

var fieldLabels = map[string]string{
	"number":      "Номер автомобиля",
	"region":      "Код региона",
	"price":       "Цена",
	"seller":      "Ваше имя",
	"phone":       "Телефон",
	"description": "Описание",
}

// GET /add
func (h *SubmissionHandler) Form(c *fiber.Ctx) error {
	return render(c, "add", fiber.Map{"Tab": "add", "Draft": domain.Draft{}, "Sent": c.Query("sent") == "1"})
}

func draftFromForm(c *fiber.Ctx) (domain.Draft, string) {
	d := domain.Draft{
		Number:      c.FormValue("number"),
		Region:      c.FormValue("region"),
		Price:       c.FormValue("price"),
		Seller:      c.FormValue("seller"),
		Phone:       c.FormValue("phone"),
		Description: c.FormValue("description"),
	}
	limits := []struct {
		name string
		v    *string
		max  int
	}{
		{"number", &d.Number, 12},
		{"region", &d.Region, 3},
		{"price", &d.Price, 9},
		{"seller", &d.Seller, 60},
		{"phone", &d.Phone, 25},
	}
	for _, f := range limits {
		s, ok := validate.Text(*f.v, f.max)
		if !ok {
			return d, f.name
		}
		*f.v = s
	}
	desc, ok := validate.Optional(d.Description, 1000)
	if !ok {
		return d, "description"
	}
	d.Description = desc
	return d, ""
}

// POST /add
func (h *SubmissionHandler) Create(c *fiber.Ctx) error {
	d, bad := draftFromForm(c)
	if bad == "" {
		_, err := h.Submit.Submit(c.Locals("sid").(string), d, session(c).Notices)
		if err != nil {
			var fe *services.FieldError
			if !errors.As(err, &fe) {
				applog.Error(c, "submission.fail", err, nil)
				return err
			}
			bad = fe.Field
		}
	}
	if bad != "" {
		applog.Security(c, "validation.fail", map[string]any{"field": bad})
		// keep what the user typed so they can correct it
		return render(c.Status(fiber.StatusBadRequest), "add", fiber.Map{
			"Tab":   "add",
			"Draft": d,
			"Err":   "Проверьте поле «" + fieldLabels[bad] + "»",
		})
	}
	applog.Audit(c, "submission.accepted", map[string]any{"number": d.Number, "region": d.Region})
	return c.Redirect("/add?sent=1")
}
