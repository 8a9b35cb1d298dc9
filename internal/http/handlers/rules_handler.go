package handlers

import (
	"github.com/gofiber/fiber/v2"

	"platemarket/internal/domain"
)

type RulesHandler struct{}

// GET /rules
func (h *RulesHandler) Rules(c *fiber.Ctx) error {
	return render(c, "rules", fiber.Map{"Tab": "rules", "Rules": domain.Rules})
}
