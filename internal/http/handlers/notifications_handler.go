package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "platemarket/internal/log"
)

type NotificationsHandler struct{}

// POST /notifications/clear
func (h *NotificationsHandler) Clear(c *fiber.Ctx) error {
	session(c).Notices.ClearAll()
	applog.Info(c, "notifications.clear", nil)
	return c.Redirect(safeBack(c, "/"))
}
