package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "platemarket/internal/log"
)

// FriendlyErrorMessage is all a user sees of an unexpected failure.
const FriendlyErrorMessage = "Что-то пошло не так. Попробуйте ещё раз."

// ErrorHandler logs the error and shows a friendly page without internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	applog.Error(c, "server.error", err, nil)
	if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
		"Message": FriendlyErrorMessage,
	}); rerr != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(FriendlyErrorMessage)
	}
	return nil
}

// CSRFErrorHandler rejects a form post whose token is missing or stale.
func CSRFErrorHandler(c *fiber.Ctx, err error) error {
	applog.Security(c, "csrf.fail", map[string]any{"path": c.Path()})
	return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Проверка безопасности не пройдена. Обновите страницу."})
}
