package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"platemarket/internal/services"
)

const sidCookie = "sid"

// ensureSID returns the browser's session id, issuing a new cookie when the
// current one is missing or malformed.
func ensureSID(c *fiber.Ctx, secure bool) string {
	sid := utils.CopyString(c.Cookies(sidCookie))
	if _, err := uuid.Parse(sid); err != nil {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     sidCookie,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   secure,
			MaxAge:   60 * 60 * 24 * 365,
		})
	}
	return sid
}

// SessionMiddleware attaches the browser session to every request.
// secureCookie marks the sid cookie Secure; enable it behind TLS.
func SessionMiddleware(sessions *services.Sessions, secureCookie bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := ensureSID(c, secureCookie)
		c.Locals("sid", sid)
		c.Locals("session", sessions.Get(sid))
		return c.Next()
	}
}

// session returns the request's session; SessionMiddleware must run first.
func session(c *fiber.Ctx) *services.Session {
	sess, _ := c.Locals("session").(*services.Session)
	return sess
}
