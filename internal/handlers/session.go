package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumatch/analyzer-api/internal/config"
)

const sessionLocalKey = "session_id"

// SessionMiddleware assigns an anonymous session cookie to first-time
// visitors and exposes the session ID to downstream handlers. History is
// scoped to this ID.
func SessionMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(cfg.Session.CookieName)
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     cfg.Session.CookieName,
				Value:    sessionID,
				MaxAge:   int(cfg.Session.MaxAge.Seconds()),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}

		c.Locals(sessionLocalKey, sessionID)
		return c.Next()
	}
}

func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(sessionLocalKey).(string); ok {
		return id
	}
	return ""
}
