package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/authsrv/internal/config"
	"github.com/example/authsrv/internal/utils"
)

const userContextKey = "currentUserID"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// AuthMiddleware validates the session cookie and loads the authenticated
// user ID into context. Rejections keep the uniform response shape: the
// status stays 200 and failure is conveyed in the body.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookieName)
		if tokenString == "" {
			return c.JSON(fiber.Map{"success": false, "message": "Not authorized. Login again."})
		}

		userID, err := utils.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			return c.JSON(fiber.Map{"success": false, "message": "Not authorized. Login again."})
		}

		c.Locals(userContextKey, userID)
		return c.Next()
	}
}

// GetCurrentUserID extracts the authenticated user ID from context.
func GetCurrentUserID(c *fiber.Ctx) (string, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return "", false
	}

	if id, ok := value.(string); ok && id != "" {
		return id, true
	}

	return "", false
}
