package jwt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// NewAuthMiddleware returns a Fiber middleware that validates a
// "Bearer <JWT>" Authorization header. On success the resolved Identity
// is stored in the request locals for downstream handlers.
func NewAuthMiddleware(gen *Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var tokenStr string
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "Authorization token missing"})
		}
		ident, err := gen.Parse(tokenStr)
		if err != nil {
			if errors.Is(err, ErrNoSecret) {
				return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "JWT secret not configured"})
			}
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals(identityKey, ident)
		return c.Next()
	}
}

// IdentityFrom returns the Identity attached by NewAuthMiddleware.
func IdentityFrom(c *fiber.Ctx) (Identity, bool) {
	ident, ok := c.Locals(identityKey).(Identity)
	return ident, ok
}
