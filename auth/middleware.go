package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the Locals key the middleware stores the caller's id
// under.
const UserIDKey = "x-user-id"

// JwtAuthMiddleware guards a route with a Bearer access token.
func JwtAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header format must be Bearer {token}",
			})
		}

		userID, err := ExtractIDFromToken(parts[1], secret)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authorized or invalid token",
			})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
