package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wedsnap/wedsnap-backend/internal/models"
	jwtPkg "github.com/wedsnap/wedsnap-backend/pkg/jwt"
)

// AuthRequired gates admin-only routes. Missing or malformed credentials
// are 401; a token that fails verification (bad signature, expired) is 403.
func AuthRequired(jwtSecret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Access token required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Invalid or expired token"))
		}

		adminIDFloat, ok := claims["admin_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Invalid or expired token"))
		}
		username, ok := claims["username"].(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Invalid or expired token"))
		}

		c.Locals("adminID", uint(adminIDFloat))
		c.Locals("adminUsername", username)

		return c.Next()
	}
}
