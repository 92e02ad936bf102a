package middleware

import (
	"log"
	"strings"

	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// AuthRequired is a Fiber middleware that checks for a valid bearer
// token and stores the decoded identity in the request context. A
// missing or invalid credential is rejected with 422 before any handler
// runs; that status is part of the published API contract.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Unauthorized! Please input the token you obtained before!",
			})
		}

		identity, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Unauthorized! Please input the token you obtained before!",
			})
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// Identity returns the authenticated principal stored by AuthRequired,
// or nil when the route is not behind it.
func Identity(c *fiber.Ctx) *services.Identity {
	identity, _ := c.Locals(identityKey).(*services.Identity)
	return identity
}
