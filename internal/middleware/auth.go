package middleware

import (
	"strings"

	"streaming-catalog/internal/services"
	"streaming-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// LocalsUsername is the locals key holding the authenticated identity.
const LocalsUsername = "username"

// Protected validates the bearer token and stores the bound identity in the
// request locals. Missing, malformed or expired tokens short-circuit with 401
// before the handler runs.
func Protected(tokens *services.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := extractBearerToken(c)
		if tokenStr == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Token de acesso não fornecido")
		}

		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, services.ErrInvalidToken.Error())
		}

		c.Locals(LocalsUsername, claims.Username)
		return c.Next()
	}
}

// AdminOnly rejects any identity other than the configured admin with 403.
// Must run after Protected.
func AdminOnly(tokens *services.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, _ := c.Locals(LocalsUsername).(string)
		if !tokens.IsAdmin(username) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Acesso negado. Apenas administradores.")
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
