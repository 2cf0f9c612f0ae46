package handlers

import (
	"errors"
	"fmt"

	"streaming-catalog/internal/middleware"
	"streaming-catalog/internal/services"
	"streaming-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	tokens *services.TokenManager
	logger *logrus.Logger
}

func NewAuthHandler(tokens *services.TokenManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		tokens: tokens,
		logger: logger,
	}
}

// Login godoc
// @Summary Authenticate as admin
// @Description Exchanges admin credentials for a signed 24-hour access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados não fornecidos")
	}

	if req.Username == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username e password são obrigatórios")
	}

	token, err := h.tokens.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, services.ErrInvalidCredentials.Error())
		}
		h.logger.WithError(err).Error("Failed to issue access token")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"message":      "Login realizado com sucesso",
		"expires_in":   fmt.Sprintf("%d horas", int(h.tokens.TTL().Hours())),
	})
}

// Verify godoc
// @Summary Verify the current token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	username, _ := c.Locals(middleware.LocalsUsername).(string)
	return c.JSON(fiber.Map{
		"valid":   true,
		"user":    username,
		"message": "Token válido",
	})
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless, so logout only confirms the token was still valid
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	username, _ := c.Locals(middleware.LocalsUsername).(string)
	return utils.MessageResponse(c, fiber.StatusOK, fmt.Sprintf("Logout realizado com sucesso para %s", username))
}
