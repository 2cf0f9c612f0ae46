package handlers

import (
	"strconv"

	"streaming-catalog/internal/models"
	"streaming-catalog/internal/services"
	"streaming-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type StreamingHandler struct {
	service services.StreamingService
	logger  *logrus.Logger
}

func NewStreamingHandler(service services.StreamingService, logger *logrus.Logger) *StreamingHandler {
	return &StreamingHandler{
		service: service,
		logger:  logger,
	}
}

// GetStreamings godoc
// @Summary List streaming platforms
// @Tags streamings
// @Produce json
// @Param active_only query bool false "Only active platforms" default(true)
// @Success 200 {array} models.StreamingPlatform
// @Failure 500 {object} map[string]string
// @Router /streamings [get]
func (h *StreamingHandler) GetStreamings(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active_only", true)

	platforms, err := h.service.GetStreamings(c.Context(), activeOnly)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list streaming platforms")
		return mapServiceError(c, err)
	}

	if platforms == nil {
		platforms = make([]models.StreamingPlatform, 0)
	}
	return c.JSON(platforms)
}

// CreateStreaming godoc
// @Summary Create a streaming platform
// @Tags streamings
// @Accept json
// @Produce json
// @Param streaming body StreamingCreateRequest true "Platform to create"
// @Success 201 {object} models.StreamingPlatform
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /streamings [post]
func (h *StreamingHandler) CreateStreaming(c *fiber.Ctx) error {
	var req StreamingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados não fornecidos")
	}

	platform := &models.StreamingPlatform{
		Name:    req.Name,
		LogoURL: req.LogoURL,
		Color:   req.Color,
		Active:  true,
	}
	if req.Active != nil {
		platform.Active = *req.Active
	}

	if err := h.service.CreateStreaming(c.Context(), platform); err != nil {
		h.logger.WithError(err).Error("Failed to create streaming platform")
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(platform)
}

// UpdateStreaming godoc
// @Summary Update a streaming platform
// @Tags streamings
// @Accept json
// @Produce json
// @Param id path int true "Platform ID"
// @Param streaming body StreamingUpdateRequest true "Fields to update"
// @Success 200 {object} models.StreamingPlatform
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /streamings/{id} [put]
func (h *StreamingHandler) UpdateStreaming(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, services.ErrStreamingNotFound.Error())
	}

	var req StreamingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados não fornecidos")
	}

	platform, err := h.service.UpdateStreaming(c.Context(), uint(id), services.StreamingUpdate{
		Name:    req.Name,
		LogoURL: req.LogoURL,
		Color:   req.Color,
		Active:  req.Active,
	})
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update streaming platform")
		return mapServiceError(c, err)
	}

	return c.JSON(platform)
}

// DeleteStreaming godoc
// @Summary Delete a streaming platform
// @Description Removes the platform and all its availability links
// @Tags streamings
// @Produce json
// @Param id path int true "Platform ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /streamings/{id} [delete]
func (h *StreamingHandler) DeleteStreaming(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, services.ErrStreamingNotFound.Error())
	}

	if err := h.service.DeleteStreaming(c.Context(), uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete streaming platform")
		return mapServiceError(c, err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Streaming removido com sucesso")
}
