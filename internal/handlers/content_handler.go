package handlers

import (
	"errors"
	"strconv"
	"strings"

	"streaming-catalog/internal/models"
	"streaming-catalog/internal/services"
	"streaming-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ContentHandler struct {
	service services.ContentService
	logger  *logrus.Logger
}

func NewContentHandler(service services.ContentService, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  logger,
	}
}

// mapServiceError translates service failures into the API error taxonomy.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case services.IsValidationError(err):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrContentNotFound), errors.Is(err, services.ErrStreamingNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrStreamingExists):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
}

// parseStreamingIDs splits a comma-separated id list, silently discarding
// anything non-numeric.
func parseStreamingIDs(raw string) []uint {
	if raw == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

// GetContent godoc
// @Summary List catalog content
// @Description List content with optional filters; all filters combine conjunctively
// @Tags content
// @Produce json
// @Param type query string false "Content type (movie, series, anime)"
// @Param genre query string false "Case-insensitive genre substring"
// @Param search query string false "Case-insensitive title substring"
// @Param streaming_ids query string false "Comma-separated platform ids; matches content available on any of them"
// @Param show_inactive query bool false "Include inactive content" default(false)
// @Success 200 {array} ContentResponse
// @Failure 500 {object} map[string]string
// @Router /content [get]
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	filter := models.ContentFilter{
		Type:         c.Query("type"),
		Genre:        c.Query("genre"),
		Search:       c.Query("search"),
		StreamingIDs: parseStreamingIDs(c.Query("streaming_ids")),
		ShowInactive: c.QueryBool("show_inactive", false),
	}

	contents, err := h.service.GetContent(c.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list content")
		return mapServiceError(c, err)
	}

	return c.JSON(newContentResponseList(contents))
}

// GetContentByID godoc
// @Summary Get one content entry
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} ContentResponse
// @Failure 404 {object} map[string]string
// @Router /content/{id} [get]
func (h *ContentHandler) GetContentByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, services.ErrContentNotFound.Error())
	}

	content, err := h.service.GetContentByID(c.Context(), uint(id))
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(newContentResponse(content))
}

// CreateContent godoc
// @Summary Create content
// @Tags content
// @Accept json
// @Produce json
// @Param content body ContentCreateRequest true "Content to create"
// @Success 201 {object} ContentResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /content [post]
func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	var req ContentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados não fornecidos")
	}

	content := &models.Content{
		Title:     req.Title,
		Year:      req.Year,
		Type:      req.Type,
		Genre:     req.Genre,
		PosterURL: req.PosterURL,
	}

	created, err := h.service.CreateContent(c.Context(), content, req.StreamingIDs)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create content")
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newContentResponse(created))
}

// UpdateContent godoc
// @Summary Update content
// @Description Partial update; a provided streaming_ids list replaces all links, an absent one leaves them untouched
// @Tags content
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param content body ContentUpdateRequest true "Fields to update"
// @Success 200 {object} ContentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /content/{id} [put]
func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, services.ErrContentNotFound.Error())
	}

	var req ContentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dados não fornecidos")
	}

	updated, err := h.service.UpdateContent(c.Context(), uint(id), services.ContentUpdate{
		Title:        req.Title,
		Year:         req.Year,
		Type:         req.Type,
		Genre:        req.Genre,
		PosterURL:    req.PosterURL,
		StreamingIDs: req.StreamingIDs,
	})
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update content")
		return mapServiceError(c, err)
	}

	return c.JSON(newContentResponse(updated))
}

// ToggleContent godoc
// @Summary Toggle content visibility
// @Description Flips only the active flag and returns the new state
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /content/{id}/toggle [patch]
func (h *ContentHandler) ToggleContent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, services.ErrContentNotFound.Error())
	}

	active, err := h.service.ToggleContent(c.Context(), uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to toggle content")
		return mapServiceError(c, err)
	}

	message := "Conteúdo desativado com sucesso"
	if active {
		message = "Conteúdo ativado com sucesso"
	}

	return c.JSON(fiber.Map{
		"message":   message,
		"is_active": active,
	})
}

// DeleteContent godoc
// @Summary Delete content
// @Description Removes the content and all its platform links
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /content/{id} [delete]
func (h *ContentHandler) DeleteContent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, services.ErrContentNotFound.Error())
	}

	if err := h.service.DeleteContent(c.Context(), uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete content")
		return mapServiceError(c, err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Conteúdo removido com sucesso")
}

// GetStats godoc
// @Summary Catalog statistics
// @Description Counts by type over active content, inactive total and per-platform availability counts
// @Tags content
// @Produce json
// @Success 200 {object} models.ContentStats
// @Failure 500 {object} map[string]string
// @Router /content/stats [get]
func (h *ContentHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute stats")
		return mapServiceError(c, err)
	}

	return c.JSON(stats)
}
