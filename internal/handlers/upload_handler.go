package handlers

import (
	"streaming-catalog/internal/services"
	"streaming-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	minioService *services.MinIOService
	logger       *logrus.Logger
}

func NewUploadHandler(minioService *services.MinIOService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		minioService: minioService,
		logger:       logger,
	}
}

// GetPresignedURL godoc
// @Summary Presign a poster upload
// @Description Returns a short-lived PUT URL for uploading a content poster plus its resulting public URL
// @Tags upload
// @Produce json
// @Param filename query string true "Poster filename"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename é obrigatório")
	}

	uploadURL, publicURL, err := h.minioService.PresignPosterUpload(filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned poster URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"upload_url": uploadURL,
		"public_url": publicURL,
	})
}
