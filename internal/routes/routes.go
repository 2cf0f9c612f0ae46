package routes

import (
	"streaming-catalog/internal/handlers"
	"streaming-catalog/internal/middleware"
	"streaming-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Content   *handlers.ContentHandler
	Streaming *handlers.StreamingHandler
	Auth      *handlers.AuthHandler
	Upload    *handlers.UploadHandler
}

// Setup registers all API routes. Mutation routes run the explicit
// protected + admin-only chain; reads are public.
func Setup(app *fiber.App, h Handlers, tokens *services.TokenManager) {
	api := app.Group("/api")

	protected := middleware.Protected(tokens)
	adminOnly := middleware.AdminOnly(tokens)

	auth := api.Group("/auth")
	{
		auth.Post("/login", h.Auth.Login)
		auth.Get("/verify", protected, h.Auth.Verify)
		auth.Post("/logout", protected, h.Auth.Logout)
	}

	content := api.Group("/content")
	{
		content.Get("/", h.Content.GetContent)
		content.Get("/stats", h.Content.GetStats)
		content.Get("/:id", h.Content.GetContentByID)
		content.Post("/", protected, adminOnly, h.Content.CreateContent)
		content.Put("/:id", protected, adminOnly, h.Content.UpdateContent)
		content.Patch("/:id/toggle", protected, adminOnly, h.Content.ToggleContent)
		content.Delete("/:id", protected, adminOnly, h.Content.DeleteContent)
	}

	streamings := api.Group("/streamings")
	{
		streamings.Get("/", h.Streaming.GetStreamings)
		streamings.Post("/", protected, adminOnly, h.Streaming.CreateStreaming)
		streamings.Put("/:id", protected, adminOnly, h.Streaming.UpdateStreaming)
		streamings.Delete("/:id", protected, adminOnly, h.Streaming.DeleteStreaming)
	}

	upload := api.Group("/upload")
	{
		upload.Get("/presign", protected, adminOnly, h.Upload.GetPresignedURL)
	}
}
