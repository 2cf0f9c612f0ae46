package utils

import "github.com/gofiber/fiber/v2"

// The API speaks flat JSON with no envelope around payloads. Errors are
// always {"error": "<message>"} and confirmations {"message": "<message>"}.

// ErrorResponse sends an error body with the given status code.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// MessageResponse sends a confirmation body with the given status code.
func MessageResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}
