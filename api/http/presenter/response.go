package presenter

import "github.com/gofiber/fiber/v2"

// Response is the envelope every non-document endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse = Response

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Success: false, Message: message})
}

func OK(c *fiber.Ctx, message string) error {
	return JSON(c, fiber.StatusOK, Response{Success: true, Message: message})
}
