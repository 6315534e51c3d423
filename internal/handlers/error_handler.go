package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-copilot/internal/models"
	"alfredoptarigan/resume-copilot/internal/services"
)

// ErrorHandler renders every error as {"error": "..."} with a status derived
// from its classification.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := StatusFor(err)

	if code >= fiber.StatusInternalServerError {
		log.Printf("❌ [%s] %s %s -> %d: %v", requestID(c), c.Method(), c.Path(), code, err)
	}

	return c.Status(code).JSON(models.ErrorResponse{Error: err.Error()})
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrProviderTimeout):
		return fiber.StatusGatewayTimeout
	}

	switch services.KindOf(err) {
	case services.KindValidation:
		return fiber.StatusBadRequest
	case services.KindExtraction:
		return fiber.StatusUnprocessableEntity
	case services.KindConfiguration:
		return fiber.StatusInternalServerError
	case services.KindProvider:
		return fiber.StatusBadGateway
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}

	return fiber.StatusInternalServerError
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "-"
}
