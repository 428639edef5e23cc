package handlers

import (
	"errors"

	"github.com/ghostwriterhq/scheduler/internal/service"
	"github.com/gofiber/fiber/v2"
)

func GetOwnerID(c *fiber.Ctx) string {
	ownerID, _ := c.Locals("user_id").(string)
	return ownerID
}

// errorResponse maps the service error taxonomy onto HTTP statuses:
// validation problems are the caller's to fix, store and publisher
// failures are upstream.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var ve *service.ValidationError
	var pe *service.PersistenceError
	var pub *service.PublishError
	switch {
	case errors.As(err, &ve):
		status = fiber.StatusBadRequest
	case errors.As(err, &pe):
		status = fiber.StatusBadGateway
	case errors.As(err, &pub):
		status = fiber.StatusBadGateway
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
