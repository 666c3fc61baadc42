package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/service"
	"github.com/cinesine/cinesine-backend/pkg/utils"
)

type ContactHandler struct {
	service   *service.ContactService
	validator *utils.Validator
}

func NewContactHandler(service *service.ContactService, validator *utils.Validator) *ContactHandler {
	return &ContactHandler{service: service, validator: validator}
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	contacts, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(contacts)
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Name, Email, and Contact Number are required.")
	}

	contact, message, err := h.service.Submit(c.Context(), req, c.Get("Idempotency-Key"))
	if err != nil {
		return err
	}

	return c.JSON(models.ContactResponse{
		Message:   message,
		ContactID: contact.ID.Hex(),
	})
}
