package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/service"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	profile, err := h.service.Get(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateUserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	profile, err := h.service.Update(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
