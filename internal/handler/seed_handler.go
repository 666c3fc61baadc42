package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/service"
)

// SeedHandler backs the development-only /seed route.
type SeedHandler struct {
	service *service.SeedService
}

func NewSeedHandler(service *service.SeedService) *SeedHandler {
	return &SeedHandler{service: service}
}

func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	if err := h.service.Seed(c.Context()); err != nil {
		return err
	}
	return c.JSON(models.Message("Database seeded successfully via API!"))
}
