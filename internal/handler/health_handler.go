package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/pkg/database"
)

// DatabaseStateReporter is the slice of the connection manager /health needs.
type DatabaseStateReporter interface {
	State() database.State
}

type HealthHandler struct {
	db DatabaseStateReporter
}

func NewHealthHandler(db DatabaseStateReporter) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"database":  h.db.State(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	return c.SendString("CineSine API is running...")
}
