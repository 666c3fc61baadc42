package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/pkg/database"
)

// EnsureDatabase connects (or reuses the cached connection) before any route
// that touches a collection. The liveness and health routes stay reachable
// while the database is down.
func EnsureDatabase(mgr *database.Manager, log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/" || c.Path() == "/health" {
			return c.Next()
		}
		if _, err := mgr.Get(c.Context()); err != nil {
			log.Errorw("database connection failed during request", "path", c.Path(), "error", err)
			return err
		}
		return c.Next()
	}
}
