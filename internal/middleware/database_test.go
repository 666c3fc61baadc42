package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/internal/handler"
	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/database"
)

func newGatedApp() *fiber.App {
	log := zap.NewNop().Sugar()
	mgr := database.NewManager("", "cinesine", log)
	app := fiber.New(fiber.Config{
		ErrorHandler: handler.NewErrorHandler(false, log),
	})
	app.Use(EnsureDatabase(mgr, log))
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", ok)
	app.Get("/health", ok)
	app.Get("/stories", ok)
	return app
}

func TestEnsureDatabaseSkipsHealthRoutes(t *testing.T) {
	app := newGatedApp()

	for _, path := range []string{"/", "/health"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestEnsureDatabaseBlocksDataRoutesWhenUnconfigured(t *testing.T) {
	app := newGatedApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stories", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body models.ErrorBody
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Database connection failed", body.Message)
}
