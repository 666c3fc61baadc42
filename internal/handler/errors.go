package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/pkg/apperrors"
)

// NewErrorHandler normalizes every error escaping a handler into the
// {message, error} shape. The error detail is only exposed in development.
func NewErrorHandler(dev bool, log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fiberErr *fiber.Error
		var connErr *apperrors.ConnectionError
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			status = fiber.StatusNotFound
			message = "Not Found"
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, apperrors.ErrMissingMongoURI), errors.As(err, &connErr):
			message = "Database connection failed"
		}

		if status >= fiber.StatusInternalServerError {
			log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}

		body := models.ErrorBody{Message: message}
		if dev {
			body.Error = err.Error()
		}
		return c.Status(status).JSON(body)
	}
}

// NotFoundHandler answers any route the table above did not match.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(models.Message("Route not found: " + c.Path()))
}
