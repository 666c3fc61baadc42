package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/repository"
	"github.com/cinesine/cinesine-backend/pkg/utils"
)

type ImageHandler struct {
	repo      repository.ImageRepository
	validator *utils.Validator
}

func NewImageHandler(repo repository.ImageRepository, validator *utils.Validator) *ImageHandler {
	return &ImageHandler{repo: repo, validator: validator}
}

func (h *ImageHandler) List(c *fiber.Ctx) error {
	images, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(images)
}

func (h *ImageHandler) Create(c *fiber.Ctx) error {
	var req models.CreateImageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	image, err := h.repo.Create(c.Context(), req.Document())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

func (h *ImageHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(models.Message("Image deleted"))
}
