package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/repository"
	"github.com/cinesine/cinesine-backend/pkg/utils"
)

type PhotobookHandler struct {
	repo      repository.PhotobookRepository
	validator *utils.Validator
}

func NewPhotobookHandler(repo repository.PhotobookRepository, validator *utils.Validator) *PhotobookHandler {
	return &PhotobookHandler{repo: repo, validator: validator}
}

func (h *PhotobookHandler) List(c *fiber.Ctx) error {
	photobooks, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(photobooks)
}

func (h *PhotobookHandler) Create(c *fiber.Ctx) error {
	var req models.CreatePhotobookRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	photobook, err := h.repo.Create(c.Context(), req.Document())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(photobook)
}

func (h *PhotobookHandler) Update(c *fiber.Ctx) error {
	var req models.UpdatePhotobookRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	photobook, err := h.repo.Update(c.Context(), c.Params("id"), req.SetDoc())
	if err != nil {
		return err
	}
	return c.JSON(photobook)
}

func (h *PhotobookHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(models.Message("Photobook deleted"))
}
