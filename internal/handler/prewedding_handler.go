package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/repository"
	"github.com/cinesine/cinesine-backend/pkg/utils"
)

type PreWeddingHandler struct {
	repo      repository.PreWeddingRepository
	validator *utils.Validator
}

func NewPreWeddingHandler(repo repository.PreWeddingRepository, validator *utils.Validator) *PreWeddingHandler {
	return &PreWeddingHandler{repo: repo, validator: validator}
}

func (h *PreWeddingHandler) List(c *fiber.Ctx) error {
	preWeddings, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(preWeddings)
}

func (h *PreWeddingHandler) Get(c *fiber.Ctx) error {
	preWedding, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(preWedding)
}

func (h *PreWeddingHandler) Create(c *fiber.Ctx) error {
	var req models.CreatePreWeddingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	preWedding, err := h.repo.Create(c.Context(), req.Document())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(preWedding)
}

func (h *PreWeddingHandler) Update(c *fiber.Ctx) error {
	var req models.UpdatePreWeddingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	preWedding, err := h.repo.Update(c.Context(), c.Params("id"), req.SetDoc())
	if err != nil {
		return err
	}
	return c.JSON(preWedding)
}

func (h *PreWeddingHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(models.Message("PreWedding deleted"))
}
