package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/repository"
	"github.com/cinesine/cinesine-backend/pkg/utils"
)

type StoryHandler struct {
	repo      repository.StoryRepository
	validator *utils.Validator
}

func NewStoryHandler(repo repository.StoryRepository, validator *utils.Validator) *StoryHandler {
	return &StoryHandler{repo: repo, validator: validator}
}

func (h *StoryHandler) List(c *fiber.Ctx) error {
	stories, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stories)
}

func (h *StoryHandler) Get(c *fiber.Ctx) error {
	story, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(story)
}

func (h *StoryHandler) Create(c *fiber.Ctx) error {
	var req models.CreateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	story, err := h.repo.Create(c.Context(), req.Document())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(story)
}

func (h *StoryHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	story, err := h.repo.Update(c.Context(), c.Params("id"), req.SetDoc())
	if err != nil {
		return err
	}
	return c.JSON(story)
}

func (h *StoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(models.Message("Story deleted"))
}
