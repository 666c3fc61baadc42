package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/repository"
	"github.com/cinesine/cinesine-backend/pkg/utils"
)

type FilmHandler struct {
	repo      repository.FilmRepository
	validator *utils.Validator
}

func NewFilmHandler(repo repository.FilmRepository, validator *utils.Validator) *FilmHandler {
	return &FilmHandler{repo: repo, validator: validator}
}

func (h *FilmHandler) List(c *fiber.Ctx) error {
	films, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(films)
}

func (h *FilmHandler) Create(c *fiber.Ctx) error {
	var req models.CreateFilmRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	film, err := h.repo.Create(c.Context(), req.Document())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(film)
}

func (h *FilmHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateFilmRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	film, err := h.repo.Update(c.Context(), c.Params("id"), req.SetDoc())
	if err != nil {
		return err
	}
	return c.JSON(film)
}

func (h *FilmHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(models.Message("Film deleted"))
}
