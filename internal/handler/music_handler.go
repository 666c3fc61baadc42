package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/repository"
	"github.com/cinesine/cinesine-backend/pkg/utils"
)

type MusicHandler struct {
	repo      repository.MusicRepository
	validator *utils.Validator
}

func NewMusicHandler(repo repository.MusicRepository, validator *utils.Validator) *MusicHandler {
	return &MusicHandler{repo: repo, validator: validator}
}

func (h *MusicHandler) List(c *fiber.Ctx) error {
	tracks, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(tracks)
}

func (h *MusicHandler) Create(c *fiber.Ctx) error {
	var req models.CreateMusicRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	music, err := h.repo.Create(c.Context(), req.Document())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(music)
}
