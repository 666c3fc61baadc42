package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cinesine/cinesine-backend/internal/models"
	"github.com/cinesine/cinesine-backend/internal/repository"
	"github.com/cinesine/cinesine-backend/pkg/utils"
)

type SocialLinkHandler struct {
	repo      repository.SocialLinkRepository
	validator *utils.Validator
}

func NewSocialLinkHandler(repo repository.SocialLinkRepository, validator *utils.Validator) *SocialLinkHandler {
	return &SocialLinkHandler{repo: repo, validator: validator}
}

func (h *SocialLinkHandler) List(c *fiber.Ctx) error {
	links, err := h.repo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(links)
}

func (h *SocialLinkHandler) Create(c *fiber.Ctx) error {
	var req models.CreateSocialLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	link, err := h.repo.Create(c.Context(), req.Document())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *SocialLinkHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateSocialLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	link, err := h.repo.Update(c.Context(), c.Params("id"), req.SetDoc())
	if err != nil {
		return err
	}
	return c.JSON(link)
}

func (h *SocialLinkHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(models.Message("SocialLink deleted"))
}
