package controller

import (
	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/pkg/serverutils"
	"vibe-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
}

func NewProfileController(profileService service.IProfileService) IProfileController {
	return &profileController{
		profileService: profileService,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile")
	h.Get("", c.Show)
	h.Put("", c.Update)
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	profile, res := c.profileService.Get(ctx.Context(), serverutils.SessionToken(ctx))
	if res.Status != dto.ResultOk {
		return respondCommand(ctx, res, "")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show profile", profile))
}

func (c *profileController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.profileService.Update(ctx.Context(), serverutils.SessionToken(ctx), &req)
	return respondCommand(ctx, res, "Success update profile")
}
