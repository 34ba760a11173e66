package controller

import (
	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/pkg/serverutils"
	"vibe-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	notes, res := c.noteService.List(ctx.Context(), serverutils.SessionToken(ctx))
	if res.Status != dto.ResultOk {
		return respondCommand(ctx, res, "")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list notes", notes))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res := c.noteService.Create(ctx.Context(), serverutils.SessionToken(ctx), &req)
	return respondCommand(ctx, res, "Success create note")
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.noteService.Update(ctx.Context(), serverutils.SessionToken(ctx), &req)
	return respondCommand(ctx, res, "Success update note")
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}

	res := c.noteService.Delete(ctx.Context(), serverutils.SessionToken(ctx), id)
	return respondCommand(ctx, res, "Success delete note")
}
