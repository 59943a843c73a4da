package controller

import (
	"ara-be/internal/dto"
	"ara-be/internal/pkg/serverutils"
	"ara-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProblemController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type problemController struct {
	service service.IProblemService
}

func NewProblemController(service service.IProblemService) IProblemController {
	return &problemController{service: service}
}

func (c *problemController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/:projectId/problems")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
}

func (c *problemController) List(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	var filter dto.ProblemFilterRequest
	if err := ctx.QueryParser(&filter); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(filter); err != nil {
		return err
	}

	res, err := c.service.List(ctx.Context(), projectId, &filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get problems", res))
}

func (c *problemController) Create(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateProblemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), projectId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create problem", res))
}
