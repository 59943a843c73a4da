package controller

import (
	"ara-be/internal/dto"
	"ara-be/internal/pkg/serverutils"
	"ara-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IScenarioController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type scenarioController struct {
	service service.IScenarioService
}

func NewScenarioController(service service.IScenarioService) IScenarioController {
	return &scenarioController{service: service}
}

func (c *scenarioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/:projectId/scenarios")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
}

func (c *scenarioController) GetAll(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all scenarios", res))
}

func (c *scenarioController) Create(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateScenarioRequest
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

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create scenario", res))
}
