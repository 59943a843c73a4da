package controller

import (
	"ara-be/internal/dto"
	"ara-be/internal/pkg/serverutils"
	"ara-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFunctionalityController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Move(ctx *fiber.Ctx) error
	LinkScenario(ctx *fiber.Ctx) error
	UnlinkScenario(ctx *fiber.Ctx) error
	SetFlags(ctx *fiber.Ctx) error
}

type functionalityController struct {
	service service.IFunctionalityService
}

func NewFunctionalityController(service service.IFunctionalityService) IFunctionalityController {
	return &functionalityController{service: service}
}

func (c *functionalityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/:projectId/functionalities")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post("move", c.Move)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Put(":id/coverage-flags", c.SetFlags)
	h.Post(":id/scenarios", c.LinkScenario)
	h.Delete(":id/scenarios/:scenarioId", c.UnlinkScenario)
}

func (c *functionalityController) GetAll(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all functionalities", res))
}

func (c *functionalityController) Show(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}
	id, err := int64Param(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), projectId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show functionality", res))
}

func (c *functionalityController) Create(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateFunctionalityRequest
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

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create functionality", res))
}

func (c *functionalityController) Update(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}
	id, err := int64Param(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateFunctionalityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), projectId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update functionality", res))
}

func (c *functionalityController) Delete(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}
	id, err := int64Param(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), projectId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete functionality", nil))
}

func (c *functionalityController) Move(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.MoveFunctionalitiesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Move(ctx.Context(), projectId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move functionalities", res))
}

func (c *functionalityController) LinkScenario(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}
	id, err := int64Param(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.LinkScenarioRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.FunctionalityId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.LinkScenario(ctx.Context(), projectId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success link scenario", res))
}

func (c *functionalityController) UnlinkScenario(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}
	id, err := int64Param(ctx, "id")
	if err != nil {
		return err
	}
	scenarioId, err := int64Param(ctx, "scenarioId")
	if err != nil {
		return err
	}

	res, err := c.service.UnlinkScenario(ctx.Context(), projectId, id, scenarioId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success unlink scenario", res))
}

func (c *functionalityController) SetFlags(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}
	id, err := int64Param(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.SetCoverageFlagsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.SetFlags(ctx.Context(), projectId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set coverage flags", res))
}
