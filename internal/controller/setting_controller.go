package controller

import (
	"ara-be/internal/dto"
	"ara-be/internal/pkg/serverutils"
	"ara-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type settingController struct {
	service service.ISettingService
}

func NewSettingController(service service.ISettingService) ISettingController {
	return &settingController{service: service}
}

func (c *settingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/:projectId/settings")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Put(":code", c.Update)
}

func (c *settingController) GetAll(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Definitions(ctx.Context(), projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get settings", res))
}

func (c *settingController) Update(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Code = ctx.Params("code")

	if err := c.service.Update(ctx.Context(), projectId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update setting", nil))
}
