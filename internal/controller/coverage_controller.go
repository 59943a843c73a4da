package controller

import (
	"ara-be/internal/dto"
	"ara-be/internal/pkg/serverutils"
	"ara-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICoverageController interface {
	RegisterRoutes(r fiber.Router)
	Axis(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
	SendReport(ctx *fiber.Ctx) error
}

type coverageController struct {
	service       service.ICoverageService
	reportService service.IReportService
}

func NewCoverageController(service service.ICoverageService, reportService service.IReportService) ICoverageController {
	return &coverageController{service: service, reportService: reportService}
}

func (c *coverageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/projects/:projectId/coverage")
	h.Use(serverutils.JwtMiddleware)
	h.Get("axis", c.Axis)
	h.Get("summary", c.Summary)
	h.Post("report", c.SendReport)
}

func (c *coverageController) Axis(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get coverage axis", c.service.Axis()))
}

func (c *coverageController) Summary(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Summary(ctx.Context(), projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get coverage summary", res))
}

// SendReport emails the coverage summary to the given recipients.
func (c *coverageController) SendReport(ctx *fiber.Ctx) error {
	projectId, err := projectIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SendCoverageReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.reportService.SendCoverageReport(ctx.Context(), projectId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success send coverage report", nil))
}
