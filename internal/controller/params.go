package controller

import (
	"ara-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

func int64Param(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, serverutils.NewBadRequestError("invalid %s %q", name, ctx.Params(name))
	}
	return int64(id), nil
}

func projectIdParam(ctx *fiber.Ctx) (int64, error) {
	return int64Param(ctx, "projectId")
}
