package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"resume-flow-backend/controllers"
	"resume-flow-backend/lib/dataset"
	apimodels "resume-flow-backend/models/api"
)

type departmentApiController struct {
	controllers.BaseAPIController
}

func InitDepartmentApiRouters(app *fiber.App) {
	controller := departmentApiController{}
	app.Route("departments", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("l3", controller.listL3)
	})
}

// @Summary 部门列表
// @Tags 部门
// @Description 返回三级组织结构
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @router /api/v1/departments [get]
func (c *departmentApiController) list(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dataset.Instance.Departments()))
}

// @Summary 三层部门列表
// @Tags 部门
// @Description 简历分发目标部门
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @router /api/v1/departments/l3 [get]
func (c *departmentApiController) listL3(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dataset.Instance.DepartmentsByLevel(3)))
}
