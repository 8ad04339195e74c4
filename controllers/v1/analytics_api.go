package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"resume-flow-backend/controllers"
	analyticshandler "resume-flow-backend/lib/analytics"
	apimodels "resume-flow-backend/models/api"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Get("summary", controller.summary)
		router.Get("export", controller.export)
	})
}

// @Summary 数据分析汇总
// @Tags 数据分析
// @Description 按角色可见范围统计简历与超期情况
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.Summary}
// @Failure 401
// @router /api/v1/analytics/summary [get]
func (c *analyticsApiController) summary(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(analyticshandler.Instance.Summary(*user)))
}

// @Summary 导出统计报表
// @Tags 数据分析
// @Description 导出超期统计与状态分布 xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/export [get]
func (c *analyticsApiController) export(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	buf, err := analyticshandler.Instance.Export(*user)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="analytics.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
