package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"resume-flow-backend/controllers"
	approvalhandler "resume-flow-backend/lib/approval"
	"resume-flow-backend/middleware"
	"resume-flow-backend/models"
	apimodels "resume-flow-backend/models/api"
	approvalapimodels "resume-flow-backend/models/api/approval"
)

type approvalApiController struct {
	controllers.BaseAPIController
}

func InitApprovalApiRouters(app *fiber.App) {
	controller := approvalApiController{}
	app.Route("approvals", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.RoleRequired(models.UserRoleL2Manager, models.UserRoleL3Assistant), controller.submit)
		router.Post(":id/review", middleware.RoleRequired(models.UserRoleHR, models.UserRoleAdmin), controller.review)
	})
}

// @Summary 账户申请列表
// @Tags 审批
// @Description HR/管理员查看全部，申请人查看本人申请
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @router /api/v1/approvals [get]
func (c *approvalApiController) list(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(approvalhandler.Instance.List(*user)))
}

// @Summary 提交账户申请
// @Tags 审批
// @Param	body				body		approvalapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/approvals [post]
func (c *approvalApiController) submit(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload approvalapimodels.SubmitRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, approvalhandler.Instance.Submit(approvalhandler.SubmitData{
		RequestType:      payload.RequestType,
		TargetUsername:   payload.TargetUsername,
		TargetEmail:      payload.TargetEmail,
		TargetDepartment: payload.TargetDepartment,
		TargetPassword:   payload.TargetPassword,
		Reason:           payload.Reason,
	}, *user))
}

// @Summary 审批账户申请
// @Tags 审批
// @Description 通过或驳回，通过后账户立即激活
// @Param	body				body		approvalapimodels.ReviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/approvals/{id}/review [post]
func (c *approvalApiController) review(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload approvalapimodels.ReviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, approvalhandler.Instance.Review(ctx.Params("id"), payload.Approve, *user, payload.Comment))
}
