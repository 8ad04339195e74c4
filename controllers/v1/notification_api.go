package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"resume-flow-backend/controllers"
	"resume-flow-backend/lib/notify"
	apimodels "resume-flow-backend/models/api"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("unread-count", controller.unreadCount)
		router.Post("read-all", controller.readAll)
		router.Post(":id/read", controller.read)
		router.Delete(":id", controller.delete)
	})
}

// @Summary 通知列表
// @Tags 通知
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @router /api/v1/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(notify.Instance.List(user.ID)))
}

// @Summary 未读通知数量
// @Tags 通知
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @router /api/v1/notifications/unread-count [get]
func (c *notificationApiController) unreadCount(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(notify.Instance.UnreadCount(user.ID)))
}

// @Summary 标记通知已读
// @Tags 通知
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/notifications/{id}/read [post]
func (c *notificationApiController) read(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return opResponse(ctx, notify.Instance.MarkRead(ctx.Params("id"), user.ID))
}

// @Summary 全部标记已读
// @Tags 通知
// @Success 200 {object} apimodels.Response
// @router /api/v1/notifications/read-all [post]
func (c *notificationApiController) readAll(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return opResponse(ctx, notify.Instance.MarkAllRead(user.ID))
}

// @Summary 删除通知
// @Tags 通知
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/notifications/{id} [delete]
func (c *notificationApiController) delete(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return opResponse(ctx, notify.Instance.Delete(ctx.Params("id"), user.ID))
}
