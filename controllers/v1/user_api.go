package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"resume-flow-backend/controllers"
	usershandler "resume-flow-backend/lib/users"
	"resume-flow-backend/middleware"
	"resume-flow-backend/models"
	apimodels "resume-flow-backend/models/api"
	userapimodels "resume-flow-backend/models/api/users"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.RoleRequired(models.UserRoleHR, models.UserRoleAdmin), controller.create)
		router.Put("profile", controller.updateProfile)
	})
}

// @Summary 用户列表
// @Tags 用户
// @Description 按角色可见范围返回用户列表
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]userapimodels.View}
// @Failure 401
// @router /api/v1/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	list := usershandler.Instance.ListByRole(*user)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(userapimodels.NewViewList(list)))
}

// @Summary 创建用户
// @Tags 用户
// @Description HR/管理员直接创建激活账户
// @Param	body				body		userapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload userapimodels.CreateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID, result := usershandler.Instance.Create(usershandler.CreateUserData{
		Username:     payload.Username,
		Email:        payload.Email,
		Role:         payload.Role,
		DepartmentID: payload.DepartmentID,
		Password:     payload.Password,
	}, *user)
	if !result.OK {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(result.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(userID))
}

// @Summary 更新个人信息
// @Tags 用户
// @Description 更新昵称、邮箱或密码
// @Param	body				body		userapimodels.ProfileUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/users/profile [put]
func (c *userApiController) updateProfile(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload userapimodels.ProfileUpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, usershandler.Instance.UpdateProfile(user.ID, usershandler.ProfileUpdateData{
		DisplayName: payload.DisplayName,
		Email:       payload.Email,
		NewPassword: payload.NewPassword,
	}))
}
