package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "resume-flow-backend/lib/utils/auth-utils"
	"resume-flow-backend/models"
	apimodels "resume-flow-backend/models/api"
)

// RoleRequired rejects requests whose JWT role is outside the allowed set.
func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := authutils.GetUserRole(ctx)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("无权限执行此操作"))
	}
}
