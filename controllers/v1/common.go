package apiv1

import (
	"github.com/gofiber/fiber/v2"

	authhandler "resume-flow-backend/lib/auth"
	authutils "resume-flow-backend/lib/utils/auth-utils"
	"resume-flow-backend/models"
	apimodels "resume-flow-backend/models/api"
	domainmodels "resume-flow-backend/models/domain"
)

// currentUser resolves the JWT subject to an active account.
func currentUser(ctx *fiber.Ctx) (*domainmodels.User, error) {
	return authhandler.Instance.GetActiveUser(authutils.GetUserID(ctx))
}

// opResponse maps an engine result onto the HTTP response.
func opResponse(ctx *fiber.Ctx, result models.OpResult) error {
	if !result.OK {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(result.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result.Message))
}
