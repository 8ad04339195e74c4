package apiv1

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"resume-flow-backend/config"
	"resume-flow-backend/controllers"
	resumehandler "resume-flow-backend/lib/resume"
	"resume-flow-backend/lib/sla"
	"resume-flow-backend/lib/workflow"
	"resume-flow-backend/middleware"
	"resume-flow-backend/models"
	apimodels "resume-flow-backend/models/api"
	resumeapimodels "resume-flow-backend/models/api/resume"
)

type resumeApiController struct {
	controllers.BaseAPIController
}

// maxResumeFileSize caps a single resume document upload.
const maxResumeFileSize = 10 * 1024 * 1024

func InitResumeApiRouters(app *fiber.App) {
	controller := resumeApiController{}
	app.Route("resumes", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("my-tasks", controller.myTasks)
		router.Post("", middleware.RoleRequired(models.UserRoleHR, models.UserRoleAdmin), controller.create)
		router.Get(":id", controller.get)
		router.Get(":id/logs", controller.logs)
		router.Post(":id/file", middleware.WithBodyLimit(maxResumeFileSize), middleware.RoleRequired(models.UserRoleHR, models.UserRoleAdmin), controller.uploadFile)
		router.Get(":id/file", controller.downloadFile)
		router.Post(":id/distribute", middleware.RoleRequired(models.UserRoleL2Manager, models.UserRoleAdmin), controller.distribute)
		router.Post(":id/assign", middleware.RoleRequired(models.UserRoleL3Assistant, models.UserRoleAdmin), controller.assign)
		router.Post(":id/identify", middleware.RoleRequired(models.UserRoleExpert, models.UserRoleAdmin), controller.identify)
		router.Post(":id/contact", middleware.RoleRequired(models.UserRoleL2Manager, models.UserRoleAdmin), controller.fillContact)
		router.Post(":id/start-connection", middleware.RoleRequired(models.UserRoleExpert, models.UserRoleAdmin), controller.startConnection)
		router.Post(":id/feedback", middleware.RoleRequired(models.UserRoleExpert, models.UserRoleAdmin), controller.feedback)
		router.Post(":id/unfit", controller.markUnfit)
		router.Post(":id/report-l2", middleware.RoleRequired(models.UserRoleL3Assistant, models.UserRoleAdmin), controller.reportL2)
		router.Post(":id/release", middleware.RoleRequired(models.UserRoleL2Manager, models.UserRoleHR, models.UserRoleAdmin), controller.release)
		router.Post(":id/progress", controller.progress)
		router.Post(":id/overdue-reason", controller.overdueReason)
	})
}

func viewBudget() sla.Budget {
	return sla.NewBudget(config.Conf.Sla.IdentifyHours, config.Conf.Sla.ConnectionHours, config.Conf.Sla.FeedbackHours)
}

// @Summary 简历列表
// @Tags 简历
// @Description 按角色可见范围返回简历列表
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]resumeapimodels.View}
// @Failure 401
// @router /api/v1/resumes [get]
func (c *resumeApiController) list(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	list := resumehandler.Instance.ListByRole(*user)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resumeapimodels.NewViewList(list, viewBudget())))
}

// @Summary 我的待办
// @Tags 简历
// @Description 当前责任人为本人的流转中简历
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]resumeapimodels.View}
// @Failure 401
// @router /api/v1/resumes/my-tasks [get]
func (c *resumeApiController) myTasks(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	list := resumehandler.Instance.MyTasks(*user)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resumeapimodels.NewViewList(list, viewBudget())))
}

// @Summary 录入简历
// @Tags 简历
// @Description HR录入新简历，进入二层待分发池
// @Param	body				body		resumeapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes [post]
func (c *resumeApiController) create(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload resumeapimodels.CreateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resumeID, result := workflow.Instance.CreateResume(workflow.CreateResumeData{
		CandidateName:       payload.CandidateName,
		School:              payload.School,
		GraduationYear:      payload.GraduationYear,
		Source:              payload.Source,
		SchoolTag:           payload.SchoolTag,
		ExcellenceTags:      payload.ExcellenceTags,
		EducationLevel:      payload.EducationLevel,
		RecruitmentScenario: payload.RecruitmentScenario,
		CandidateType:       payload.CandidateType,
		Skills:              payload.Skills,
		Remark:              payload.Remark,
	}, *user)
	if !result.OK {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(result.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resumeID))
}

// @Summary 简历详情
// @Tags 简历
// @Success 200 {object} apimodels.Response{data=resumeapimodels.View}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/resumes/{id} [get]
func (c *resumeApiController) get(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	rec := resumehandler.Instance.GetByID(ctx.Params("id"), *user)
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("简历不存在"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resumeapimodels.NewView(*rec, viewBudget(), time.Now())))
}

// @Summary 简历流转日志
// @Tags 简历
// @Success 200 {object} apimodels.Response
// @router /api/v1/resumes/{id}/logs [get]
func (c *resumeApiController) logs(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	if rec := resumehandler.Instance.GetByID(ctx.Params("id"), *user); rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("简历不存在"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resumehandler.Instance.Logs(ctx.Params("id"))))
}

// @Summary 上传简历文件
// @Tags 简历
// @Accept multipart/form-data
// @Param file formData file true "简历文件"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/file [post]
func (c *resumeApiController) uploadFile(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("缺少文件"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("文件读取失败"))
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("文件读取失败"))
	}
	return opResponse(ctx, resumehandler.Instance.AttachFile(ctx.Context(), ctx.Params("id"), fileHeader.Filename, data))
}

// @Summary 下载简历文件
// @Tags 简历
// @Success 200
// @Failure 404 {object} apimodels.Response
// @router /api/v1/resumes/{id}/file [get]
func (c *resumeApiController) downloadFile(ctx *fiber.Ctx) error {
	data, err := resumehandler.Instance.File(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/octet-stream")
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary 分发到三层部门
// @Tags 简历流转
// @Param	body				body		resumeapimodels.DistributeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/distribute [post]
func (c *resumeApiController) distribute(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload resumeapimodels.DistributeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, workflow.Instance.DistributeToL3(ctx.Params("id"), payload.L3DepartmentID, *user))
}

// @Summary 指派专家
// @Tags 简历流转
// @Param	body				body		resumeapimodels.AssignRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/assign [post]
func (c *resumeApiController) assign(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload resumeapimodels.AssignRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, workflow.Instance.AssignExpert(ctx.Params("id"), payload.ExpertID, *user))
}

// @Summary 专家识别
// @Tags 简历流转
// @Description 提交识别结果，不通过时按不合适流程回流
// @Param	body				body		resumeapimodels.IdentifyRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/identify [post]
func (c *resumeApiController) identify(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload resumeapimodels.IdentifyRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, workflow.Instance.ExpertIdentify(ctx.Params("id"), *user, payload.Accepted, payload.Comment))
}

// @Summary 填写联系方式
// @Tags 简历流转
// @Param	body				body		resumeapimodels.ContactRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/contact [post]
func (c *resumeApiController) fillContact(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload resumeapimodels.ContactRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, workflow.Instance.FillContactInfo(ctx.Params("id"), payload.Email, payload.Phone, *user))
}

// @Summary 开始建联
// @Tags 简历流转
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/start-connection [post]
func (c *resumeApiController) startConnection(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return opResponse(ctx, workflow.Instance.StartConnection(ctx.Params("id"), *user))
}

// @Summary 提交专家反馈
// @Tags 简历流转
// @Description 提交反馈并归档
// @Param	body				body		resumeapimodels.FeedbackRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/feedback [post]
func (c *resumeApiController) feedback(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload resumeapimodels.FeedbackRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, workflow.Instance.SubmitExpertFeedback(ctx.Params("id"), payload.Feedback, *user))
}

// @Summary 标记不合适
// @Tags 简历流转
// @Param	body				body		resumeapimodels.UnfitRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/unfit [post]
func (c *resumeApiController) markUnfit(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload resumeapimodels.UnfitRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, workflow.Instance.MarkUnfit(ctx.Params("id"), *user, payload.Reason))
}

// @Summary 上报二层
// @Tags 简历流转
// @Description 三层助理将不合适简历上报二层经理
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/report-l2 [post]
func (c *resumeApiController) reportL2(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return opResponse(ctx, workflow.Instance.ReportRejectedToL2(ctx.Params("id"), *user))
}

// @Summary 释放简历
// @Tags 简历流转
// @Description 释放到资源池，清空责任人与三层归属
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/release [post]
func (c *resumeApiController) release(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return opResponse(ctx, workflow.Instance.ReleaseResume(ctx.Params("id"), *user))
}

// @Summary 更新进展
// @Tags 简历流转
// @Param	body				body		resumeapimodels.ProgressRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/progress [post]
func (c *resumeApiController) progress(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload resumeapimodels.ProgressRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, workflow.Instance.UpdateProgress(ctx.Params("id"), payload.Progress, *user))
}

// @Summary 填写超期原因
// @Tags 简历流转
// @Param	body				body		resumeapimodels.OverdueReasonRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/resumes/{id}/overdue-reason [post]
func (c *resumeApiController) overdueReason(ctx *fiber.Ctx) error {
	user, err := currentUser(ctx)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	var payload resumeapimodels.OverdueReasonRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return opResponse(ctx, workflow.Instance.SubmitOverdueReason(ctx.Params("id"), payload.Reason, *user))
}
