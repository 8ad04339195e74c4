package approval

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"resume-flow-backend/lib/dataset"
	"resume-flow-backend/lib/notify"
	authutils "resume-flow-backend/lib/utils/auth-utils"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

// SubmitData describes an account request filed by an L2 manager or an
// L3 assistant for a subordinate account.
type SubmitData struct {
	RequestType      models.RequestType
	TargetUsername   string
	TargetEmail      string
	TargetDepartment string
	TargetPassword   string
	Reason           string
}

type Provider interface {
	List(viewer domainmodels.User) []domainmodels.AccountApprovalRequest
	Submit(data SubmitData, applicant domainmodels.User) models.OpResult
	// Review settles a pending request exactly once; approval materializes
	// an active account and its password mapping.
	Review(requestID string, approve bool, reviewer domainmodels.User, comment string) models.OpResult
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    dataset.Instance,
		notifier: notify.Instance,
	}
}

func NewInstance(store *dataset.Store, notifier notify.Provider) Provider {
	return impl{
		store:    store,
		notifier: notifier,
	}
}

type impl struct {
	store    *dataset.Store
	notifier notify.Provider
}

func (i impl) List(viewer domainmodels.User) []domainmodels.AccountApprovalRequest {
	all := i.store.Requests()
	if viewer.Role.HasFullVisibility() {
		return all
	}
	list := []domainmodels.AccountApprovalRequest{}
	for _, rec := range all {
		if rec.ApplicantID == viewer.ID {
			list = append(list, rec)
		}
	}
	return list
}

func (i impl) Submit(data SubmitData, applicant domainmodels.User) models.OpResult {
	if data.TargetUsername == "" || data.TargetPassword == "" {
		return models.OpFail("用户名和密码不能为空")
	}
	if i.store.UserByUsername(data.TargetUsername) != nil {
		return models.OpFail("用户名已存在")
	}
	dept := i.store.DepartmentByID(data.TargetDepartment)
	if dept == nil {
		return models.OpFail("部门不存在")
	}
	targetRole := models.UserRoleL3Assistant
	if data.RequestType == models.RequestTypeCreateExpert {
		targetRole = models.UserRoleExpert
	}
	rec := domainmodels.AccountApprovalRequest{
		ID:                   uuid.NewString(),
		RequestType:          data.RequestType,
		ApplicantID:          applicant.ID,
		ApplicantName:        applicant.GetDisplayName(),
		ApplicantRole:        applicant.Role,
		TargetRole:           targetRole,
		TargetUsername:       data.TargetUsername,
		TargetEmail:          data.TargetEmail,
		TargetDepartmentID:   dept.ID,
		TargetDepartmentName: dept.Name,
		TargetPassword:       authutils.GetMD5Hash(data.TargetPassword),
		Reason:               data.Reason,
		Status:               models.RequestStatusPending,
		CreatedAt:            time.Now(),
	}
	if err := i.store.AppendRequest(rec); err != nil {
		return models.OpFail(err.Error())
	}
	for _, reviewer := range i.store.Users() {
		if !reviewer.Role.HasFullVisibility() {
			continue
		}
		i.notifier.Push(notify.PushData{
			UserID:  reviewer.ID,
			Title:   "新建账户申请待审批",
			Message: fmt.Sprintf("%s 提交了 %s 账户申请", rec.ApplicantName, rec.RequestType.TargetRoleHuman()),
			Type:    models.NotificationTypeInfo,
			Link:    "/approval-center",
		})
	}
	return models.OpOk("申请已提交，待HR/Admin审批")
}

func (i impl) Review(requestID string, approve bool, reviewer domainmodels.User, comment string) models.OpResult {
	rec := i.store.RequestByID(requestID)
	if rec == nil {
		return models.OpFail("申请不存在")
	}
	if rec.Status != models.RequestStatusPending {
		return models.OpFail("该申请已处理")
	}
	// materialize before flipping the status: a failed approval
	// leaves the request pending and reviewable
	if approve {
		if result := i.materialize(*rec, reviewer); !result.OK {
			return result
		}
	}
	status := models.RequestStatusRejected
	if approve {
		status = models.RequestStatusApproved
	}
	reviewedAt := time.Now()
	found, err := i.store.UpdateRequest(requestID, func(r *domainmodels.AccountApprovalRequest) {
		r.Status = status
		r.ReviewedByID = reviewer.ID
		r.ReviewedByName = reviewer.GetDisplayName()
		r.ReviewComment = comment
		r.ReviewedAt = &reviewedAt
	})
	if err != nil {
		return models.OpFail(err.Error())
	}
	if !found {
		return models.OpFail("申请不存在")
	}
	verdict := "被驳回"
	title := "账户申请被驳回"
	ntype := models.NotificationTypeWarning
	if approve {
		verdict = "已通过"
		title = "账户申请已通过"
		ntype = models.NotificationTypeSuccess
	}
	message := fmt.Sprintf("%s 的创建申请%s", rec.TargetUsername, verdict)
	if comment != "" {
		message = fmt.Sprintf("%s：%s", message, comment)
	}
	i.notifier.Push(notify.PushData{
		UserID:  rec.ApplicantID,
		Title:   title,
		Message: message,
		Type:    ntype,
		Link:    "/approval-center",
	})
	if approve {
		return models.OpOk("审批通过并已激活账户")
	}
	return models.OpOk("已驳回申请")
}

func (i impl) materialize(rec domainmodels.AccountApprovalRequest, reviewer domainmodels.User) models.OpResult {
	logger := log.WithField("request_id", rec.ID)
	if i.store.UserByUsername(rec.TargetUsername) != nil {
		return models.OpFail("用户名已存在")
	}
	user := domainmodels.User{
		ID:             uuid.NewString(),
		Username:       rec.TargetUsername,
		Email:          rec.TargetEmail,
		Role:           rec.TargetRole,
		DepartmentID:   rec.TargetDepartmentID,
		DepartmentName: rec.TargetDepartmentName,
		Status:         models.UserStatusActive,
		CreatedByID:    reviewer.ID,
		CreatedByName:  reviewer.GetDisplayName(),
		CreatedAt:      time.Now(),
	}
	if err := i.store.AppendUser(user); err != nil {
		logger.WithError(err).Error("账户创建失败")
		return models.OpFail(err.Error())
	}
	// the password was hashed at submit time
	if err := i.store.SetPasswordHash(rec.TargetUsername, rec.TargetPassword); err != nil {
		logger.WithError(err).Error("密码保存失败")
		return models.OpFail(err.Error())
	}
	return models.OpOk("")
}
