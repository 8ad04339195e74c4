package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"resume-flow-backend/lib/dataset"
	"resume-flow-backend/lib/notify"
	"resume-flow-backend/lib/sla"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

// CreateResumeData is the HR intake form.
type CreateResumeData struct {
	CandidateName       string
	School              string
	GraduationYear      string
	Source              models.ResumeSource
	SchoolTag           models.SchoolTag
	ExcellenceTags      []models.ExcellenceTag
	EducationLevel      models.EducationLevel
	RecruitmentScenario models.RecruitmentScenario
	CandidateType       models.CandidateType
	Skills              []string
	ResumeURL           string
	Remark              string
}

type Provider interface {
	// CreateResume enters a resume into the level-2 pool.
	CreateResume(data CreateResumeData, operator domainmodels.User) (resumeID string, result models.OpResult)
	DistributeToL3(resumeID, l3DepartmentID string, operator domainmodels.User) models.OpResult
	AssignExpert(resumeID, expertID string, operator domainmodels.User) models.OpResult
	// ExpertIdentify records the identification verdict. A rejection reuses
	// the comment as the unfit reason.
	ExpertIdentify(resumeID string, operator domainmodels.User, accepted bool, comment string) models.OpResult
	MarkUnfit(resumeID string, operator domainmodels.User, reason string) models.OpResult
	ReportRejectedToL2(resumeID string, operator domainmodels.User) models.OpResult
	FillContactInfo(resumeID, email, phone string, operator domainmodels.User) models.OpResult
	StartConnection(resumeID string, operator domainmodels.User) models.OpResult
	SubmitExpertFeedback(resumeID, feedback string, operator domainmodels.User) models.OpResult
	ReleaseResume(resumeID string, operator domainmodels.User) models.OpResult
	UpdateProgress(resumeID, progress string, operator domainmodels.User) models.OpResult
	SubmitOverdueReason(resumeID, reason string, operator domainmodels.User) models.OpResult
	// IncrementOverdueCount bumps the per-year counter of userID and
	// escalates on every multiple-of-3 crossing.
	IncrementOverdueCount(userID string)
}

var Instance Provider

func NewHandler(budget sla.Budget) {
	Instance = &impl{
		store:    dataset.Instance,
		notifier: notify.Instance,
		budget:   budget,
	}
}

func NewInstance(store *dataset.Store, notifier notify.Provider, budget sla.Budget) Provider {
	return &impl{
		store:    store,
		notifier: notifier,
		budget:   budget,
	}
}

type impl struct {
	store    *dataset.Store
	notifier notify.Provider
	budget   sla.Budget
}

const (
	msgResumeNotFound  = "简历不存在"
	msgInvalidState    = "当前状态不允许此操作"
	msgPersistFailed   = "保存失败"
	defaultUnfitReason = "专家识别不通过"
	titleOverdueRemind = "超期提醒"
)

func (i *impl) getLogger(resumeID string) *log.Entry {
	return log.WithField("resume_id", resumeID)
}

func (i *impl) logAction(rec domainmodels.Resume, operator domainmodels.User, action models.ActionType, prevStatus models.ResumeStatus, comment string, prevUpdatedAt time.Time) {
	entry := domainmodels.WorkflowLog{
		ID:             uuid.NewString(),
		ResumeID:       rec.ID,
		OperatorID:     operator.ID,
		OperatorName:   operator.GetDisplayName(),
		Action:         action,
		PreviousStatus: prevStatus,
		NewStatus:      rec.Status,
		Comment:        comment,
		CreatedAt:      time.Now(),
	}
	if !prevUpdatedAt.IsZero() {
		entry.DurationSeconds = int(time.Since(prevUpdatedAt).Seconds())
	}
	if err := i.store.AppendWorkflowLog(entry); err != nil {
		i.getLogger(rec.ID).WithError(err).Error("操作日志保存失败")
	}
}

func (i *impl) CreateResume(data CreateResumeData, operator domainmodels.User) (string, models.OpResult) {
	if data.CandidateName == "" {
		return "", models.OpFail("候选人姓名不能为空")
	}
	l2Manager := i.store.L2Manager()
	l2Dept := i.store.DepartmentsByLevel(2)
	now := time.Now()
	rec := domainmodels.Resume{
		ID:                  uuid.NewString(),
		CandidateName:       data.CandidateName,
		School:              data.School,
		GraduationYear:      data.GraduationYear,
		Source:              data.Source,
		SchoolTag:           data.SchoolTag,
		ExcellenceTags:      data.ExcellenceTags,
		EducationLevel:      data.EducationLevel,
		RecruitmentScenario: data.RecruitmentScenario,
		CandidateType:       data.CandidateType,
		Skills:              data.Skills,
		Status:              models.ResumeStatusPoolL2,
		ResumeURL:           data.ResumeURL,
		Remark:              data.Remark,
		UploaderID:          operator.ID,
		UploaderName:        operator.GetDisplayName(),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if l2Manager != nil {
		rec.CurrentHandlerID = l2Manager.ID
		rec.CurrentHandlerName = l2Manager.GetDisplayName()
	}
	if len(l2Dept) != 0 {
		rec.L2DepartmentID = l2Dept[0].ID
		rec.L2DepartmentName = l2Dept[0].Name
	}
	if err := i.store.AppendResume(rec); err != nil {
		i.getLogger(rec.ID).WithError(err).Error("简历录入失败")
		return "", models.OpFail(msgPersistFailed)
	}
	i.logAction(rec, operator, models.ActionUpload, "", "", time.Time{})
	return rec.ID, models.OpOk("简历已录入")
}

func (i *impl) DistributeToL3(resumeID, l3DepartmentID string, operator domainmodels.User) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail(msgResumeNotFound)
	}
	if rec.Status != models.ResumeStatusPoolL2 {
		return models.OpFail(msgInvalidState)
	}
	dept := i.store.DepartmentByID(l3DepartmentID)
	if dept == nil || dept.Level != 3 {
		return models.OpFail("部门不存在")
	}
	assistant := i.store.L3AssistantByDepartment(l3DepartmentID)
	prev := *rec
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.Status = models.ResumeStatusPoolL3
		r.L3DepartmentID = dept.ID
		r.L3DepartmentName = dept.Name
		if assistant != nil {
			r.CurrentHandlerID = assistant.ID
			r.CurrentHandlerName = assistant.GetDisplayName()
		}
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionDistributeL3, prev.Status, "", prev.UpdatedAt)
	if assistant != nil {
		i.notifier.Push(notify.PushData{
			UserID:     assistant.ID,
			ResumeID:   rec.ID,
			ResumeName: rec.CandidateName,
			Title:      "新简历待指派专家",
			Message:    fmt.Sprintf("简历【%s】已分发至您的团队，请指派专家。", rec.CandidateName),
			Type:       models.NotificationTypeInfo,
			Link:       resumeLink(rec.ID),
		})
	}
	return models.OpOk("已分发至三层部门")
}

func (i *impl) AssignExpert(resumeID, expertID string, operator domainmodels.User) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	expert := i.store.UserByID(expertID)
	if rec == nil || expert == nil || expert.Role != models.UserRoleExpert {
		return models.OpFail("简历或专家不存在")
	}
	if rec.Status != models.ResumeStatusPoolL3 {
		return models.OpFail(msgInvalidState)
	}
	prev := *rec
	deadline := i.budget.Deadline(models.ResumeStatusWaitIdentify, time.Now())
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.Status = models.ResumeStatusWaitIdentify
		r.ExpertID = expert.ID
		r.ExpertName = expert.GetDisplayName()
		r.CurrentHandlerID = expert.ID
		r.CurrentHandlerName = expert.GetDisplayName()
		r.SlaDeadline = deadline
		r.IsOverdue = false
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionAssignExpert, prev.Status, "", prev.UpdatedAt)
	i.notifier.Push(notify.PushData{
		UserID:     expert.ID,
		ResumeID:   rec.ID,
		ResumeName: rec.CandidateName,
		Title:      "新简历待识别",
		Message:    fmt.Sprintf("简历【%s】已指派给您，请在%d小时内完成识别。", rec.CandidateName, i.budgetHours(models.ResumeStatusWaitIdentify)),
		Type:       models.NotificationTypeInfo,
		Link:       resumeLink(rec.ID),
	})
	return models.OpOk("已指派专家")
}

func (i *impl) ExpertIdentify(resumeID string, operator domainmodels.User, accepted bool, comment string) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail(msgResumeNotFound)
	}
	if rec.Status != models.ResumeStatusWaitIdentify {
		return models.OpFail(msgInvalidState)
	}
	if operator.Role == models.UserRoleExpert && rec.ExpertID != operator.ID {
		return models.OpFail("只有指派的专家才能进行识别")
	}
	if !accepted {
		reason := comment
		if reason == "" {
			reason = defaultUnfitReason
		}
		return i.MarkUnfit(resumeID, operator, reason)
	}
	l2Manager := i.store.L2Manager()
	prev := *rec
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.Status = models.ResumeStatusWaitContactInfo
		if l2Manager != nil {
			r.CurrentHandlerID = l2Manager.ID
			r.CurrentHandlerName = l2Manager.GetDisplayName()
		}
		if comment != "" {
			r.Remark = comment
		}
		r.SlaDeadline = nil
		r.IsOverdue = false
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionIdentifyYes, prev.Status, comment, prev.UpdatedAt)
	if l2Manager != nil {
		i.notifier.Push(notify.PushData{
			UserID:     l2Manager.ID,
			ResumeID:   rec.ID,
			ResumeName: rec.CandidateName,
			Title:      "待补充联系方式",
			Message:    fmt.Sprintf("简历【%s】识别通过，待补充联系方式。", rec.CandidateName),
			Type:       models.NotificationTypeInfo,
			Link:       resumeLink(rec.ID),
		})
	}
	return models.OpOk("识别结果已提交")
}

func (i *impl) MarkUnfit(resumeID string, operator domainmodels.User, reason string) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail(msgResumeNotFound)
	}
	switch rec.Status {
	case models.ResumeStatusWaitIdentify, models.ResumeStatusWaitConnection, models.ResumeStatusWaitFeedback:
	default:
		return models.OpFail(msgInvalidState)
	}
	assistant := i.store.L3AssistantByDepartment(rec.L3DepartmentID)
	prev := *rec
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.Status = models.ResumeStatusRejected
		r.Remark = fmt.Sprintf("不合适：%s", reason)
		if assistant != nil {
			r.CurrentHandlerID = assistant.ID
			r.CurrentHandlerName = assistant.GetDisplayName()
		}
		r.SlaDeadline = nil
		r.IsOverdue = false
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionIdentifyNo, prev.Status, reason, prev.UpdatedAt)
	if assistant != nil {
		i.notifier.Push(notify.PushData{
			UserID:     assistant.ID,
			ResumeID:   rec.ID,
			ResumeName: rec.CandidateName,
			Title:      "待办：候选人不合适待上报",
			Message:    fmt.Sprintf("简历【%s】已被标记不合适，请上报二层。", rec.CandidateName),
			Type:       models.NotificationTypeWarning,
			Link:       resumeLink(rec.ID),
		})
	}
	return models.OpOk("已标记不合适并回流三层助理")
}

func (i *impl) ReportRejectedToL2(resumeID string, operator domainmodels.User) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail(msgResumeNotFound)
	}
	if rec.Status != models.ResumeStatusRejected {
		return models.OpFail("当前不是待上报状态")
	}
	l2Manager := i.store.L2Manager()
	prev := *rec
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.Status = models.ResumeStatusPoolL2
		if l2Manager != nil {
			r.CurrentHandlerID = l2Manager.ID
			r.CurrentHandlerName = l2Manager.GetDisplayName()
		}
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionReportL2, prev.Status, "", prev.UpdatedAt)
	if l2Manager != nil {
		i.notifier.Push(notify.PushData{
			UserID:     l2Manager.ID,
			ResumeID:   rec.ID,
			ResumeName: rec.CandidateName,
			Title:      "三层已上报不合适简历",
			Message:    fmt.Sprintf("简历【%s】已上报至二层，请确认后续处理。", rec.CandidateName),
			Type:       models.NotificationTypeInfo,
			Link:       resumeLink(rec.ID),
		})
	}
	return models.OpOk("已上报至二层经理")
}

func (i *impl) FillContactInfo(resumeID, email, phone string, operator domainmodels.User) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail(msgResumeNotFound)
	}
	if rec.Status != models.ResumeStatusWaitContactInfo {
		return models.OpFail(msgInvalidState)
	}
	if email == "" && phone == "" {
		return models.OpFail("至少需要填写邮箱或电话")
	}
	prev := *rec
	deadline := i.budget.Deadline(models.ResumeStatusWaitConnection, time.Now())
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.Status = models.ResumeStatusWaitConnection
		r.Email = email
		r.Phone = phone
		r.CurrentHandlerID = r.ExpertID
		r.CurrentHandlerName = r.ExpertName
		r.SlaDeadline = deadline
		r.IsOverdue = false
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionFillContact, prev.Status, "", prev.UpdatedAt)
	if rec.ExpertID != "" {
		i.notifier.Push(notify.PushData{
			UserID:     rec.ExpertID,
			ResumeID:   rec.ID,
			ResumeName: rec.CandidateName,
			Title:      "请联系候选人",
			Message:    fmt.Sprintf("简历【%s】的联系方式已填写，请在%d小时内完成建联。", rec.CandidateName, i.budgetHours(models.ResumeStatusWaitConnection)),
			Type:       models.NotificationTypeWarning,
			Link:       resumeLink(rec.ID),
		})
	}
	return models.OpOk("联系方式已保存")
}

func (i *impl) StartConnection(resumeID string, operator domainmodels.User) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail(msgResumeNotFound)
	}
	if rec.Status != models.ResumeStatusWaitConnection {
		return models.OpFail(msgInvalidState)
	}
	prev := *rec
	deadline := i.budget.Deadline(models.ResumeStatusWaitFeedback, time.Now())
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.Status = models.ResumeStatusWaitFeedback
		r.SlaDeadline = deadline
		r.IsOverdue = false
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionConnectStart, prev.Status, "", prev.UpdatedAt)
	return models.OpOk("已开始建联")
}

func (i *impl) SubmitExpertFeedback(resumeID, feedback string, operator domainmodels.User) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail(msgResumeNotFound)
	}
	if rec.Status != models.ResumeStatusWaitFeedback {
		return models.OpFail(msgInvalidState)
	}
	prev := *rec
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.Status = models.ResumeStatusArchived
		r.Remark = feedback
		r.CurrentHandlerID = ""
		r.CurrentHandlerName = ""
		r.SlaDeadline = nil
		r.IsOverdue = false
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionFeedback, prev.Status, feedback, prev.UpdatedAt)
	return models.OpOk("反馈已提交并归档")
}

func (i *impl) ReleaseResume(resumeID string, operator domainmodels.User) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail(msgResumeNotFound)
	}
	if rec.Status.IsTerminal() {
		return models.OpFail(msgInvalidState)
	}
	prev := *rec
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.Status = models.ResumeStatusReleased
		r.CurrentHandlerID = ""
		r.CurrentHandlerName = ""
		r.ExpertID = ""
		r.ExpertName = ""
		r.L3DepartmentID = ""
		r.L3DepartmentName = ""
		r.SlaDeadline = nil
		r.IsOverdue = false
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionRelease, prev.Status, "", prev.UpdatedAt)
	return models.OpOk("简历已释放到资源池")
}

func (i *impl) UpdateProgress(resumeID, progress string, operator domainmodels.User) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail(msgResumeNotFound)
	}
	prev := *rec
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.Remark = progress
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionProgress, prev.Status, progress, prev.UpdatedAt)
	return models.OpOk("进展已保存")
}

func (i *impl) SubmitOverdueReason(resumeID, reason string, operator domainmodels.User) models.OpResult {
	rec := i.store.ResumeByID(resumeID)
	if rec == nil {
		return models.OpFail(msgResumeNotFound)
	}
	if !rec.IsOverdue {
		return models.OpFail("简历未超期")
	}
	prev := *rec
	ok := i.mutate(resumeID, func(r *domainmodels.Resume) {
		r.OverdueReason = reason
		r.UpdatedAt = time.Now()
	})
	if !ok.OK {
		return ok
	}
	i.logAction(i.current(resumeID, prev), operator, models.ActionOverdueReason, prev.Status, reason, prev.UpdatedAt)
	return models.OpOk("超期原因已保存")
}

func (i *impl) IncrementOverdueCount(userID string) {
	currentYear := time.Now().Year()
	var updated *domainmodels.User
	found, err := i.store.UpdateUser(userID, func(u *domainmodels.User) {
		if u.OverdueCountYear != currentYear {
			u.OverdueCount = 0
		}
		u.OverdueCount++
		u.OverdueCountYear = currentYear
		rec := *u
		updated = &rec
	})
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("超期计数更新失败")
		return
	}
	if !found || updated == nil {
		return
	}
	if updated.OverdueCount%3 != 0 {
		return
	}
	msg := fmt.Sprintf("%s【%s】本年超期次数已达 %d 次", updated.Role.ToHuman(), updated.GetDisplayName(), updated.OverdueCount)
	l2Manager := i.store.L2Manager()
	switch updated.Role {
	case models.UserRoleExpert:
		if assistant := i.store.L3AssistantByDepartment(updated.DepartmentID); assistant != nil {
			i.notifier.Push(notify.PushData{
				UserID:  assistant.ID,
				Title:   titleOverdueRemind,
				Message: msg,
				Type:    models.NotificationTypeWarning,
			})
		}
		if l2Manager != nil {
			i.notifier.Push(notify.PushData{
				UserID:  l2Manager.ID,
				Title:   titleOverdueRemind,
				Message: msg,
				Type:    models.NotificationTypeWarning,
			})
		}
	case models.UserRoleL3Assistant:
		if l2Manager != nil {
			i.notifier.Push(notify.PushData{
				UserID:  l2Manager.ID,
				Title:   titleOverdueRemind,
				Message: msg,
				Type:    models.NotificationTypeWarning,
			})
		}
	}
}

// mutate wraps the store update so every transition reports persistence
// problems the same way.
func (i *impl) mutate(resumeID string, fn func(*domainmodels.Resume)) models.OpResult {
	found, err := i.store.UpdateResume(resumeID, fn)
	if err != nil {
		i.getLogger(resumeID).WithError(err).Error("简历更新失败")
		return models.OpFail(msgPersistFailed)
	}
	if !found {
		return models.OpFail(msgResumeNotFound)
	}
	return models.OpOk("")
}

// current reads back the record after a successful mutate for the audit
// entry; falls back to the pre-image if the read races a delete.
func (i *impl) current(resumeID string, fallback domainmodels.Resume) domainmodels.Resume {
	if rec := i.store.ResumeByID(resumeID); rec != nil {
		return *rec
	}
	return fallback
}

func (i *impl) budgetHours(status models.ResumeStatus) int {
	return int(i.budget[status].Hours())
}

func resumeLink(resumeID string) string {
	return "/resumes/" + resumeID
}
