package resumeapimodels

import (
	"time"

	"github.com/pkg/errors"

	"resume-flow-backend/lib/sla"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

type CreateRequest struct {
	CandidateName       string                     `json:"candidate_name"` //候选人姓名
	School              string                     `json:"school"`
	GraduationYear      string                     `json:"graduation_year"`
	Source              models.ResumeSource        `json:"source"` //来源渠道 A-G
	SchoolTag           models.SchoolTag           `json:"school_tag"`
	ExcellenceTags      []models.ExcellenceTag     `json:"excellence_tags"`
	EducationLevel      models.EducationLevel      `json:"education_level"`
	RecruitmentScenario models.RecruitmentScenario `json:"recruitment_scenario"`
	CandidateType       models.CandidateType       `json:"candidate_type"`
	Skills              []string                   `json:"skills"`
	Remark              string                     `json:"remark"`
}

func (r CreateRequest) Validate() error {
	if r.CandidateName == "" {
		return errors.New("候选人姓名不能为空")
	}
	if !r.Source.IsValid() {
		return errors.New("来源渠道无效")
	}
	return nil
}

type DistributeRequest struct {
	L3DepartmentID string `json:"l3_department_id"` //目标三层部门
}

type AssignRequest struct {
	ExpertID string `json:"expert_id"`
}

type IdentifyRequest struct {
	Accepted bool   `json:"accepted"` //识别是否通过
	Comment  string `json:"comment"`
}

type ContactRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback"`
}

type UnfitRequest struct {
	Reason string `json:"reason"`
}

type ProgressRequest struct {
	Progress string `json:"progress"`
}

type OverdueReasonRequest struct {
	Reason string `json:"reason"`
}

// View decorates a resume with the display fields the clients render.
type View struct {
	domainmodels.Resume
	StatusHuman string `json:"status_human"`
	SourceHuman string `json:"source_human"`
	IsNearSla   bool   `json:"is_near_sla"`
	DueIn24h    bool   `json:"due_in_24h"`
	OverdueDays *int   `json:"overdue_days,omitempty"`
}

func NewView(rec domainmodels.Resume, budget sla.Budget, now time.Time) View {
	return View{
		Resume:      rec,
		StatusHuman: rec.Status.ToHuman(),
		SourceHuman: rec.Source.ToHuman(),
		IsNearSla:   budget.IsNearSla(rec, now),
		DueIn24h:    sla.DueIn24Hours(rec, now),
		OverdueDays: sla.OverdueDays(rec, now),
	}
}

func NewViewList(list []domainmodels.Resume, budget sla.Budget) []View {
	now := time.Now()
	views := make([]View, 0, len(list))
	for _, rec := range list {
		views = append(views, NewView(rec, budget, now))
	}
	return views
}
