package domainmodels

import (
	"time"

	"resume-flow-backend/models"
)

type Resume struct {
	ID            string `json:"id"`
	CandidateName string `json:"candidate_name"`
	School        string `json:"school,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
	// Email/Phone are filled by the L2 manager at the WAIT_CONTACT_INFO stage.
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	Source              models.ResumeSource        `json:"source"`
	SchoolTag           models.SchoolTag           `json:"school_tag,omitempty"`
	ExcellenceTags      []models.ExcellenceTag     `json:"excellence_tags,omitempty"`
	EducationLevel      models.EducationLevel      `json:"education_level,omitempty"`
	RecruitmentScenario models.RecruitmentScenario `json:"recruitment_scenario,omitempty"`
	CandidateType       models.CandidateType       `json:"candidate_type,omitempty"`
	Skills              []string                   `json:"skills,omitempty"`

	Status             models.ResumeStatus `json:"status"`
	CurrentHandlerID   string              `json:"current_handler_id,omitempty"`
	CurrentHandlerName string              `json:"current_handler_name,omitempty"`
	// ExpertID is sticky: it survives re-identification and is cleared only
	// when the resume is released.
	ExpertID         string `json:"expert_id,omitempty"`
	ExpertName       string `json:"expert_name,omitempty"`
	L2DepartmentID   string `json:"l2_department_id,omitempty"`
	L2DepartmentName string `json:"l2_department_name,omitempty"`
	L3DepartmentID   string `json:"l3_department_id,omitempty"`
	L3DepartmentName string `json:"l3_department_name,omitempty"`

	// SlaDeadline is set only while the status carries an SLA budget.
	SlaDeadline *time.Time `json:"sla_deadline,omitempty"`
	// IsOverdue is the acknowledged-overdue marker set by the SLA worker;
	// display freshness is derived from SlaDeadline instead.
	IsOverdue     bool   `json:"is_overdue"`
	OverdueReason string `json:"overdue_reason,omitempty"`

	Remark       string    `json:"remark,omitempty"`
	ResumeURL    string    `json:"resume_url,omitempty"`
	UploaderID   string    `json:"uploader_id"`
	UploaderName string    `json:"uploader_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r Resume) Clone() Resume {
	out := r
	if r.ExcellenceTags != nil {
		out.ExcellenceTags = append([]models.ExcellenceTag{}, r.ExcellenceTags...)
	}
	if r.Skills != nil {
		out.Skills = append([]string{}, r.Skills...)
	}
	if r.SlaDeadline != nil {
		deadline := *r.SlaDeadline
		out.SlaDeadline = &deadline
	}
	return out
}
