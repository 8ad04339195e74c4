package domainmodels

import (
	"time"

	"resume-flow-backend/models"
)

// AccountApprovalRequest is one-shot: once reviewed it never changes again.
type AccountApprovalRequest struct {
	ID                   string               `json:"id"`
	RequestType          models.RequestType   `json:"request_type"`
	ApplicantID          string               `json:"applicant_id"`
	ApplicantName        string               `json:"applicant_name"`
	ApplicantRole        models.UserRole      `json:"applicant_role"`
	TargetRole           models.UserRole      `json:"target_role"`
	TargetUsername       string               `json:"target_username"`
	TargetEmail          string               `json:"target_email"`
	TargetDepartmentID   string               `json:"target_department_id"`
	TargetDepartmentName string               `json:"target_department_name"`
	TargetPassword       string               `json:"target_password"`
	Reason               string               `json:"reason,omitempty"`
	Status               models.RequestStatus `json:"status"`
	ReviewedByID         string               `json:"reviewed_by_id,omitempty"`
	ReviewedByName       string               `json:"reviewed_by_name,omitempty"`
	ReviewComment        string               `json:"review_comment,omitempty"`
	ReviewedAt           *time.Time           `json:"reviewed_at,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
}
