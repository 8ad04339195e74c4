package domainmodels

import (
	"time"

	"resume-flow-backend/models"
)

type WorkflowLog struct {
	ID             string              `json:"id"`
	ResumeID       string              `json:"resume_id"`
	OperatorID     string              `json:"operator_id"`
	OperatorName   string              `json:"operator_name,omitempty"`
	Action         models.ActionType   `json:"action"`
	PreviousStatus models.ResumeStatus `json:"previous_status,omitempty"`
	NewStatus      models.ResumeStatus `json:"new_status,omitempty"`
	Comment        string              `json:"comment,omitempty"`
	// DurationSeconds is the time the resume spent in the previous status.
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
