package domainmodels

import (
	"time"

	"resume-flow-backend/models"
)

// Notification is immutable once created except for the IsRead flag.
type Notification struct {
	ID         string                  `json:"id"`
	UserID     string                  `json:"user_id"`
	ResumeID   string                  `json:"resume_id,omitempty"`
	ResumeName string                  `json:"resume_name,omitempty"`
	Title      string                  `json:"title"`
	Message    string                  `json:"message"`
	Type       models.NotificationType `json:"type"`
	IsRead     bool                    `json:"is_read"`
	// CurrentHandler/CurrentStage/OverdueTime carry the reminder context the
	// L2 manager copies into escalation mails.
	CurrentHandler string    `json:"current_handler,omitempty"`
	CurrentStage   string    `json:"current_stage,omitempty"`
	OverdueTime    string    `json:"overdue_time,omitempty"`
	Link           string    `json:"link,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
