package domainmodels

import (
	"time"

	"resume-flow-backend/models"
)

type User struct {
	ID             string            `json:"id"`
	Username       string            `json:"username"`
	DisplayName    string            `json:"display_name,omitempty"`
	Email          string            `json:"email"`
	Role           models.UserRole   `json:"role"`
	DepartmentID   string            `json:"department_id"`
	DepartmentName string            `json:"department_name"`
	Status         models.UserStatus `json:"status"`
	// OverdueCount is a per-year counter; OverdueCountYear records the year
	// the counter belongs to so a rollover resets it.
	OverdueCount     int       `json:"overdue_count,omitempty"`
	OverdueCountYear int       `json:"overdue_count_year,omitempty"`
	CreatedByID      string    `json:"created_by_id,omitempty"`
	CreatedByName    string    `json:"created_by_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u User) GetDisplayName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
