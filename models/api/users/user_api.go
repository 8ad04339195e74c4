package userapimodels

import (
	"github.com/pkg/errors"

	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

type CreateRequest struct {
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Role         models.UserRole `json:"role"`
	DepartmentID string          `json:"department_id"`
	Password     string          `json:"password"`
}

func (r CreateRequest) Validate() error {
	if r.Username == "" {
		return errors.New("用户名不能为空")
	}
	if r.Password == "" {
		return errors.New("密码不能为空")
	}
	if !r.Role.IsValid() {
		return errors.New("角色无效")
	}
	return nil
}

type ProfileUpdateRequest struct {
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
	NewPassword *string `json:"new_password"`
}

// View hides the audit fields and adds the readable role name.
type View struct {
	ID             string            `json:"id"`
	Username       string            `json:"username"`
	DisplayName    string            `json:"display_name,omitempty"`
	Email          string            `json:"email"`
	Role           models.UserRole   `json:"role"`
	RoleHuman      string            `json:"role_human"`
	DepartmentID   string            `json:"department_id"`
	DepartmentName string            `json:"department_name"`
	Status         models.UserStatus `json:"status"`
	OverdueCount   int               `json:"overdue_count"`
}

func NewView(user domainmodels.User) View {
	return View{
		ID:             user.ID,
		Username:       user.Username,
		DisplayName:    user.DisplayName,
		Email:          user.Email,
		Role:           user.Role,
		RoleHuman:      user.Role.ToHuman(),
		DepartmentID:   user.DepartmentID,
		DepartmentName: user.DepartmentName,
		Status:         user.Status,
		OverdueCount:   user.OverdueCount,
	}
}

func NewViewList(list []domainmodels.User) []View {
	views := make([]View, 0, len(list))
	for _, user := range list {
		views = append(views, NewView(user))
	}
	return views
}
