package authapimodels

import (
	"github.com/pkg/errors"

	"resume-flow-backend/models"
)

type LoginRequest struct {
	Username string `json:"username"` //登录名
	Password string `json:"password"` //密码
}

func (r LoginRequest) Validate() error {
	if r.Username == "" {
		return errors.New("用户名不能为空")
	}
	if r.Password == "" {
		return errors.New("密码不能为空")
	}
	return nil
}

type JWTResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type MeResponse struct {
	ID             string          `json:"id"`
	Username       string          `json:"username"`
	DisplayName    string          `json:"display_name,omitempty"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	RoleHuman      string          `json:"role_human"`
	DepartmentID   string          `json:"department_id"`
	DepartmentName string          `json:"department_name"`
}
