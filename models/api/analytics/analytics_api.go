package analyticsapimodels

import "resume-flow-backend/models"

type DepartmentStat struct {
	Total      int `json:"total"`       //部门简历总数
	Overdue    int `json:"overdue"`     //超期数量
	InProgress int `json:"in_progress"` //流转中数量
}

type OverdueUser struct {
	UserID         string          `json:"user_id"`
	Username       string          `json:"username"`
	DisplayName    string          `json:"display_name,omitempty"`
	DepartmentName string          `json:"department_name,omitempty"`
	Role           models.UserRole `json:"role"`
	RoleHuman      string          `json:"role_human"`
	Count          int             `json:"count"` //本年超期次数
}

type Summary struct {
	ByStatus         map[string]int            `json:"by_status"`
	BySource         map[string]int            `json:"by_source"`
	ByDepartment     map[string]DepartmentStat `json:"by_department"`
	ReleasedBySource map[string]int            `json:"released_by_source"`
	OverdueUsers     []OverdueUser             `json:"overdue_users"`
}
