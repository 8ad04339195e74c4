package models

type UserRole string

const (
	UserRoleHR          UserRole = "HR"
	UserRoleL2Manager   UserRole = "L2_MANAGER"
	UserRoleL3Assistant UserRole = "L3_ASSISTANT"
	UserRoleExpert      UserRole = "EXPERT"
	UserRoleAdmin       UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleHR:          "HR",
	UserRoleL2Manager:   "二层经理",
	UserRoleL3Assistant: "三层助理",
	UserRoleExpert:      "专家",
	UserRoleAdmin:       "管理员",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) HasFullVisibility() bool {
	return r == UserRoleAdmin || r == UserRoleHR
}

type UserStatus string

const (
	UserStatusActive          UserStatus = "ACTIVE"
	UserStatusPendingApproval UserStatus = "PENDING_APPROVAL"
)
