package approvalapimodels

import (
	"github.com/pkg/errors"

	"resume-flow-backend/models"
)

type SubmitRequest struct {
	RequestType      models.RequestType `json:"request_type"` //CREATE_L3_ASSISTANT / CREATE_EXPERT
	TargetUsername   string             `json:"target_username"`
	TargetEmail      string             `json:"target_email"`
	TargetDepartment string             `json:"target_department_id"`
	TargetPassword   string             `json:"target_password"`
	Reason           string             `json:"reason"`
}

func (r SubmitRequest) Validate() error {
	if r.RequestType != models.RequestTypeCreateL3Assistant && r.RequestType != models.RequestTypeCreateExpert {
		return errors.New("申请类型无效")
	}
	if r.TargetUsername == "" {
		return errors.New("用户名不能为空")
	}
	if r.TargetPassword == "" {
		return errors.New("密码不能为空")
	}
	return nil
}

type ReviewRequest struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment"`
}
