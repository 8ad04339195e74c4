package users

import (
	"time"

	"github.com/google/uuid"

	"resume-flow-backend/lib/dataset"
	authutils "resume-flow-backend/lib/utils/auth-utils"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

// CreateUserData is the direct-creation form used by ADMIN and HR;
// other roles go through the approval flow instead.
type CreateUserData struct {
	Username     string
	Email        string
	Role         models.UserRole
	DepartmentID string
	Password     string
}

type ProfileUpdateData struct {
	DisplayName *string
	Email       *string
	NewPassword *string
}

type Provider interface {
	ListByRole(viewer domainmodels.User) []domainmodels.User
	GetByID(userID string) *domainmodels.User
	Create(data CreateUserData, creator domainmodels.User) (userID string, result models.OpResult)
	UpdateProfile(userID string, data ProfileUpdateData) models.OpResult
}

var Instance Provider

func NewHandler() {
	Instance = impl{store: dataset.Instance}
}

func NewInstance(store *dataset.Store) Provider {
	return impl{store: store}
}

type impl struct {
	store *dataset.Store
}

func (i impl) ListByRole(viewer domainmodels.User) []domainmodels.User {
	list := []domainmodels.User{}
	for _, user := range i.store.Users() {
		if userVisibleTo(user, viewer) {
			list = append(list, user)
		}
	}
	return list
}

func (i impl) GetByID(userID string) *domainmodels.User {
	return i.store.UserByID(userID)
}

func (i impl) Create(data CreateUserData, creator domainmodels.User) (string, models.OpResult) {
	if data.Username == "" || data.Password == "" {
		return "", models.OpFail("用户名和密码不能为空")
	}
	if !data.Role.IsValid() {
		return "", models.OpFail("角色无效")
	}
	if i.store.UserByUsername(data.Username) != nil {
		return "", models.OpFail("用户名已存在")
	}
	dept := i.store.DepartmentByID(data.DepartmentID)
	if dept == nil {
		return "", models.OpFail("部门不存在")
	}
	user := domainmodels.User{
		ID:             uuid.NewString(),
		Username:       data.Username,
		Email:          data.Email,
		Role:           data.Role,
		DepartmentID:   dept.ID,
		DepartmentName: dept.Name,
		Status:         models.UserStatusActive,
		CreatedByID:    creator.ID,
		CreatedByName:  creator.GetDisplayName(),
		CreatedAt:      time.Now(),
	}
	if err := i.store.AppendUser(user); err != nil {
		return "", models.OpFail(err.Error())
	}
	if err := i.store.SetPasswordHash(user.Username, authutils.GetMD5Hash(data.Password)); err != nil {
		return user.ID, models.OpFail(err.Error())
	}
	return user.ID, models.OpOk("创建成功并已激活")
}

func (i impl) UpdateProfile(userID string, data ProfileUpdateData) models.OpResult {
	target := i.store.UserByID(userID)
	if target == nil {
		return models.OpFail("用户不存在")
	}
	found, err := i.store.UpdateUser(userID, func(u *domainmodels.User) {
		if data.DisplayName != nil {
			u.DisplayName = *data.DisplayName
		}
		if data.Email != nil {
			u.Email = *data.Email
		}
	})
	if err != nil {
		return models.OpFail(err.Error())
	}
	if !found {
		return models.OpFail("用户不存在")
	}
	if data.NewPassword != nil && *data.NewPassword != "" {
		if err = i.store.SetPasswordHash(target.Username, authutils.GetMD5Hash(*data.NewPassword)); err != nil {
			return models.OpFail(err.Error())
		}
	}
	return models.OpOk("个人信息已更新")
}

func userVisibleTo(user domainmodels.User, viewer domainmodels.User) bool {
	switch viewer.Role {
	case models.UserRoleAdmin, models.UserRoleHR:
		return true
	case models.UserRoleL2Manager:
		return user.Role == models.UserRoleL3Assistant || user.Role == models.UserRoleExpert
	case models.UserRoleL3Assistant:
		return user.Role == models.UserRoleExpert && user.DepartmentID == viewer.DepartmentID
	}
	return false
}
