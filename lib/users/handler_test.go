package users

import (
	"testing"

	"github.com/stretchr/testify/require"

	"resume-flow-backend/lib/dataset"
	memkvstore "resume-flow-backend/lib/keyval/mem-store"
	authutils "resume-flow-backend/lib/utils/auth-utils"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

func newTestHandler(t *testing.T) (Provider, *dataset.Store) {
	store, err := dataset.NewInstance(memkvstore.NewInstance())
	require.Nil(t, err)
	return NewInstance(store), store
}

func mustUser(t *testing.T, store *dataset.Store, username string) domainmodels.User {
	rec := store.UserByUsername(username)
	require.NotNil(t, rec)
	return *rec
}

func TestListByRole(t *testing.T) {
	handler, store := newTestHandler(t)

	t.Run(`admin and hr see everyone`, func(t *testing.T) {
		require.Len(t, handler.ListByRole(mustUser(t, store, "admin")), 48)
		require.Len(t, handler.ListByRole(mustUser(t, store, "hr")), 48)
	})

	t.Run(`manager sees assistants and experts`, func(t *testing.T) {
		list := handler.ListByRole(mustUser(t, store, "l2_manager_1"))
		require.Len(t, list, 45)
		for _, user := range list {
			require.Contains(t, []models.UserRole{models.UserRoleL3Assistant, models.UserRoleExpert}, user.Role)
		}
	})

	t.Run(`assistant sees own experts only`, func(t *testing.T) {
		list := handler.ListByRole(mustUser(t, store, "l3_assistant_a"))
		require.Len(t, list, 2)
		for _, user := range list {
			require.Equal(t, models.UserRoleExpert, user.Role)
			require.Equal(t, "dept-l3-a", user.DepartmentID)
		}
	})

	t.Run(`expert sees nobody`, func(t *testing.T) {
		require.Empty(t, handler.ListByRole(mustUser(t, store, "expert_a_1")))
	})
}

func TestCreate(t *testing.T) {
	handler, store := newTestHandler(t)
	admin := mustUser(t, store, "admin")

	t.Run(`direct creation activates immediately`, func(t *testing.T) {
		userID, result := handler.Create(CreateUserData{
			Username:     "expert_direct",
			Email:        "direct@company.com",
			Role:         models.UserRoleExpert,
			DepartmentID: "dept-l3-b",
			Password:     "pass123",
		}, admin)
		require.True(t, result.OK, result.Message)
		require.NotEmpty(t, userID)

		user := store.UserByID(userID)
		require.Equal(t, models.UserStatusActive, user.Status)
		require.Equal(t, "三层部门B", user.DepartmentName)

		hash, found := store.PasswordHash("expert_direct")
		require.True(t, found)
		require.Equal(t, authutils.GetMD5Hash("pass123"), hash)
	})

	t.Run(`duplicate username`, func(t *testing.T) {
		_, result := handler.Create(CreateUserData{
			Username:     "hr",
			Role:         models.UserRoleExpert,
			DepartmentID: "dept-l3-b",
			Password:     "pass123",
		}, admin)
		require.False(t, result.OK)
		require.Equal(t, "用户名已存在", result.Message)
	})

	t.Run(`invalid role`, func(t *testing.T) {
		_, result := handler.Create(CreateUserData{
			Username:     "someone",
			Role:         "SUPERVISOR",
			DepartmentID: "dept-l3-b",
			Password:     "pass123",
		}, admin)
		require.False(t, result.OK)
		require.Equal(t, "角色无效", result.Message)
	})

	t.Run(`unknown department`, func(t *testing.T) {
		_, result := handler.Create(CreateUserData{
			Username:     "someone",
			Role:         models.UserRoleExpert,
			DepartmentID: "dept-nope",
			Password:     "pass123",
		}, admin)
		require.False(t, result.OK)
		require.Equal(t, "部门不存在", result.Message)
	})
}

func TestUpdateProfile(t *testing.T) {
	handler, store := newTestHandler(t)
	expert := mustUser(t, store, "expert_a_1")

	displayName := "张老师"
	email := "zhang@company.com"
	password := "new-pass"
	result := handler.UpdateProfile(expert.ID, ProfileUpdateData{
		DisplayName: &displayName,
		Email:       &email,
		NewPassword: &password,
	})
	require.True(t, result.OK, result.Message)

	got := store.UserByID(expert.ID)
	require.Equal(t, "张老师", got.DisplayName)
	require.Equal(t, "zhang@company.com", got.Email)

	hash, found := store.PasswordHash("expert_a_1")
	require.True(t, found)
	require.Equal(t, authutils.GetMD5Hash("new-pass"), hash)
}
