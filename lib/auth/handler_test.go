package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"resume-flow-backend/config"
	"resume-flow-backend/lib/dataset"
	memkvstore "resume-flow-backend/lib/keyval/mem-store"
	"resume-flow-backend/models"
	domainmodels "resume-flow-backend/models/domain"
)

func newTestHandler(t *testing.T) (Provider, *dataset.Store) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	config.Conf.Auth.JWTRefreshExpireInSec = 86400

	store, err := dataset.NewInstance(memkvstore.NewInstance())
	require.Nil(t, err)
	return NewInstance(store), store
}

func TestLogin(t *testing.T) {
	handler, store := newTestHandler(t)

	t.Run(`seeded account`, func(t *testing.T) {
		response, err := handler.Login("hr", "123")
		require.Nil(t, err)
		require.NotEmpty(t, response.Token)
		require.NotEmpty(t, response.RefreshToken)
	})

	t.Run(`wrong password`, func(t *testing.T) {
		_, err := handler.Login("hr", "wrong")
		require.NotNil(t, err)
		require.Equal(t, "用户名或密码错误", err.Error())
	})

	t.Run(`unknown user`, func(t *testing.T) {
		_, err := handler.Login("nobody", "123")
		require.NotNil(t, err)
		require.Equal(t, "用户名或密码错误", err.Error())
	})

	t.Run(`pending account cannot login`, func(t *testing.T) {
		require.Nil(t, store.AppendUser(domainmodels.User{
			ID:       "user-pending",
			Username: "pending_expert",
			Role:     models.UserRoleExpert,
			Status:   models.UserStatusPendingApproval,
		}))
		require.Nil(t, store.SetPasswordHash("pending_expert", "202cb962ac59075b964b07152d234b70"))

		_, err := handler.Login("pending_expert", "123")
		require.NotNil(t, err)
		require.Equal(t, "账户待审批，暂不能登录", err.Error())
	})
}

func TestRefresh(t *testing.T) {
	handler, _ := newTestHandler(t)

	response, err := handler.Login("admin", "123")
	require.Nil(t, err)

	t.Run(`valid refresh token rotates the pair`, func(t *testing.T) {
		rotated, err := handler.Refresh(response.RefreshToken)
		require.Nil(t, err)
		require.NotEmpty(t, rotated.Token)
		require.NotEmpty(t, rotated.RefreshToken)
	})

	t.Run(`garbage token rejected`, func(t *testing.T) {
		_, err := handler.Refresh("not-a-jwt")
		require.NotNil(t, err)
		require.Equal(t, "刷新令牌无效", err.Error())
	})
}

func TestGetActiveUser(t *testing.T) {
	handler, store := newTestHandler(t)

	admin := store.UserByUsername("admin")
	got, err := handler.GetActiveUser(admin.ID)
	require.Nil(t, err)
	require.Equal(t, "admin", got.Username)

	_, err = handler.GetActiveUser("no-such")
	require.NotNil(t, err)
}
