package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"resume-flow-backend/config"
	"resume-flow-backend/lib/dataset"
	authutils "resume-flow-backend/lib/utils/auth-utils"
	"resume-flow-backend/models"
	authapimodels "resume-flow-backend/models/api/auth"
	domainmodels "resume-flow-backend/models/domain"
)

type Provider interface {
	Login(username, password string) (response authapimodels.JWTResponse, err error)
	Refresh(refreshToken string) (response authapimodels.JWTResponse, err error)
	// GetActiveUser resolves a JWT subject to an active account.
	GetActiveUser(userID string) (*domainmodels.User, error)
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

func (i impl) Login(username, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("username", username)
	user := i.store.UserByUsername(username)
	hash, found := i.store.PasswordHash(username)
	if user == nil || !found {
		logger.Debug("用户不存在")
		return authapimodels.JWTResponse{}, errors.New("用户名或密码错误")
	}
	if authutils.GetMD5Hash(password) != hash {
		logger.Debug("密码校验失败")
		return authapimodels.JWTResponse{}, errors.New("用户名或密码错误")
	}
	if user.Status == models.UserStatusPendingApproval {
		logger.Debug("账户待审批")
		return authapimodels.JWTResponse{}, errors.New("账户待审批，暂不能登录")
	}
	return i.issueTokens(*user)
}

func (i impl) Refresh(refreshToken string) (authapimodels.JWTResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("非法的签名方法")
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return authapimodels.JWTResponse{}, errors.New("刷新令牌无效")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authapimodels.JWTResponse{}, errors.New("刷新令牌无效")
	}
	sub, _ := claims["sub"].(string)
	user, err := i.GetActiveUser(sub)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return i.issueTokens(*user)
}

func (i impl) GetActiveUser(userID string) (*domainmodels.User, error) {
	user := i.store.UserByID(userID)
	if user == nil {
		return nil, errors.New("用户不存在")
	}
	if user.Status != models.UserStatusActive {
		return nil, errors.New("账户未激活")
	}
	return user, nil
}

func (i impl) issueTokens(user domainmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(user.ID, user.GetDisplayName(), user.Role)
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("JWT生成失败")
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.GetDisplayName())
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("刷新令牌生成失败")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
	}, nil
}
