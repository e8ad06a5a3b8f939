package service

import (
	"Pictogram/internal/api/config"
	"Pictogram/internal/api/dto"
	"Pictogram/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (UserService, func()) {
	t.Helper()
	db := newServiceTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db), repository.NewPostRepo(db))

	// 签发 Token 需要 JWT 配置
	prev := config.Cfg
	config.Cfg = &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpirationHours: 1}}
	return svc, func() { config.Cfg = prev }
}

func TestRegisterAndLogin(t *testing.T) {
	svc, restore := newUserService(t)
	defer restore()
	ctx := context.Background()

	token, err := svc.Register(ctx, &dto.RegisterReq{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, "alice", token.Username)

	// 正确密码登录成功
	logged, err := svc.Login(ctx, &dto.LoginReq{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, token.UserID, logged.UserID)

	// 错误密码与不存在的用户返回同一个错误
	_, err = svc.Login(ctx, &dto.LoginReq{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
	_, err = svc.Login(ctx, &dto.LoginReq{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, restore := newUserService(t)
	defer restore()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterReq{Username: "alice", Email: "a@example.com", Password: "password-1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterReq{Username: "alice", Email: "b@example.com", Password: "password-2"})
	assert.ErrorIs(t, err, ErrUserUsernameExist)
}
