package service

import (
	"context"
	"testing"
	"time"

	"github.com/mynote/mynote-service/internal/dto"
	"github.com/mynote/mynote-service/pkg/app"
	"github.com/mynote/mynote-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService() AuthService {
	tm := app.NewTokenManager(app.TokenConfig{
		SecretKey: "test-key",
		Expiry:    time.Hour,
	})
	return NewAuthService(tm, zap.NewNop(), &ServiceConfig{
		Admin: AdminServiceConfig{Username: "admin", Password: "changeme"},
	})
}

func TestAuthLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	got, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "changeme"})
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.NotEmpty(t, got.Token)
	assert.Equal(t, "admin", got.User.Username)
	assert.True(t, got.User.IsAdmin)
}

func TestAuthLoginWrongCredentials(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	for name, req := range map[string]*dto.LoginRequest{
		"wrong password": {Username: "admin", Password: "nope"},
		"wrong username": {Username: "root", Password: "changeme"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(ctx, req)
			assert.ErrorIs(t, err, code.ErrorInvalidCredentials)
		})
	}
}

func TestAuthVerify(t *testing.T) {
	svc := newTestAuthService()

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "changeme"})
	require.NoError(t, err)

	assert.True(t, svc.Verify(login.Token).IsAdmin)

	// 无效或缺失的令牌降级为匿名，不报错
	assert.False(t, svc.Verify("").IsAdmin)
	assert.False(t, svc.Verify("garbage.token.value").IsAdmin)
}
