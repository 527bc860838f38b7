package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret",
		Expiry:    time.Hour,
	})

	token, err := tm.Generate("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, DefaultTokenIssuer, claims.Issuer)
}

func TestTokenManager_ParseRejectsTamperedToken(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "test-secret"})

	token, err := tm.Generate("admin")
	require.NoError(t, err)

	// 篡改签名
	_, err = tm.Parse(token + "x")
	assert.Error(t, err)
}

func TestTokenManager_ParseRejectsWrongKey(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "key-one"})
	other := NewTokenManager(TokenConfig{SecretKey: "key-two"})

	token, err := tm.Generate("admin")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_ParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "test-secret",
		Expiry:    -time.Minute, // 已过期
	})

	token, err := tm.Generate("admin")
	require.NoError(t, err)

	err = tm.Validate(token)
	assert.Error(t, err)
}
