package services

import (
	"testing"

	"sentinel-vault-service/config"
	"sentinel-vault-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:       7,
		Email:    "ops@rescue.org",
		Role:     models.RolePolice,
		Verified: true,
	}
}

func TestGenerateAndExtractClaims(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 会话恢复只依赖令牌本身携带的身份
	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "ops@rescue.org", claims.Email)
	assert.Equal(t, "police", claims.Role)
	assert.NotEmpty(t, claims.ID, "令牌必须携带jti供吊销使用")
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	require.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	svc := NewJWTService(newTestConfig())
	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	other := NewJWTService(&config.Config{JWTSecretKey: "another-secret", TokenTTL: newTestConfig().TokenTTL})
	_, err = other.ExtractClaims(token)
	require.Error(t, err)
}

func TestTokenCarriesUniqueID(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	first, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	second, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	c1, err := svc.ExtractClaims(first)
	require.NoError(t, err)
	c2, err := svc.ExtractClaims(second)
	require.NoError(t, err)

	// 每次签发的jti互不相同，吊销互不影响
	assert.NotEqual(t, c1.ID, c2.ID)
}
