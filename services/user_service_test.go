package services

import (
	"testing"
	"time"

	"sentinel-vault-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterVerifyLoginFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestConfig(), nil)

	user, code, err := svc.Register("ops@rescue.org", "secret123", "police")
	require.NoError(t, err)
	assert.Equal(t, models.RolePolice, user.Role)
	assert.False(t, user.Verified)
	assert.Regexp(t, `^\d{6}$`, code)

	// 未验证的账户不能登录
	_, err = svc.Authenticate("ops@rescue.org", "secret123")
	require.ErrorIs(t, err, ErrUserNotVerified)

	require.NoError(t, svc.VerifyEmail("ops@rescue.org", code))

	logged, err := svc.Authenticate("ops@rescue.org", "secret123")
	require.NoError(t, err)
	assert.True(t, logged.Verified)
	assert.Equal(t, models.RolePolice, logged.Role)

	// 验证码用后即清除
	stored, err := svc.GetUserByEmail("ops@rescue.org")
	require.NoError(t, err)
	assert.Empty(t, stored.VerifyCode)
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestConfig(), nil)

	_, _, err := svc.Register("ops@rescue.org", "secret123", "firefighter")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestConfig(), nil)

	_, _, err := svc.Register("ops@rescue.org", "secret123", "police")
	require.NoError(t, err)

	_, _, err = svc.Register("ops@rescue.org", "another", "health")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestVerifyEmailValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestConfig(), nil)

	_, code, err := svc.Register("ops@rescue.org", "secret123", "police")
	require.NoError(t, err)

	// 格式不合法的验证码直接拒绝
	require.ErrorIs(t, svc.VerifyEmail("ops@rescue.org", "12ab56"), ErrCodeFormat)
	require.ErrorIs(t, svc.VerifyEmail("ops@rescue.org", "1234"), ErrCodeFormat)

	// 格式正确但不匹配
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	require.ErrorIs(t, svc.VerifyEmail("ops@rescue.org", wrong), ErrCodeInvalid)

	// 未知账户
	require.ErrorIs(t, svc.VerifyEmail("ghost@rescue.org", "123456"), ErrUserNotFound)

	// 正确验证码激活账户，重复验证视为成功
	require.NoError(t, svc.VerifyEmail("ops@rescue.org", code))
	require.NoError(t, svc.VerifyEmail("ops@rescue.org", "999999"))
}

func TestVerifyEmailExpiredCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestConfig(), nil)

	_, code, err := svc.Register("ops@rescue.org", "secret123", "police")
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "ops@rescue.org").
		Update("code_expires_at", &expired).Error)

	require.ErrorIs(t, svc.VerifyEmail("ops@rescue.org", code), ErrCodeExpired)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, newTestConfig(), nil)

	_, code, err := svc.Register("ops@rescue.org", "secret123", "police")
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail("ops@rescue.org", code))

	_, err = svc.Authenticate("ops@rescue.org", "wrongpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// 未知邮箱返回同样的错误，不泄露账户是否存在
	_, err = svc.Authenticate("ghost@rescue.org", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
