package services

import (
	"errors"
	"regexp"
	"sentinel-vault-service/config"
	"sentinel-vault-service/models"
	"sentinel-vault-service/utils"
	"time"

	"gorm.io/gorm"
)

// 验证码必须为6位数字
var verifyCodePattern = regexp.MustCompile(`^\d{6}$`)

// InterfaceUserService 定义账户目录服务接口
type InterfaceUserService interface {
	Register(email, password, role string) (*models.User, string, error)
	VerifyEmail(email, code string) error
	Authenticate(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
}

// UserService 提供账户注册、验证与认证服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService // 可为空，验证码以数据库记录为准
}

// NewUserService 创建一个新的账户服务
func NewUserService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// Register 注册新账户并签发邮箱验证码，角色在注册时固定
func (s *UserService) Register(email, password, role string) (*models.User, string, error) {
	if !models.ValidRole(role) {
		return nil, "", ErrInvalidRole
	}

	// 验证邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", errors.New("密码加密失败")
	}

	code := utils.RandomDigits(6)
	expiresAt := time.Now().Add(s.Config.VerifyCodeTTL)

	user := &models.User{
		Email:         email,
		Password:      hashedPassword,
		Role:          models.UserRole(role),
		Verified:      false,
		VerifyCode:    code,
		CodeExpiresAt: &expiresAt,
	}

	if err := s.DB.Create(user).Error; err != nil {
		return nil, "", err
	}

	// 验证码同时写入Redis，加速校验；数据库记录为权威
	if s.Redis != nil {
		if err := s.Redis.CacheVerifyCode(email, code, s.Config.VerifyCodeTTL); err != nil {
			config.Warning("验证码写入Redis失败: %v", err)
		}
	}

	return user, code, nil
}

// VerifyEmail 校验邮箱验证码并激活账户
func (s *UserService) VerifyEmail(email, code string) error {
	if !verifyCodePattern.MatchString(code) {
		return ErrCodeFormat
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// 已激活的账户重复验证视为成功
	if user.Verified {
		return nil
	}

	if user.VerifyCode == "" || user.VerifyCode != code {
		return ErrCodeInvalid
	}
	if user.CodeExpiresAt != nil && time.Now().After(*user.CodeExpiresAt) {
		return ErrCodeExpired
	}

	updates := map[string]interface{}{
		"verified":        true,
		"verify_code":     "",
		"code_expires_at": nil,
	}
	if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
		return err
	}

	if s.Redis != nil {
		if err := s.Redis.Delete("verify_code:" + email); err != nil {
			config.Warning("清除Redis验证码失败: %v", err)
		}
	}

	return nil
}

// Authenticate 校验邮箱密码，只有已激活的账户可以登录
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if !user.Verified {
		return nil, ErrUserNotVerified
	}

	return &user, nil
}

// GetUserByEmail 根据邮箱获取账户
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
