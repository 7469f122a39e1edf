package services

import (
	"context"
	"encoding/json"
	"sentinel-vault-service/config"
	"time"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService 定义Redis缓存服务接口
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheVerifyCode(email, code string, expiration time.Duration) error
	GetVerifyCode(email string) (string, error)
	RevokeToken(jti string, ttl time.Duration) error
	IsTokenRevoked(jti string) bool
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheVerifyCode 缓存邮箱验证码
func (s *RedisService) CacheVerifyCode(email, code string, expiration time.Duration) error {
	key := "verify_code:" + email
	return s.Client.Set(s.Ctx, key, code, expiration).Err()
}

// GetVerifyCode 获取缓存中的邮箱验证码
func (s *RedisService) GetVerifyCode(email string) (string, error) {
	key := "verify_code:" + email
	return s.Client.Get(s.Ctx, key).Result()
}

// RevokeToken 注销时将令牌jti拉黑，保留到令牌自然过期为止
func (s *RedisService) RevokeToken(jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := "revoked_token:" + jti
	return s.Client.Set(s.Ctx, key, "1", ttl).Err()
}

// IsTokenRevoked 检查令牌是否已被吊销，Redis不可用时视为未吊销
func (s *RedisService) IsTokenRevoked(jti string) bool {
	key := "revoked_token:" + jti
	n, err := s.Client.Exists(s.Ctx, key).Result()
	if err != nil {
		return false
	}
	return n > 0
}
