package container

import (
	"testing"
	"time"

	"sentinel-vault-service/config"
	"sentinel-vault-service/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newContainerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.VictimRequest{},
		&models.InventoryItem{},
		&models.HealthInventoryItem{},
		&models.AllocationRecord{},
		&models.ChatMessage{},
	))
	return db
}

func newContainerTestConfig() *config.Config {
	return &config.Config{
		RedisHost:     "localhost",
		RedisPort:     "6379",
		JWTSecretKey:  "test-secret-key",
		TokenTTL:      time.Hour,
		VerifyCodeTTL: 15 * time.Minute,
	}
}

// 生产入口不传入Redis客户端，容器必须根据配置自行构建
func TestContainerBuildsRedisFromConfig(t *testing.T) {
	c := NewServiceContainer(newContainerTestDB(t), newContainerTestConfig(), nil)

	redisService := c.GetRedisService()
	require.NotNil(t, redisService, "仅依赖配置时注销吊销与验证码缓存必须可用")

	// 服务端不可达时吊销检查失败开放，不阻断请求
	assert.False(t, redisService.IsTokenRevoked("unknown-jti"))
}

func TestContainerWiresAllServices(t *testing.T) {
	c := NewServiceContainer(newContainerTestDB(t), newContainerTestConfig(), nil)

	assert.NotNil(t, c.GetDB())
	assert.NotNil(t, c.GetJWTService())
	assert.NotNil(t, c.GetUserService())
	assert.NotNil(t, c.GetRequestService())
	assert.NotNil(t, c.GetInventoryService())
	assert.NotNil(t, c.GetAllocationService())
	assert.NotNil(t, c.GetChatService())

	// 未配置Broker时不启用现场广播
	assert.Nil(t, c.GetService("mqtt"))
}

func TestContainerGetServiceByName(t *testing.T) {
	c := NewServiceContainer(newContainerTestDB(t), newContainerTestConfig(), nil)

	assert.NotNil(t, c.GetService("jwt"))
	assert.NotNil(t, c.GetService("redis"))
	assert.NotNil(t, c.GetService("allocation"))
	assert.Nil(t, c.GetService("unknown"))
}
