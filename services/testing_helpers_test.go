package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"sentinel-vault-service/config"
	"sentinel-vault-service/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 打开一个内存数据库并迁移全部表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库随连接销毁，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

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

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:  "test-secret-key",
		TokenTTL:      time.Hour,
		VerifyCodeTTL: 15 * time.Minute,
	}
}

// seedInventory 写入测试用的通用物资台账
func seedInventory(t *testing.T, db *gorm.DB) {
	t.Helper()
	items := []models.InventoryItem{
		{Name: "Boats", Quantity: 5, Unit: "units"},
		{Name: "Food Kits", Quantity: 300, Unit: "kits"},
		{Name: "Life Jackets", Quantity: 150, Unit: "units"},
		{Name: "Flashlights", Quantity: 80, Unit: "units"},
	}
	require.NoError(t, db.Create(&items).Error)
}

// seedRequest 写入一条测试请求并返回其对外编号
func seedRequest(t *testing.T, db *gorm.DB, requestID string) string {
	t.Helper()
	req := models.VictimRequest{
		RequestID:   requestID,
		Status:      models.StatusCritical,
		Needs:       "Rescue, Medical",
		PeopleCount: "6-10",
		Location:    "23.2156,72.6369",
		Timestamp:   time.Now(),
	}
	require.NoError(t, db.Create(&req).Error)
	return req.RequestID
}

// memoryRedis 是内存实现的缓存服务，测试中替代真实Redis
type memoryRedis struct {
	entries map[string][]byte
	revoked map[string]bool
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{
		entries: make(map[string][]byte),
		revoked: make(map[string]bool),
	}
}

func (m *memoryRedis) Set(key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memoryRedis) Get(key string, dest interface{}) error {
	data, ok := m.entries[key]
	if !ok {
		return errors.New("key not found")
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryRedis) Delete(key string) error {
	delete(m.entries, key)
	return nil
}

func (m *memoryRedis) CacheVerifyCode(email, code string, expiration time.Duration) error {
	return m.Set("verify_code:"+email, code, expiration)
}

func (m *memoryRedis) GetVerifyCode(email string) (string, error) {
	var code string
	err := m.Get("verify_code:"+email, &code)
	return code, err
}

func (m *memoryRedis) RevokeToken(jti string, ttl time.Duration) error {
	if ttl > 0 {
		m.revoked[jti] = true
	}
	return nil
}

func (m *memoryRedis) IsTokenRevoked(jti string) bool {
	return m.revoked[jti]
}

func itemQuantity(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()
	var item models.InventoryItem
	require.NoError(t, db.Where("name = ?", name).First(&item).Error)
	return item.Quantity
}
