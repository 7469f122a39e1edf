package services

import (
	"errors"
	"sentinel-vault-service/config"
	"sentinel-vault-service/models"
	"time"

	"gorm.io/gorm"
)

// 医疗物资清单本期只读，响应走短TTL缓存
const (
	healthInventoryCacheKey = "health_inventory"
	healthInventoryCacheTTL = 30 * time.Second
)

// InterfaceInventoryService 定义库存台账服务接口
type InterfaceInventoryService interface {
	ListInventory() ([]models.InventoryItem, error)
	GetItemByName(name string) (*models.InventoryItem, error)
	Restock(name string, delta int) (*models.InventoryItem, error)
	ListHealthInventory() ([]models.HealthInventoryItem, error)
}

// InventoryService 提供物资库存台账服务。
// 台账是库存数量的唯一权威来源，扣减仅通过分配提交发生。
type InventoryService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService // 可为空，仅用于医疗物资响应缓存
}

// NewInventoryService 创建一个新的库存服务
func NewInventoryService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceInventoryService {
	return &InventoryService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// ListInventory 获取通用物资库存，顺序稳定，无变更时两次查询结果一致
func (s *InventoryService) ListInventory() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.DB.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemByName 根据名称获取库存物资
func (s *InventoryService) GetItemByName(name string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.DB.Where("name = ?", name).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Restock 补充库存，只允许正增量
func (s *InventoryService) Restock(name string, delta int) (*models.InventoryItem, error) {
	if delta <= 0 {
		return nil, ErrRestockInvalid
	}

	result := s.DB.Model(&models.InventoryItem{}).
		Where("name = ?", name).
		UpdateColumns(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", delta),
			"version":  gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrItemNotFound
	}

	return s.GetItemByName(name)
}

// ListHealthInventory 获取医疗物资清单，本期只读。
// 响应缓存采用cache-aside: 命中直接返回，未命中查库后回填，缓存失败不影响查询。
func (s *InventoryService) ListHealthInventory() ([]models.HealthInventoryItem, error) {
	if s.Redis != nil {
		var cached []models.HealthInventoryItem
		if err := s.Redis.Get(healthInventoryCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	var items []models.HealthInventoryItem
	if err := s.DB.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := s.Redis.Set(healthInventoryCacheKey, items, healthInventoryCacheTTL); err != nil {
			config.Warning("写入医疗物资缓存失败: %v", err)
		}
	}
	return items, nil
}
