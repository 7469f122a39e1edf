package services

import (
	"errors"
	"sentinel-vault-service/config"
	"sentinel-vault-service/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllocationLine 表示一次分配中的一行: 物资名称与分配数量
type AllocationLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// AllocationDraft 表示一份尚未提交的分配草稿。
// 草稿编辑发生在控制台一侧，这里保留同一套夹取规则作为服务端参照，
// 供客户端实现对照校验: 草稿打开时对库存做快照，数量编辑始终被夹在
// [0, 快照库存] 区间内，提交时以台账当前值为准重新校验。
type AllocationDraft struct {
	RequestID string
	stock     map[string]int
	items     map[string]int
}

// NewAllocationDraft 基于当前库存快照打开一份草稿
func NewAllocationDraft(requestID string, stock []models.InventoryItem) *AllocationDraft {
	snapshot := make(map[string]int, len(stock))
	for _, item := range stock {
		snapshot[item.Name] = item.Quantity
	}
	return &AllocationDraft{
		RequestID: requestID,
		stock:     snapshot,
		items:     make(map[string]int),
	}
}

// SetQuantity 编辑草稿中某项物资的数量并返回生效值。
// 负数归零，超出快照库存的输入被夹到库存上限，未知物资不接受。
func (d *AllocationDraft) SetQuantity(name string, qty int) int {
	limit, ok := d.stock[name]
	if !ok {
		return 0
	}
	if qty < 0 {
		qty = 0
	}
	if qty > limit {
		qty = limit
	}
	d.items[name] = qty
	return qty
}

// Quantity 返回草稿中某项物资的当前数量
func (d *AllocationDraft) Quantity(name string) int {
	return d.items[name]
}

// Lines 返回剔除零数量后的提交行
func (d *AllocationDraft) Lines() []AllocationLine {
	lines := make([]AllocationLine, 0, len(d.items))
	for name, qty := range d.items {
		if qty > 0 {
			lines = append(lines, AllocationLine{Name: name, Quantity: qty})
		}
	}
	return lines
}

// InterfaceAllocationService 定义分配引擎服务接口
type InterfaceAllocationService interface {
	Allocate(requestID string, lines []AllocationLine) (string, error)
	ListAllocations(page, pageSize int) ([]models.AllocationRecord, int64, error)
}

// AllocationService 提供分配提交服务
type AllocationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAllocationService 创建一个新的分配服务
func NewAllocationService(db *gorm.DB, cfg *config.Config) InterfaceAllocationService {
	return &AllocationService{
		DB:     db,
		Config: cfg,
	}
}

// Allocate 将一组物资提交分配给指定请求。
// 整组要么全部成功要么全部失败: 提交在单个事务内执行，每行使用
// "quantity >= ?" 守卫的扣减语句，任何一行守卫失败即回滚，库存不会为负。
// 零数量行在提交前剔除，剔除后为空的提交是合法的空操作，同样视为成功。
func (s *AllocationService) Allocate(requestID string, lines []AllocationLine) (string, error) {
	// 请求必须存在
	var request models.VictimRequest
	if err := s.DB.Where("request_id = ?", requestID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRequestNotFound
		}
		return "", err
	}

	// 合并同名行并剔除零数量行
	merged := make(map[string]int)
	for _, line := range lines {
		if line.Quantity < 0 {
			return "", ErrQuantityInvalid
		}
		if line.Quantity == 0 {
			continue
		}
		merged[line.Name] += line.Quantity
	}

	batchID := uuid.New().String()
	now := time.Now()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for name, qty := range merged {
			// 守卫扣减: 库存不足时不产生任何修改
			result := tx.Model(&models.InventoryItem{}).
				Where("name = ? AND quantity >= ?", name, qty).
				UpdateColumns(map[string]interface{}{
					"quantity": gorm.Expr("quantity - ?", qty),
					"version":  gorm.Expr("version + 1"),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// 区分物资不存在与库存不足
				var count int64
				if err := tx.Model(&models.InventoryItem{}).Where("name = ?", name).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					return ErrItemNotFound
				}
				return ErrStockConflict
			}

			record := models.AllocationRecord{
				BatchID:   batchID,
				RequestID: requestID,
				ItemName:  name,
				Quantity:  qty,
				CreatedAt: now,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		// 分配提交后刷新请求的更新时间，供信息流消费方感知
		return tx.Model(&request).Update("updated_at", now).Error
	})
	if err != nil {
		return "", err
	}

	return batchID, nil
}

// ListAllocations 分页获取已提交的分配记录，最新的在前
func (s *AllocationService) ListAllocations(page, pageSize int) ([]models.AllocationRecord, int64, error) {
	var records []models.AllocationRecord
	var total int64

	if err := s.DB.Model(&models.AllocationRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("id DESC").Limit(pageSize).Offset(offset).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
