package models

import (
	"time"
)

// InventoryItem represents a line of the general rescue inventory ledger
type InventoryItem struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Name     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Quantity int    `gorm:"not null;default:0" json:"quantity"` // 库存数量，任何时刻不得为负
	Unit     string `gorm:"type:varchar(20)" json:"unit"`
	// 版本号，每次提交的库存变更加一，用于观察并发提交的序列化
	Version   int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HealthInventoryItem represents medical supplies tracked by the health department.
// 本期只读，不接入分配流程。
type HealthInventoryItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Available int       `gorm:"not null;default:0" json:"available"`
	Needed    int       `gorm:"not null;default:0" json:"needed"`
	Unit      string    `gorm:"type:varchar(20)" json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Shortage 表示是否存在缺口: available < needed
func (h *HealthInventoryItem) Shortage() bool {
	return h.Available < h.Needed
}
