package models

import (
	"time"
)

// AllocationRecord represents one committed line of a resource allocation.
// 同一次提交的所有行共享一个 BatchID，分配提交后只增不改。
type AllocationRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BatchID   string    `gorm:"type:varchar(36);index;not null" json:"batch_id"`
	RequestID string    `gorm:"type:varchar(20);index;not null" json:"request_id"` // 对应 VictimRequest.RequestID
	ItemName  string    `gorm:"type:varchar(100);not null" json:"item_name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
