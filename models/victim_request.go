package models

import (
	"time"
)

// RequestStatus represents the triage status of a victim request
type RequestStatus string

const (
	StatusCritical RequestStatus = "CRITICAL"
	StatusUrgent   RequestStatus = "URGENT"
	StatusSafe     RequestStatus = "SAFE"
)

// ValidRequestStatus 检查请求状态是否合法
func ValidRequestStatus(status string) bool {
	switch RequestStatus(status) {
	case StatusCritical, StatusUrgent, StatusSafe:
		return true
	}
	return false
}

// VictimRequest represents a field report asking for rescue resources
type VictimRequest struct {
	ID        uint          `gorm:"primaryKey" json:"-"`
	RequestID string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"id"` // 对外编号，如 REQ-101，创建后不可变
	Status    RequestStatus `gorm:"type:varchar(20);not null" json:"status"`
	Needs     string        `gorm:"type:varchar(255)" json:"needs"`
	// 受困人数区间，如 "1"、"2-4"、"12+"
	PeopleCount string    `gorm:"type:varchar(20)" json:"peopleCount"`
	Location    string    `gorm:"type:varchar(50)" json:"loc"` // "lat,lng"
	Timestamp   time.Time `json:"timestamp"`                   // 现场上报时间
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
