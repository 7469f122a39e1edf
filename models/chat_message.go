package models

import (
	"time"
)

// ChatMessage represents one message of a coordination channel.
// 消息只追加，不修改、不删除。
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	MessageID string    `gorm:"type:varchar(36);uniqueIndex" json:"message_id"` // 消息唯一标识
	Channel   string    `gorm:"type:varchar(50);index;not null" json:"channel"` // 如 "police"
	Sender    UserRole  `gorm:"type:varchar(20);not null" json:"from"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"-"`
}
