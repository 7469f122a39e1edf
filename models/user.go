package models

import (
	"time"
)

// UserRole 表示控制台账户的角色
type UserRole string

const (
	RoleAdmin  UserRole = "admin"  // 灾害指挥中心
	RolePolice UserRole = "police" // 警察/救援力量
	RoleHealth UserRole = "health" // 卫生部门
)

// ValidRole 检查角色是否合法
func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleAdmin, RolePolice, RoleHealth:
		return true
	}
	return false
}

// User represents console accounts (admin / police / health)
type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Email    string   `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password string   `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Role     UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// 邮箱验证状态，注册后需通过6位验证码激活
	Verified      bool       `gorm:"default:false" json:"verified"`
	VerifyCode    string     `gorm:"type:varchar(6)" json:"-"`
	CodeExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
