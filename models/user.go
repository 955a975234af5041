package models

import "time"

const (
	RoleStudent     = "student"
	RoleStaff       = "staff"
	RoleCoordinator = "qa_coordinator"
	RoleManager     = "qa_manager"
	RoleAdmin       = "admin"
)

const (
	UserStatusNormal  = 1
	UserStatusBlocked = 0
)

type Users struct {
	ID           uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Email        string    `gorm:"column:email;type:varchar(128);uniqueIndex:uk_email;not null" json:"email"`
	Password     string    `gorm:"column:password;type:varchar(128);not null" json:"-"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:'student'" json:"role"`
	DepartmentID uint64    `gorm:"column:department_id;index" json:"department_id"`
	Status       int8      `gorm:"column:status;not null;default:1" json:"status"` // 1正常, 0封禁
	LastLoginAt  time.Time `gorm:"column:last_login_at" json:"last_login_at"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
