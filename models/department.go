package models

import "time"

// Department 院系
type Department struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string    `gorm:"type:varchar(64);uniqueIndex:uk_departments_name;not null" json:"name"`
	CoordinatorID uint64    `gorm:"index" json:"coordinator_id"` // 负责审核的协调员
	Status        int8      `gorm:"type:tinyint;default:1" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}
