package models

import "time"

// Category 创意分类
type Category struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string    `gorm:"type:varchar(64);uniqueIndex:uk_categories_name;not null" json:"name"`
	Description string    `gorm:"type:varchar(255);default:''" json:"description"`
	Status      int8      `gorm:"type:tinyint;default:1" json:"status"` // 1正常, 0停用
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
