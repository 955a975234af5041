package models

import (
	"time"
)

const (
	IdeaStatusVisible = 0
	IdeaStatusHidden  = 1 // 被作者或管理员隐藏, 软删除
)

type Idea struct {
	ID             uint64    `gorm:"column:id;primary_key" json:"id"`
	PublicCode     string    `gorm:"column:public_code;type:varchar(16);uniqueIndex:uk_public_code" json:"public_code"`
	UserID         uint64    `gorm:"column:user_id;not null;index:idx_userid_status" json:"user_id"`
	IsAnonymous    bool      `gorm:"column:is_anonymous;not null;default:false" json:"is_anonymous"`
	Title          string    `gorm:"column:title;type:varchar(200);not null;default:''" json:"title"`
	Content        string    `gorm:"column:content;type:text" json:"content"`
	CategoryID     uint64    `gorm:"column:category_id;not null;index:idx_category" json:"category_id"`
	AcademicYearID uint64    `gorm:"column:academic_year_id;not null;index:idx_year" json:"academic_year_id"`
	Remark         string    `gorm:"column:remark;type:varchar(500);default:''" json:"remark"`
	Status         int8      `gorm:"column:status;not null;default:0;index:idx_userid_status" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Idea) TableName() string {
	return "ideas"
}
