package models

import "time"

// Comment 评论表结构
type Comment struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IdeaID      uint64    `gorm:"column:idea_id;not null;index:idx_idea_id" json:"idea_id"`
	UserID      uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	IsAnonymous bool      `gorm:"column:is_anonymous;not null;default:false" json:"is_anonymous"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	Status      int8      `gorm:"column:status;default:1" json:"status"` // 1-正常, 0-已删除
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
