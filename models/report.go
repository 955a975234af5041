package models

import (
	"time"

	"gorm.io/datatypes"
)

// Report 举报记录
type Report struct {
	ID     uint64 `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	IdeaID uint64 `gorm:"column:idea_id;not null;index:idx_idea_id" json:"idea_id"`
	UserID uint64 `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Reason string `gorm:"column:reason;type:varchar(200);default:''" json:"reason"`
	// 举报时的创意快照, 创意被隐藏后仍可追溯
	Snapshot  datatypes.JSON `gorm:"column:snapshot" json:"snapshot"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (Report) TableName() string { return "reports" }
