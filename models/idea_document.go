package models

import "time"

// IdeaDocument 创意附件, 提交后不可修改
type IdeaDocument struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	IdeaID    uint64    `gorm:"column:idea_id;not null;index:idx_idea_id" json:"idea_id"`
	FileName  string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	OssKey    string    `gorm:"column:oss_key;type:varchar(255);not null" json:"-"`
	URL       string    `gorm:"column:url;type:varchar(500);not null" json:"url"`
	Remark    string    `gorm:"column:remark;type:varchar(255);default:''" json:"remark"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (IdeaDocument) TableName() string { return "idea_documents" }
