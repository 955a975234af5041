package models

import "time"

const (
	ReactionLike   = "like"
	ReactionUnlike = "unlike"
)

// Reaction 表态记录
// 对应表 reactions
// 唯一键: idea_id + user_id, 一个用户对一条创意最多一条有效表态
// 换种类时原地更新 kind, 不新增记录
type Reaction struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	IdeaID    uint64    `gorm:"column:idea_id;not null;uniqueIndex:uk_idea_user,priority:1" json:"idea_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_idea_user,priority:2" json:"user_id"`
	Kind      string    `gorm:"column:kind;type:varchar(10);not null" json:"kind"`
	Remark    string    `gorm:"column:remark;type:varchar(255);default:''" json:"remark"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Reaction) TableName() string { return "reactions" }
