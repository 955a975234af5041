package models

import "time"

// IdeaStats 创意聚合计数
// 对应表 idea_stats
type IdeaStats struct {
	IdeaID       uint64    `gorm:"column:idea_id;primaryKey" json:"idea_id"`
	ViewCount    int64     `gorm:"column:view_count;default:0" json:"view_count"`
	LikeCount    int64     `gorm:"column:like_count;default:0" json:"like_count"`
	UnlikeCount  int64     `gorm:"column:unlike_count;default:0" json:"unlike_count"`
	CommentCount int64     `gorm:"column:comment_count;default:0" json:"comment_count"`
	Popularity   float64   `gorm:"column:popularity;default:0;index:idx_popularity" json:"popularity"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (IdeaStats) TableName() string {
	return "idea_stats"
}
