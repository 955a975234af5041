package dao

import (
	"context"

	"IdeaHub/models"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// ListByIdeaID 创意下的评论, 按时间倒序
func (d *Comment) ListByIdeaID(ctx context.Context, ideaID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("idea_id = ? AND status = 1", ideaID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// GetByID 根据ID获取评论
func (d *Comment) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).
		Where("id = ? AND status = 1", commentID).
		First(&comment).Error
	return &comment, err
}

func (d *Comment) CountByIdeaID(ctx context.Context, ideaID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("idea_id = ? AND status = 1", ideaID).
		Count(&count).Error
	return count, err
}
