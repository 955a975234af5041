package dao

import (
	"context"
	"errors"

	"IdeaHub/models"

	"gorm.io/gorm"
)

type ReactionDAO struct {
	Repo[models.Reaction]
}

func NewReactionDAO(db *gorm.DB) *ReactionDAO {
	return &ReactionDAO{Repo: NewRepo[models.Reaction](db)}
}

// GetByIdeaUser 查询指定用户对指定创意的表态记录
func (d *ReactionDAO) GetByIdeaUser(ctx context.Context, ideaID uint64, userID uint64) (*models.Reaction, error) {
	var item models.Reaction
	err := d.Db.WithContext(ctx).Where("idea_id = ? AND user_id = ?", ideaID, userID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// SetKind 写入表态, 已存在则原地改 kind, 不产生重复记录
func (d *ReactionDAO) SetKind(ctx context.Context, ideaID, userID uint64, kind, remark string) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Reaction
		err := tx.Where("idea_id = ? AND user_id = ?", ideaID, userID).Limit(1).Find(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}
		if err != nil {
			return err
		}
		if item.ID == 0 { // create
			item = models.Reaction{IdeaID: ideaID, UserID: userID, Kind: kind, Remark: remark}
			return tx.Create(&item).Error
		}
		// update
		return tx.Model(&models.Reaction{}).
			Where("id = ?", item.ID).
			Updates(map[string]any{"kind": kind, "remark": remark}).Error
	})
}

// ListByIdeaID 创意下全部有效表态
func (d *ReactionDAO) ListByIdeaID(ctx context.Context, ideaID uint64) ([]*models.Reaction, error) {
	var items []*models.Reaction
	err := d.Db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}
