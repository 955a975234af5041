package dao

import (
	"context"

	"IdeaHub/models"

	"gorm.io/gorm"
)

type IdeaStatsDAO struct {
	Repo[models.IdeaStats]
}

func NewIdeaStatsDAO(db *gorm.DB) *IdeaStatsDAO {
	return &IdeaStatsDAO{Repo: NewRepo[models.IdeaStats](db)}
}

// incr 计数增减, 避免负数
// 使用原生 SQL 做 UPSERT 并限制不为负
func (d *IdeaStatsDAO) incr(ctx context.Context, column string, ideaID uint64, delta int64) error {
	return d.Db.WithContext(ctx).Exec(
		"INSERT INTO idea_stats (idea_id, "+column+", updated_at) VALUES (?, GREATEST(?, 0), NOW()) "+
			"ON DUPLICATE KEY UPDATE "+column+" = GREATEST("+column+" + ?, 0), updated_at = NOW()",
		ideaID, delta, delta,
	).Error
}

func (d *IdeaStatsDAO) IncrViewCount(ctx context.Context, ideaID uint64, delta int64) error {
	return d.incr(ctx, "view_count", ideaID, delta)
}

func (d *IdeaStatsDAO) IncrLikeCount(ctx context.Context, ideaID uint64, delta int64) error {
	return d.incr(ctx, "like_count", ideaID, delta)
}

func (d *IdeaStatsDAO) IncrUnlikeCount(ctx context.Context, ideaID uint64, delta int64) error {
	return d.incr(ctx, "unlike_count", ideaID, delta)
}

func (d *IdeaStatsDAO) IncrCommentCount(ctx context.Context, ideaID uint64, delta int64) error {
	return d.incr(ctx, "comment_count", ideaID, delta)
}

// UpdatePopularity 回写热度分
func (d *IdeaStatsDAO) UpdatePopularity(ctx context.Context, ideaID uint64, score float64) error {
	return d.Db.WithContext(ctx).
		Model(&models.IdeaStats{}).
		Where("idea_id = ?", ideaID).
		Update("popularity", score).Error
}

func (d *IdeaStatsDAO) GetByIdeaID(ctx context.Context, ideaID uint64) (*models.IdeaStats, error) {
	var item models.IdeaStats
	err := d.Db.WithContext(ctx).Where("idea_id = ?", ideaID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.IdeaID == 0 {
		return &models.IdeaStats{IdeaID: ideaID}, nil
	}
	return &item, nil
}

// BatchGetByIdeaIDs 批量查询聚合计数, 缺失的创意补零值
func (d *IdeaStatsDAO) BatchGetByIdeaIDs(ctx context.Context, ideaIDs []uint64) (map[uint64]*models.IdeaStats, error) {
	result := make(map[uint64]*models.IdeaStats, len(ideaIDs))
	if len(ideaIDs) == 0 {
		return result, nil
	}

	var items []*models.IdeaStats
	err := d.Db.WithContext(ctx).Where("idea_id IN ?", ideaIDs).Find(&items).Error
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		result[item.IdeaID] = item
	}
	for _, id := range ideaIDs {
		if _, ok := result[id]; !ok {
			result[id] = &models.IdeaStats{IdeaID: id}
		}
	}
	return result, nil
}
