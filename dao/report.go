package dao

import (
	"context"

	"IdeaHub/models"

	"gorm.io/gorm"
)

type ReportDAO struct {
	Repo[models.Report]
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{Repo: NewRepo[models.Report](db)}
}

// HasReported 同一用户对同一创意只记一次举报
func (d *ReportDAO) HasReported(ctx context.Context, ideaID, userID uint64) (bool, error) {
	return d.IsExist(ctx, "idea_id = ? AND user_id = ?", ideaID, userID)
}

func (d *ReportDAO) ListByIdeaID(ctx context.Context, ideaID uint64) ([]*models.Report, error) {
	var items []*models.Report
	err := d.Db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
