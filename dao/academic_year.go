package dao

import (
	"context"
	"time"

	"IdeaHub/models"

	"gorm.io/gorm"
)

type AcademicYear struct {
	Repo[models.AcademicYear]
}

func NewAcademicYear(db *gorm.DB) *AcademicYear {
	return &AcademicYear{Repo: NewRepo[models.AcademicYear](db)}
}

func (d *AcademicYear) ListActive(ctx context.Context) ([]*models.AcademicYear, error) {
	var items []*models.AcademicYear
	err := d.Db.WithContext(ctx).
		Where("status = ?", 1).
		Order("start_date DESC").
		Find(&items).Error
	return items, err
}

// Current 当前进行中的学年
func (d *AcademicYear) Current(ctx context.Context, now time.Time) (*models.AcademicYear, error) {
	var item models.AcademicYear
	err := d.Db.WithContext(ctx).
		Where("status = 1 AND start_date <= ? AND final_closure_date >= ?", now, now).
		Order("start_date DESC").
		Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (d *AcademicYear) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.AcademicYear{}).
		Where("id = ?", id).
		Updates(data).Error
}
