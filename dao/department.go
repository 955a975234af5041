package dao

import (
	"context"

	"IdeaHub/models"

	"gorm.io/gorm"
)

type Department struct {
	Repo[models.Department]
}

func NewDepartment(db *gorm.DB) *Department {
	return &Department{Repo: NewRepo[models.Department](db)}
}

func (d *Department) ListActive(ctx context.Context) ([]*models.Department, error) {
	var items []*models.Department
	err := d.Db.WithContext(ctx).
		Where("status = ?", 1).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (d *Department) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Department{}).
		Where("id = ?", id).
		Updates(data).Error
}
