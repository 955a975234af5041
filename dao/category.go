package dao

import (
	"context"

	"IdeaHub/models"

	"gorm.io/gorm"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{Repo: NewRepo[models.Category](db)}
}

func (d *Category) ListActive(ctx context.Context) ([]*models.Category, error) {
	var items []*models.Category
	err := d.Db.WithContext(ctx).
		Where("status = ?", 1).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (d *Category) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var item models.Category
	err := d.Db.WithContext(ctx).
		Where("status = 1 AND name = ?", name).
		Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (d *Category) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Updates(data).Error
}
