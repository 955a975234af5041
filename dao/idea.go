package dao

import (
	"context"

	"IdeaHub/models"

	"gorm.io/gorm"
)

// 列表排序方式
const (
	SortByLatest     = "latest"
	SortByViewCount  = "viewCount"
	SortByPopularity = "popularity"
	SortByTitle      = "title"
)

type IdeaDAO struct {
	Repo[models.Idea]
}

func NewIdeaDAO(db *gorm.DB) *IdeaDAO {
	return &IdeaDAO{Repo: NewRepo[models.Idea](db)}
}

type ListIdeasOpt struct {
	SortBy     string
	CategoryID uint64 // 0 表示全部
	Keyword    string
	UserID     uint64 // 0 表示全站
	Limit      int
	Offset     int
}

// SortClause 排序方式到 SQL 的映射, 未知值回退到最新发布
func SortClause(sortBy string) string {
	switch sortBy {
	case SortByViewCount:
		return "idea_stats.view_count DESC, ideas.created_at DESC"
	case SortByPopularity:
		return "idea_stats.popularity DESC, ideas.created_at DESC"
	case SortByTitle:
		return "ideas.title ASC"
	default:
		return "ideas.created_at DESC"
	}
}

// List 查询创意列表
// 排序依赖聚合计数, 统一左联 idea_stats
func (d *IdeaDAO) List(ctx context.Context, opt ListIdeasOpt) ([]*models.Idea, int64, error) {
	base := d.Db.WithContext(ctx).
		Model(&models.Idea{}).
		Joins("LEFT JOIN idea_stats ON idea_stats.idea_id = ideas.id").
		Where("ideas.status = ?", models.IdeaStatusVisible)

	if opt.CategoryID > 0 {
		base = base.Where("ideas.category_id = ?", opt.CategoryID)
	}
	if opt.UserID > 0 {
		base = base.Where("ideas.user_id = ?", opt.UserID)
	}
	if opt.Keyword != "" {
		kw := "%" + opt.Keyword + "%"
		base = base.Where("ideas.title LIKE ? OR ideas.content LIKE ?", kw, kw)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ideas []*models.Idea
	err := base.
		Select("ideas.*").
		Order(SortClause(opt.SortBy)).
		Limit(opt.Limit).
		Offset(opt.Offset).
		Find(&ideas).Error
	return ideas, total, err
}

// GetByID 查询单条可见创意
func (d *IdeaDAO) GetByID(ctx context.Context, ideaID uint64) (*models.Idea, error) {
	var idea models.Idea
	err := d.Db.WithContext(ctx).
		Where("id = ? AND status = ?", ideaID, models.IdeaStatusVisible).
		Limit(1).Find(&idea).Error
	if err != nil {
		return nil, err
	}
	if idea.ID == 0 {
		return nil, nil
	}
	return &idea, nil
}

// UpdateStatus 更新创意状态(软删除用)
func (d *IdeaDAO) UpdateStatus(ctx context.Context, ideaID uint64, status int8) error {
	return d.Db.WithContext(ctx).
		Model(&models.Idea{}).
		Where("id = ?", ideaID).
		Update("status", status).Error
}

// FindByIDs 根据 ID 列表查询
func (d *IdeaDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Idea, error) {
	if len(ids) == 0 {
		return []*models.Idea{}, nil
	}
	var ideas []*models.Idea
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&ideas).Error
	return ideas, err
}

// FindAllVisible 导出用, 全量可见创意
func (d *IdeaDAO) FindAllVisible(ctx context.Context) ([]*models.Idea, error) {
	var ideas []*models.Idea
	err := d.Db.WithContext(ctx).
		Where("status = ?", models.IdeaStatusVisible).
		Order("created_at ASC").
		Find(&ideas).Error
	return ideas, err
}
