package dao

import (
	"context"

	"IdeaHub/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否已注册
func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

func (u *Users) GetByID(ctx context.Context, userID uint64) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "id = ?", userID)
}

// UpdateStatus 封禁/解封
func (u *Users) UpdateStatus(ctx context.Context, userID uint64, status int8) error {
	return u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		Update("status", status).Error
}

func (u *Users) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	return u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", id).
		Updates(data).Error
}

// BatchGetByIDs 批量查询用户
func (u *Users) BatchGetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Users, error) {
	result := make(map[uint64]*models.Users, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var users []*models.Users
	err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		result[user.ID] = user
	}
	return result, nil
}
