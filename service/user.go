package service

import (
	"context"
	"errors"
	"time"

	"IdeaHub/config"
	"IdeaHub/dao"
	"IdeaHub/models"
	"IdeaHub/pkg/encrypt"
	"IdeaHub/pkg/jwt"
	"IdeaHub/types"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error)
	Login(ctx context.Context, email, password string) (*types.LoginResponse, error)
	Block(ctx context.Context, userID uint64) error
	Unblock(ctx context.Context, userID uint64) error
	BatchGetUserInfo(ctx context.Context, userIDs []uint64) map[uint64]types.UserProfile
}

type UserService struct {
	Config    *config.Config
	UsersRepo *dao.Users
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error) {
	if s.UsersRepo.IsEmailExist(ctx, req.Email) {
		return nil, errors.New("账号已存在! ")
	}

	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.Users{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hashed,
		Role:         models.RoleStudent,
		DepartmentID: req.DepartmentID,
		Status:       models.UserStatusNormal,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login 登录处理
func (s *UserService) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("登录账号不存在! ")
		}
		return nil, err
	}

	if user.Status == models.UserStatusBlocked {
		return nil, errors.New("账号已被封禁")
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, errors.New("账号或密码错误")
	}

	expire := time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	if expire <= 0 {
		expire = 2 * time.Hour
	}
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Role, "access", expire)
	if err != nil {
		return nil, err
	}

	_ = s.UsersRepo.UpdateById(ctx, user.ID, map[string]any{"last_login_at": time.Now()})

	return &types.LoginResponse{
		Token: token,
		User: types.UserProfile{
			UserID: user.ID,
			Name:   user.Name,
			Role:   user.Role,
		},
	}, nil
}

func (s *UserService) Block(ctx context.Context, userID uint64) error {
	return s.setStatus(ctx, userID, models.UserStatusBlocked)
}

func (s *UserService) Unblock(ctx context.Context, userID uint64) error {
	return s.setStatus(ctx, userID, models.UserStatusNormal)
}

func (s *UserService) setStatus(ctx context.Context, userID uint64, status int8) error {
	_, err := s.UsersRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("用户不存在")
		}
		return err
	}
	return s.UsersRepo.UpdateStatus(ctx, userID, status)
}

// BatchGetUserInfo 批量拉取作者信息, 查询失败时返回空 map
func (s *UserService) BatchGetUserInfo(ctx context.Context, userIDs []uint64) map[uint64]types.UserProfile {
	result := make(map[uint64]types.UserProfile, len(userIDs))
	users, err := s.UsersRepo.BatchGetByIDs(ctx, userIDs)
	if err != nil {
		return result
	}
	for id, user := range users {
		result[id] = types.UserProfile{
			UserID: user.ID,
			Name:   user.Name,
			Role:   user.Role,
		}
	}
	return result
}
