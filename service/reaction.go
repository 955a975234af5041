package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"IdeaHub/dao"
	"IdeaHub/dao/cache"
	"IdeaHub/models"
	"IdeaHub/types"

	"github.com/redis/go-redis/v9"
)

var _ IReactionService = (*ReactionService)(nil)

type IReactionService interface {
	// React 写入表态, 返回是否发生了变化
	React(ctx context.Context, userID uint64, req *types.CreateReactionRequest) (bool, error)
	ListByIdea(ctx context.Context, ideaID uint64) ([]*types.ReactionResponse, error)
}

type ReactionService struct {
	IdeaDAO      *dao.IdeaDAO
	ReactionDAO  *dao.ReactionDAO
	StatsDAO     *dao.IdeaStatsDAO
	FeedCache    *cache.FeedStorage
	Redis        *redis.Client
	StatsService IStatsService
	EventService IEventService
}

// React 表态写入
// 不变式: 一个用户对一条创意最多一条有效表态
// 同种类重复提交是幂等空操作, 换种类原地更新并同时修正两个聚合计数
func (s *ReactionService) React(ctx context.Context, userID uint64, req *types.CreateReactionRequest) (bool, error) {
	if req.Reaction != models.ReactionLike && req.Reaction != models.ReactionUnlike {
		return false, errors.New("不支持的表态类型")
	}

	exist, err := s.IdeaDAO.IsExist(ctx, "id = ? AND status = ?", req.IdeaID, models.IdeaStatusVisible)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, errors.New("创意不存在")
	}

	// 短锁防止同一用户连点产生并发写
	lockKey := fmt.Sprintf("lock:idea:react:%d:%d", userID, req.IdeaID)
	lock, err := s.Redis.SetNX(ctx, lockKey, 1, 5*time.Second).Result()
	if err != nil || !lock {
		return false, errors.New("操作太频繁,请稍后重试")
	}
	defer s.Redis.Del(ctx, lockKey)

	current, err := s.ReactionDAO.GetByIdeaUser(ctx, req.IdeaID, userID)
	if err != nil {
		return false, err
	}
	if current != nil && current.Kind == req.Reaction {
		// 已是同种表态, 不做任何操作
		return false, nil
	}

	if err := s.ReactionDAO.SetKind(ctx, req.IdeaID, userID, req.Reaction, req.Remark); err != nil {
		return false, err
	}

	// 新种类 +1
	if err := s.incrKind(ctx, req.IdeaID, req.Reaction, 1); err != nil {
		return false, err
	}
	// 旧种类 -1(仅换种类时)
	if current != nil {
		if err := s.incrKind(ctx, req.IdeaID, current.Kind, -1); err != nil {
			return false, err
		}
	}

	s.StatsService.Rescore(ctx, req.IdeaID)
	s.FeedCache.Invalidate(ctx)
	s.EventService.PublishIdeaEvent(ctx, EventIdeaReacted, req.IdeaID, userID)
	return true, nil
}

func (s *ReactionService) incrKind(ctx context.Context, ideaID uint64, kind string, delta int64) error {
	if kind == models.ReactionLike {
		return s.StatsDAO.IncrLikeCount(ctx, ideaID, delta)
	}
	return s.StatsDAO.IncrUnlikeCount(ctx, ideaID, delta)
}

func (s *ReactionService) ListByIdea(ctx context.Context, ideaID uint64) ([]*types.ReactionResponse, error) {
	items, err := s.ReactionDAO.ListByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	result := make([]*types.ReactionResponse, 0, len(items))
	for _, item := range items {
		result = append(result, &types.ReactionResponse{
			ID:        item.ID,
			IdeaID:    item.IdeaID,
			UserID:    item.UserID,
			Kind:      item.Kind,
			Remark:    item.Remark,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return result, nil
}
