package service

import (
	"context"

	"IdeaHub/dao"
	"IdeaHub/pkg/log"
	"IdeaHub/pkg/ranking"

	"go.uber.org/zap"
)

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	Rescore(ctx context.Context, ideaID uint64)
}

type StatsService struct {
	IdeaDAO  *dao.IdeaDAO
	StatsDAO *dao.IdeaStatsDAO
}

// Rescore 聚合计数变化后重算热度分
// 失败只记日志, 热度分允许短暂滞后
func (s *StatsService) Rescore(ctx context.Context, ideaID uint64) {
	idea, err := s.IdeaDAO.GetByID(ctx, ideaID)
	if err != nil || idea == nil {
		return
	}
	stat, err := s.StatsDAO.GetByIdeaID(ctx, ideaID)
	if err != nil {
		return
	}

	score := ranking.Score(idea.CreatedAt, stat.LikeCount, stat.UnlikeCount, stat.CommentCount, stat.ViewCount)
	if err := s.StatsDAO.UpdatePopularity(ctx, ideaID, score); err != nil {
		log.L.Warn("update popularity failed", zap.Uint64("idea_id", ideaID), zap.Error(err))
	}
}
