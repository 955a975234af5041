package service

import (
	"context"
	"errors"
	"time"

	"IdeaHub/dao"
	"IdeaHub/dao/cache"
	"IdeaHub/models"
	"IdeaHub/types"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Add(ctx context.Context, userID, ideaID uint64, req *types.AddCommentRequest) (*types.CommentResponse, error)
	ListByIdea(ctx context.Context, ideaID uint64) ([]*types.CommentResponse, error)
}

type CommentService struct {
	IdeaDAO      *dao.IdeaDAO
	CommentDAO   *dao.Comment
	StatsDAO     *dao.IdeaStatsDAO
	YearDAO      *dao.AcademicYear
	FeedCache    *cache.FeedStorage
	UserService  IUserService
	StatsService IStatsService
	EventService IEventService
}

// Add 发表评论
func (s *CommentService) Add(ctx context.Context, userID, ideaID uint64, req *types.AddCommentRequest) (*types.CommentResponse, error) {
	idea, err := s.IdeaDAO.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, errors.New("创意不存在")
	}

	// 学年最终截止后评论关闭
	year, err := s.YearDAO.FindByWhere(ctx, "id = ?", idea.AcademicYearID)
	if err == nil && year != nil && time.Now().After(year.FinalClosureDate) {
		return nil, errors.New("本学年已最终截止, 评论已关闭")
	}

	now := time.Now()
	comment := &models.Comment{
		IdeaID:      ideaID,
		UserID:      userID,
		IsAnonymous: req.IsAnonymous,
		Content:     req.Desc,
		Status:      1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.StatsDAO.IncrCommentCount(ctx, ideaID, 1); err != nil {
		return nil, err
	}

	s.StatsService.Rescore(ctx, ideaID)
	s.FeedCache.Invalidate(ctx)
	s.EventService.PublishIdeaEvent(ctx, EventIdeaCommented, ideaID, userID)

	return s.toResponse(ctx, comment), nil
}

func (s *CommentService) ListByIdea(ctx context.Context, ideaID uint64) ([]*types.CommentResponse, error) {
	comments, err := s.CommentDAO.ListByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(comments))
	for _, comment := range comments {
		if !comment.IsAnonymous {
			userIDs = append(userIDs, comment.UserID)
		}
	}
	userMap := s.UserService.BatchGetUserInfo(ctx, userIDs)

	result := make([]*types.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		author := types.AnonymousProfile()
		if !comment.IsAnonymous {
			if profile, ok := userMap[comment.UserID]; ok {
				author = profile
			}
		}
		result = append(result, &types.CommentResponse{
			ID:          comment.ID,
			IdeaID:      comment.IdeaID,
			Content:     comment.Content,
			IsAnonymous: comment.IsAnonymous,
			User:        author,
			CreatedAt:   comment.CreatedAt,
		})
	}
	return result, nil
}

func (s *CommentService) toResponse(ctx context.Context, comment *models.Comment) *types.CommentResponse {
	author := types.AnonymousProfile()
	if !comment.IsAnonymous {
		userMap := s.UserService.BatchGetUserInfo(ctx, []uint64{comment.UserID})
		if profile, ok := userMap[comment.UserID]; ok {
			author = profile
		}
	}
	return &types.CommentResponse{
		ID:          comment.ID,
		IdeaID:      comment.IdeaID,
		Content:     comment.Content,
		IsAnonymous: comment.IsAnonymous,
		User:        author,
		CreatedAt:   comment.CreatedAt,
	}
}
