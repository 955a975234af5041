package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"IdeaHub/config"
	"IdeaHub/dao"
	"IdeaHub/dao/cache"
	"IdeaHub/models"
	"IdeaHub/pkg/log"
	"IdeaHub/pkg/snowflake"
	"IdeaHub/types"

	"github.com/redis/go-redis/v9"
	"github.com/speps/go-hashids/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	maxIdeaFiles = 5
	// 同一用户对同一创意的浏览去重窗口
	viewDedupTTL = 30 * time.Minute
)

var _ IIdeaService = (*IdeaService)(nil)

type IIdeaService interface {
	Submit(ctx context.Context, userID uint64, req *types.SubmitIdeaRequest, files []*multipart.FileHeader) (*types.SubmitIdeaResponse, error)
	List(ctx context.Context, opt ListIdeasOpt) (*types.ListIdeasResponse, error)
	Detail(ctx context.Context, ideaID uint64) (*types.IdeaDetailResponse, error)
	Delete(ctx context.Context, ideaID, userID uint64, role string) error
	Report(ctx context.Context, ideaID, userID uint64, reason string) error
	IncrementView(ctx context.Context, ideaID, viewerID uint64) error
}

type ListIdeasOpt struct {
	SortBy     string
	CategoryID uint64 // 0 表示全部
	Keyword    string
	UserID     uint64 // 0 表示全站
	Page       int
	PageSize   int
}

type IdeaService struct {
	Config       *config.Config
	IdeaDAO      *dao.IdeaDAO
	StatsDAO     *dao.IdeaStatsDAO
	DocumentDAO  *dao.IdeaDocumentDAO
	ReportDAO    *dao.ReportDAO
	YearDAO      *dao.AcademicYear
	CategoryDAO  *dao.Category
	FeedCache    *cache.FeedStorage
	Redis        *redis.Client
	UserService  IUserService
	OssService   IOssService
	StatsService IStatsService
	EventService IEventService
}

var hashID *hashids.HashID

func init() {
	hd := hashids.NewData()
	hd.Salt = "ideahub-public-code"
	hd.MinLength = 8
	hashID, _ = hashids.NewWithData(hd)
}

// genPublicCode 生成对外展示的短码, 不暴露雪花 ID
func genPublicCode(id int64) string {
	code, _ := hashID.EncodeInt64([]int64{id})
	return code
}

// Submit 提交创意
func (s *IdeaService) Submit(ctx context.Context, userID uint64, req *types.SubmitIdeaRequest, files []*multipart.FileHeader) (*types.SubmitIdeaResponse, error) {
	if req.Title == "" {
		return nil, errors.New("标题不能为空")
	}
	if len(files) > maxIdeaFiles {
		return nil, fmt.Errorf("附件最多 %d 个", maxIdeaFiles)
	}

	category, err := s.CategoryDAO.FindByWhere(ctx, "id = ? AND status = 1", req.CategoryID)
	if err != nil || category == nil {
		return nil, errors.New("分类不存在")
	}

	// 未指定学年时落到当前学年, 截止后不再接受提交
	yearID := req.AcademicYearID
	now := time.Now()
	if yearID == 0 {
		year, err := s.YearDAO.Current(ctx, now)
		if err != nil {
			return nil, err
		}
		if year == nil {
			return nil, errors.New("当前不在任何学年的提交窗口内")
		}
		if now.After(year.ClosureDate) {
			return nil, errors.New("本学年的提交已截止")
		}
		yearID = year.ID
	}

	ideaID := uint64(snowflake.GenID())
	idea := &models.Idea{
		ID:             ideaID,
		PublicCode:     genPublicCode(int64(ideaID)),
		UserID:         userID,
		IsAnonymous:    req.IsAnonymous,
		Title:          req.Title,
		Content:        req.Content,
		CategoryID:     req.CategoryID,
		AcademicYearID: yearID,
		Remark:         req.Remark,
		Status:         models.IdeaStatusVisible,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.IdeaDAO.Create(ctx, idea); err != nil {
		return nil, err
	}

	// 附件入 OSS, 单个失败则整体失败
	docs := make([]*models.IdeaDocument, 0, len(files))
	for _, header := range files {
		ossKey, url, err := s.OssService.UploadDocument(ctx, ideaID, header)
		if err != nil {
			return nil, fmt.Errorf("上传附件 %s 失败: %w", header.Filename, err)
		}
		docs = append(docs, &models.IdeaDocument{
			ID:        uint64(snowflake.GenID()),
			IdeaID:    ideaID,
			FileName:  header.Filename,
			OssKey:    ossKey,
			URL:       url,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err := s.DocumentDAO.BatchCreate(ctx, docs); err != nil {
		return nil, err
	}

	// 统计行预建, 查询侧不用处理缺行
	if err := s.StatsDAO.Create(ctx, &models.IdeaStats{IdeaID: ideaID, CreatedAt: now, UpdatedAt: now}); err != nil {
		log.L.Warn("create idea stats failed", zap.Uint64("idea_id", ideaID), zap.Error(err))
	}

	s.FeedCache.Invalidate(ctx)
	s.EventService.PublishIdeaEvent(ctx, EventIdeaSubmitted, ideaID, userID)

	return &types.SubmitIdeaResponse{IdeaID: ideaID, PublicCode: idea.PublicCode}, nil
}

// List 创意列表, 全站与个人共用, 仅多一个 user_id 条件
func (s *IdeaService) List(ctx context.Context, opt ListIdeasOpt) (*types.ListIdeasResponse, error) {
	if opt.Page < 1 {
		opt.Page = 1
	}
	if opt.PageSize < 1 || opt.PageSize > 100 {
		opt.PageSize = 10
	}

	queryKey := fmt.Sprintf("%s:%d:%s:%d:%d:%d",
		opt.SortBy, opt.CategoryID, opt.Keyword, opt.UserID, opt.Page, opt.PageSize)

	var cached types.ListIdeasResponse
	if s.FeedCache.GetPage(ctx, queryKey, &cached) {
		return &cached, nil
	}

	ideas, total, err := s.IdeaDAO.List(ctx, dao.ListIdeasOpt{
		SortBy:     opt.SortBy,
		CategoryID: opt.CategoryID,
		Keyword:    opt.Keyword,
		UserID:     opt.UserID,
		Limit:      opt.PageSize,
		Offset:     (opt.Page - 1) * opt.PageSize,
	})
	if err != nil {
		return nil, err
	}

	summaries, err := s.buildSummaries(ctx, ideas)
	if err != nil {
		return nil, err
	}

	resp := &types.ListIdeasResponse{
		Pagination: types.NewPagination(opt.Page, opt.PageSize, total),
		IdeaList:   summaries,
	}
	s.FeedCache.SetPage(ctx, queryKey, resp)
	return resp, nil
}

func (s *IdeaService) buildSummaries(ctx context.Context, ideas []*models.Idea) ([]*types.IdeaSummary, error) {
	summaries := make([]*types.IdeaSummary, 0, len(ideas))
	if len(ideas) == 0 {
		return summaries, nil
	}

	ideaIDs := make([]uint64, 0, len(ideas))
	userIDs := make([]uint64, 0, len(ideas))
	for _, idea := range ideas {
		ideaIDs = append(ideaIDs, idea.ID)
		if !idea.IsAnonymous {
			userIDs = append(userIDs, idea.UserID)
		}
	}

	statsMap, err := s.StatsDAO.BatchGetByIdeaIDs(ctx, ideaIDs)
	if err != nil {
		return nil, err
	}
	docsMap, err := s.DocumentDAO.BatchListByIdeaIDs(ctx, ideaIDs)
	if err != nil {
		return nil, err
	}
	userMap := s.UserService.BatchGetUserInfo(ctx, userIDs)

	for _, idea := range ideas {
		summaries = append(summaries, s.assemble(idea, statsMap[idea.ID], docsMap[idea.ID], userMap))
	}
	return summaries, nil
}

func (s *IdeaService) assemble(idea *models.Idea, stat *models.IdeaStats, docs []*models.IdeaDocument, userMap map[uint64]types.UserProfile) *types.IdeaSummary {
	author := types.AnonymousProfile()
	if !idea.IsAnonymous {
		if profile, ok := userMap[idea.UserID]; ok {
			author = profile
		}
	}

	docResp := make([]*types.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		docResp = append(docResp, &types.DocumentResponse{
			ID:       doc.ID,
			FileName: doc.FileName,
			URL:      doc.URL,
			Remark:   doc.Remark,
		})
	}

	summary := &types.IdeaSummary{
		ID:           idea.ID,
		PublicCode:   idea.PublicCode,
		Title:        idea.Title,
		Content:      idea.Content,
		Author:       author,
		IsAnonymous:  idea.IsAnonymous,
		CategoryID:   idea.CategoryID,
		AcademicYear: idea.AcademicYearID,
		Documents:    docResp,
		CreatedAt:    idea.CreatedAt,
		UpdatedAt:    idea.UpdatedAt,
	}
	if stat != nil {
		summary.ViewCount = stat.ViewCount
		summary.LikeCount = stat.LikeCount
		summary.UnlikeCount = stat.UnlikeCount
		summary.CommentCount = stat.CommentCount
		summary.Popularity = stat.Popularity
	}
	return summary
}

// Delete 软删除, 只有作者本人或管理角色可操作
func (s *IdeaService) Delete(ctx context.Context, ideaID, userID uint64, role string) error {
	idea, err := s.IdeaDAO.GetByID(ctx, ideaID)
	if err != nil {
		return err
	}
	if idea == nil {
		return errors.New("创意不存在")
	}

	isModerator := role == models.RoleManager || role == models.RoleAdmin
	if idea.UserID != userID && !isModerator {
		return errors.New("无权限删除该创意")
	}

	if err := s.IdeaDAO.UpdateStatus(ctx, ideaID, models.IdeaStatusHidden); err != nil {
		return err
	}

	s.FeedCache.Invalidate(ctx)
	s.EventService.PublishIdeaEvent(ctx, EventIdeaHidden, ideaID, userID)
	return nil
}

// Report 举报创意, 同一用户重复举报只记一次
func (s *IdeaService) Report(ctx context.Context, ideaID, userID uint64, reason string) error {
	idea, err := s.IdeaDAO.GetByID(ctx, ideaID)
	if err != nil {
		return err
	}
	if idea == nil {
		return errors.New("创意不存在")
	}

	reported, err := s.ReportDAO.HasReported(ctx, ideaID, userID)
	if err != nil {
		return err
	}
	if reported {
		return nil
	}

	snapshot := datatypes.JSON(fmt.Sprintf(`{"title":%q,"user_id":"%d"}`, idea.Title, idea.UserID))
	if err := s.ReportDAO.Create(ctx, &models.Report{
		IdeaID:    ideaID,
		UserID:    userID,
		Reason:    reason,
		Snapshot:  snapshot,
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}

	s.EventService.PublishIdeaEvent(ctx, EventIdeaReported, ideaID, userID)
	return nil
}

// IncrementView 浏览计数
// 客户端已经做了单次渲染内的去重, 服务端再用 redis 兜底一个时间窗口
func (s *IdeaService) IncrementView(ctx context.Context, ideaID, viewerID uint64) error {
	exist, err := s.IdeaDAO.IsExist(ctx, "id = ? AND status = ?", ideaID, models.IdeaStatusVisible)
	if err != nil {
		return err
	}
	if !exist {
		return errors.New("创意不存在")
	}

	dedupKey := fmt.Sprintf("idea:view:seen:%d:%d", ideaID, viewerID)
	ok, err := s.Redis.SetNX(ctx, dedupKey, 1, viewDedupTTL).Result()
	if err == nil && !ok {
		// 窗口内重复浏览, 不计数
		return nil
	}

	if err := s.StatsDAO.IncrViewCount(ctx, ideaID, 1); err != nil {
		return err
	}

	s.StatsService.Rescore(ctx, ideaID)
	s.FeedCache.Invalidate(ctx)
	s.EventService.PublishIdeaEvent(ctx, EventIdeaViewed, ideaID, viewerID)
	return nil
}

// Detail 创意详情: 摘要 + 评论 + 聚合计数
func (s *IdeaService) Detail(ctx context.Context, ideaID uint64) (*types.IdeaDetailResponse, error) {
	idea, err := s.IdeaDAO.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, errors.New("创意不存在")
	}

	summaries, err := s.buildSummaries(ctx, []*models.Idea{idea})
	if err != nil {
		return nil, err
	}

	return &types.IdeaDetailResponse{
		Idea:     summaries[0],
		Comments: nil, // 由 handler 组合 CommentService 填充
	}, nil
}
