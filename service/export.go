package service

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"IdeaHub/dao"
	"IdeaHub/pkg/log"

	"go.uber.org/zap"
)

var _ IExportService = (*ExportService)(nil)

// IExportService 后台导出: 创意清单 CSV 与附件打包
type IExportService interface {
	IdeasCSV(ctx context.Context, w io.Writer) error
	DocumentsZip(ctx context.Context, w io.Writer) error
}

type ExportService struct {
	IdeaDAO     *dao.IdeaDAO
	StatsDAO    *dao.IdeaStatsDAO
	DocumentDAO *dao.IdeaDocumentDAO
	UserService IUserService
	OssService  IOssService
}

// IdeasCSV 全量可见创意导出为 CSV
// 匿名创意不导出作者信息
func (s *ExportService) IdeasCSV(ctx context.Context, w io.Writer) error {
	ideas, err := s.IdeaDAO.FindAllVisible(ctx)
	if err != nil {
		return err
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
		return err
	}
	userMap := s.UserService.BatchGetUserInfo(ctx, userIDs)

	cw := csv.NewWriter(w)
	header := []string{
		"public_code", "title", "author", "category_id", "academic_year_id",
		"views", "likes", "unlikes", "comments", "created_at",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, idea := range ideas {
		author := ""
		if !idea.IsAnonymous {
			author = userMap[idea.UserID].Name
		}
		stat := statsMap[idea.ID]
		row := []string{
			idea.PublicCode,
			idea.Title,
			author,
			strconv.FormatUint(idea.CategoryID, 10),
			strconv.FormatUint(idea.AcademicYearID, 10),
			strconv.FormatInt(stat.ViewCount, 10),
			strconv.FormatInt(stat.LikeCount, 10),
			strconv.FormatInt(stat.UnlikeCount, 10),
			strconv.FormatInt(stat.CommentCount, 10),
			idea.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// DocumentsZip 所有可见创意的附件打成一个 zip
// 单个附件拉取失败时跳过并记日志, 不中断整个导出
func (s *ExportService) DocumentsZip(ctx context.Context, w io.Writer) error {
	ideas, err := s.IdeaDAO.FindAllVisible(ctx)
	if err != nil {
		return err
	}
	ideaIDs := make([]uint64, 0, len(ideas))
	for _, idea := range ideas {
		ideaIDs = append(ideaIDs, idea.ID)
	}
	docsMap, err := s.DocumentDAO.BatchListByIdeaIDs(ctx, ideaIDs)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	defer zw.Close()

	for _, idea := range ideas {
		for _, doc := range docsMap[idea.ID] {
			reader, err := s.OssService.DownloadReader(ctx, doc.OssKey)
			if err != nil {
				log.L.Warn("export: download document failed",
					zap.Uint64("idea_id", idea.ID),
					zap.String("oss_key", doc.OssKey),
					zap.Error(err),
				)
				continue
			}

			entry, err := zw.Create(fmt.Sprintf("%s/%s", idea.PublicCode, doc.FileName))
			if err != nil {
				reader.Close()
				return err
			}
			if _, err := io.Copy(entry, reader); err != nil {
				reader.Close()
				return err
			}
			reader.Close()
		}
	}

	return nil
}
