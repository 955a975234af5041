package types

import "time"

// SubmitIdeaRequest multipart 表单字段, 附件在 files[] 中单独处理
type SubmitIdeaRequest struct {
	Title          string `form:"title" binding:"required,max=200"`
	Content        string `form:"content" binding:"required"`
	IsAnonymous    bool   `form:"isAnonymous"`
	CategoryID     uint64 `form:"categoryId" binding:"required"`
	AcademicYearID uint64 `form:"academicYearId"`
	Remark         string `form:"remark"`
}

type DocumentResponse struct {
	ID       uint64 `json:"id,string"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
	Remark   string `json:"remark,omitempty"`
}

// IdeaSummary 列表与详情共用的创意摘要
type IdeaSummary struct {
	ID           uint64              `json:"id,string"`
	PublicCode   string              `json:"public_code"`
	Title        string              `json:"title"`
	Content      string              `json:"content"`
	Author       UserProfile         `json:"author"`
	IsAnonymous  bool                `json:"is_anonymous"`
	CategoryID   uint64              `json:"category_id,string"`
	AcademicYear uint64              `json:"academic_year_id,string"`
	ViewCount    int64               `json:"view_count"`
	LikeCount    int64               `json:"total_likes"`
	UnlikeCount  int64               `json:"total_unlikes"`
	CommentCount int64               `json:"comment_count"`
	Popularity   float64             `json:"popularity"`
	Documents    []*DocumentResponse `json:"documents"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type ListIdeasResponse struct {
	Pagination Pagination     `json:"pagination"`
	IdeaList   []*IdeaSummary `json:"ideaList"`
}

type IdeaDetailResponse struct {
	Idea     *IdeaSummary       `json:"idea"`
	Comments []*CommentResponse `json:"comments"`
}

type SubmitIdeaResponse struct {
	IdeaID     uint64 `json:"idea_id,string"`
	PublicCode string `json:"public_code"`
}

type ReportIdeaRequest struct {
	Reason string `json:"reason" binding:"max=200"`
}
