package types

import "time"

type AddCommentRequest struct {
	Desc        string `json:"desc" binding:"required,min=1,max=1000"`
	UserID      uint64 `json:"userId,string"`
	IsAnonymous bool   `json:"isAnonymous"`
}

type CommentResponse struct {
	ID          uint64      `json:"id,string"`
	IdeaID      uint64      `json:"idea_id,string"`
	Content     string      `json:"content"`
	IsAnonymous bool        `json:"is_anonymous"`
	User        UserProfile `json:"user"`
	CreatedAt   time.Time   `json:"created_at"`
}
