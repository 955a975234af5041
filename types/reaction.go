package types

import "time"

// CreateReactionRequest 表态请求
// userId 以登录态为准, body 中的值仅作兼容字段保留
type CreateReactionRequest struct {
	IdeaID   uint64 `json:"ideaId,string" binding:"required"`
	UserID   uint64 `json:"userId,string"`
	Reaction string `json:"reaction" binding:"required,oneof=like unlike"`
	Remark   string `json:"remark" binding:"max=255"`
}

type ReactionResponse struct {
	ID        uint64    `json:"id,string"`
	IdeaID    uint64    `json:"idea_id,string"`
	UserID    uint64    `json:"user_id,string"`
	Kind      string    `json:"kind"`
	Remark    string    `json:"remark,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
