package types

// UserProfile 对外展示的作者信息
// 匿名时 UserID 置零, 名称统一显示
type UserProfile struct {
	UserID uint64 `json:"user_id,string"`
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
}

const AnonymousName = "匿名用户"

func AnonymousProfile() UserProfile {
	return UserProfile{UserID: 0, Name: AnonymousName}
}
