package client

import (
	"context"
	"errors"
	"net/http"

	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	// ErrPending 同一操作尚未结束, 本次调用被本地拒绝
	ErrPending = errors.New("操作进行中, 请勿重复提交")
	// ErrCancelled 用户未确认, 请求未发出
	ErrCancelled = errors.New("操作已取消")
	// ErrNotLoggedIn 未登录, 请求未发出
	ErrNotLoggedIn = errors.New("请先登录")
)

// ConfirmFunc 破坏性操作的确认回调, 返回 false 则不发请求
type ConfirmFunc func(action string) bool

// NotifyFunc 瞬时提示回调, 用于失败提示
type NotifyFunc func(message string)

// Coordinator 变更协调器
// 每类操作按资源键做在途去重, 成功后向失效总线发布受影响的键
type Coordinator struct {
	client  *Client
	inv     *Invalidator
	pending cmap.ConcurrentMap[string, struct{}]
	confirm ConfirmFunc
	notify  NotifyFunc
}

func NewCoordinator(c *Client, inv *Invalidator, confirm ConfirmFunc, notify NotifyFunc) *Coordinator {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	if notify == nil {
		notify = func(string) {}
	}
	return &Coordinator{
		client:  c,
		inv:     inv,
		pending: cmap.New[struct{}](),
		confirm: confirm,
		notify:  notify,
	}
}

// acquire 在途锁, 已有同键操作时返回 false
func (m *Coordinator) acquire(key string) bool {
	return m.pending.SetIfAbsent(key, struct{}{})
}

func (m *Coordinator) release(key string) {
	m.pending.Remove(key)
}

func (m *Coordinator) run(key string, keys []string, fn func() error) error {
	if !m.acquire(key) {
		return ErrPending
	}
	defer m.release(key)

	if err := fn(); err != nil {
		m.notify(err.Error())
		return err
	}
	m.inv.Publish(keys...)
	return nil
}

// DeleteIdea 删除创意, 发请求前必须经确认回调
func (m *Coordinator) DeleteIdea(ctx context.Context, ideaID string) error {
	if !m.confirm("delete") {
		return ErrCancelled
	}
	return m.run("delete:"+ideaID, []string{KeyIdeas, IdeaKey(ideaID)}, func() error {
		return m.client.do(ctx, http.MethodDelete, "/api/delete/idea/"+ideaID, nil, nil)
	})
}

// ReportIdea 举报创意, 同样需要确认
func (m *Coordinator) ReportIdea(ctx context.Context, ideaID, reason string) error {
	if !m.confirm("report") {
		return ErrCancelled
	}
	return m.run("report:"+ideaID, []string{IdeaKey(ideaID)}, func() error {
		return m.client.do(ctx, http.MethodPost, "/api/report/idea/"+ideaID,
			map[string]string{"reason": reason}, nil)
	})
}

// IncrementView 浏览计数上报
func (m *Coordinator) IncrementView(ctx context.Context, ideaID string) error {
	return m.run("view:"+ideaID, []string{KeyIdeas, IdeaKey(ideaID)}, func() error {
		return m.client.do(ctx, http.MethodPost, "/api/view/idea/"+ideaID, nil, nil)
	})
}

// SubmitReaction 提交表态
// userId 以服务端登录态为准, body 里同时带上作为兼容字段
func (m *Coordinator) SubmitReaction(ctx context.Context, ideaID, kind, remark string) error {
	body := map[string]string{
		"ideaId":   ideaID,
		"reaction": kind,
		"remark":   remark,
	}
	if uid := m.client.UserID(); uid != "" {
		body["userId"] = uid
	}
	return m.run("react:"+ideaID, []string{KeyIdeas, IdeaKey(ideaID), ReactionsKey(ideaID)}, func() error {
		return m.client.do(ctx, http.MethodPost, "/api/createReaction", body, nil)
	})
}

// SubmitComment 提交评论
func (m *Coordinator) SubmitComment(ctx context.Context, ideaID, desc string, anonymous bool) error {
	return m.run("comment:"+ideaID, []string{KeyIdeas, IdeaKey(ideaID)}, func() error {
		return m.client.do(ctx, http.MethodPost, "/api/add/ideas/"+ideaID+"/comment", map[string]any{
			"desc":        desc,
			"isAnonymous": anonymous,
		}, nil)
	})
}
