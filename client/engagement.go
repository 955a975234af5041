package client

import (
	"context"
	"sync"
	"time"
)

// VisibilityObserver 可见度来源
// 回调参数是 0~1 的可见比例, 返回的取消函数停止观察
type VisibilityObserver interface {
	Observe(onChange func(ratio float64)) (cancel func())
}

type trackerState int

const (
	stateIdle trackerState = iota
	statePending
	stateCounted
)

const (
	defaultVisibleRatio = 0.5
	defaultDwell        = 500 * time.Millisecond
)

type TrackerOption func(*Tracker)

func WithVisibleRatio(ratio float64) TrackerOption {
	return func(t *Tracker) { t.threshold = ratio }
}

func WithDwell(d time.Duration) TrackerOption {
	return func(t *Tracker) { t.dwell = d }
}

// Tracker 单张卡片的浏览与表态跟踪
//
// 浏览计数状态机: Idle -> Pending -> Counted
// 可见比例达到阈值进入 Pending 并起驻留定时器, 到期仍可见则计一次数,
// Counted 为终态; 中途掉到阈值以下回 Idle, 允许再次进入;
// Close 取消一切未决定时器, 关闭后不再计数
type Tracker struct {
	IdeaID string

	coord  *Coordinator
	client *Client

	threshold float64
	dwell     time.Duration

	mu         sync.Mutex
	state      trackerState
	timer      *time.Timer
	epoch      uint64
	closed     bool
	activeKind string

	cancelObserve func()
}

func NewTracker(ideaID string, coord *Coordinator, c *Client, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		IdeaID:    ideaID,
		coord:     coord,
		client:    c,
		threshold: defaultVisibleRatio,
		dwell:     defaultDwell,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Attach 绑定可见度来源
func (t *Tracker) Attach(obs VisibilityObserver) {
	t.cancelObserve = obs.Observe(t.OnVisibility)
}

// OnVisibility 可见度变化入口
func (t *Tracker) OnVisibility(ratio float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.state == stateCounted {
		return
	}

	if ratio >= t.threshold {
		if t.state == statePending {
			return
		}
		t.state = statePending
		t.epoch++
		epoch := t.epoch
		t.timer = time.AfterFunc(t.dwell, func() {
			t.dwellElapsed(epoch)
		})
		return
	}

	// 掉出可见区, 取消驻留
	if t.state == statePending {
		t.state = stateIdle
		if t.timer != nil {
			t.timer.Stop()
			t.timer = nil
		}
	}
}

// dwellElapsed 驻留到期
// epoch 不匹配说明定时器已被新一轮进入/退出作废
func (t *Tracker) dwellElapsed(epoch uint64) {
	t.mu.Lock()
	if t.closed || t.state != statePending || t.epoch != epoch {
		t.mu.Unlock()
		return
	}
	t.state = stateCounted
	t.timer = nil
	t.mu.Unlock()

	// 计数只发一次, 失败不回退终态
	_ = t.coord.IncrementView(context.Background(), t.IdeaID)
}

// Close 卡片卸载
func (t *Tracker) Close() {
	t.mu.Lock()
	t.closed = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()

	if t.cancelObserve != nil {
		t.cancelObserve()
	}
}

// State 当前状态, 测试用
func (t *Tracker) Counted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == stateCounted
}

// SetActiveKind 由外部查询结果同步当前生效的表态
func (t *Tracker) SetActiveKind(kind string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeKind = kind
}

func (t *Tracker) ActiveKind() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.activeKind
}

// React 表态
// 未登录本地拒绝不发请求; 与当前生效表态同种类时为幂等空操作;
// 其余情况恰好发一次请求, 成功后更新本地生效种类
func (t *Tracker) React(ctx context.Context, kind string) error {
	if !t.client.LoggedIn() {
		t.coord.notify(ErrNotLoggedIn.Error())
		return ErrNotLoggedIn
	}

	t.mu.Lock()
	if t.activeKind == kind {
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	if err := t.coord.SubmitReaction(ctx, t.IdeaID, kind, ""); err != nil {
		return err
	}

	t.mu.Lock()
	t.activeKind = kind
	t.mu.Unlock()
	return nil
}
