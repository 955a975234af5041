package client

import (
	"sync"

	"github.com/sourcegraph/conc"
)

// 资源键, 变更成功后发布
const (
	KeyIdeas        = "ideas"
	keyIdeaPrefix   = "idea:"
	keyReactPrefix  = "reactions:"
	subscriberQueue = 64
)

// Invalidator 失效总线
// 每个订阅者一条私有 goroutine 顺序消费, 同一订阅者内的通知不乱序
type Invalidator struct {
	mu     sync.Mutex
	subs   []chan string
	wg     conc.WaitGroup
	closed bool
}

func NewInvalidator() *Invalidator {
	return &Invalidator{}
}

// Subscribe 注册订阅, 返回取消函数
func (i *Invalidator) Subscribe(fn func(key string)) func() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return func() {}
	}

	ch := make(chan string, subscriberQueue)
	i.subs = append(i.subs, ch)
	i.wg.Go(func() {
		for key := range ch {
			fn(key)
		}
	})

	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		for idx, sub := range i.subs {
			if sub == ch {
				i.subs = append(i.subs[:idx], i.subs[idx+1:]...)
				close(ch)
				return
			}
		}
	}
}

// Publish 向所有订阅者广播资源键
// 订阅者队列满时丢弃, 发布方永不阻塞
func (i *Invalidator) Publish(keys ...string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return
	}
	for _, key := range keys {
		for _, ch := range i.subs {
			select {
			case ch <- key:
			default:
			}
		}
	}
}

func (i *Invalidator) Close() {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return
	}
	i.closed = true
	for _, ch := range i.subs {
		close(ch)
	}
	i.subs = nil
	i.mu.Unlock()

	i.wg.Wait()
}

func IdeaKey(ideaID string) string {
	return keyIdeaPrefix + ideaID
}

func ReactionsKey(ideaID string) string {
	return keyReactPrefix + ideaID
}
