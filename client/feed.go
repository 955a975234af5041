package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type FeedQuery struct {
	SortBy     string
	CategoryID string
	Keyword    string
	UserID     string
	Page       int
	PageSize   int
}

func (q FeedQuery) key() string {
	return fmt.Sprintf("%s|%s|%s|%s|%d|%d",
		q.SortBy, q.CategoryID, q.Keyword, q.UserID, q.Page, q.PageSize)
}

type FeedIdea struct {
	ID          string `json:"id"`
	PublicCode  string `json:"public_code"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsAnonymous bool   `json:"is_anonymous"`
	Author      struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
	} `json:"author"`
	ViewCount    int64   `json:"view_count"`
	TotalLikes   int64   `json:"total_likes"`
	TotalUnlikes int64   `json:"total_unlikes"`
	CommentCount int64   `json:"comment_count"`
	Popularity   float64 `json:"popularity"`
}

type FeedPagination struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	LastPage    int   `json:"last_page"`
	Total       int64 `json:"total"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

type FeedPage struct {
	Pagination FeedPagination `json:"pagination"`
	Ideas      []*FeedIdea    `json:"ideaList"`
}

type feedEntry struct {
	mu    sync.Mutex
	page  *FeedPage
	err   error
	stale bool
}

// FeedLoader 列表加载器
// 按查询键缓存, 收到 ideas 失效通知后整体标脏, 下次读取重新拉取
// 一次查询只发一次请求, 失败结果同样缓存, 不自动重试
type FeedLoader struct {
	client      *Client
	cache       cmap.ConcurrentMap[string, *feedEntry]
	unsubscribe func()
}

func NewFeedLoader(c *Client, inv *Invalidator) *FeedLoader {
	l := &FeedLoader{
		client: c,
		cache:  cmap.New[*feedEntry](),
	}
	l.unsubscribe = inv.Subscribe(func(key string) {
		if key == KeyIdeas {
			l.MarkStale()
		}
	})
	return l
}

func (l *FeedLoader) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
	}
}

// MarkStale 全量标脏, 已缓存的错误也一并清除
func (l *FeedLoader) MarkStale() {
	for item := range l.cache.IterBuffered() {
		entry := item.Val
		entry.mu.Lock()
		entry.stale = true
		entry.err = nil
		entry.mu.Unlock()
	}
}

func (l *FeedLoader) Get(ctx context.Context, q FeedQuery) (*FeedPage, error) {
	entry, _ := l.cache.Get(q.key())
	if entry == nil {
		entry = &feedEntry{stale: true}
		if !l.cache.SetIfAbsent(q.key(), entry) {
			entry, _ = l.cache.Get(q.key())
		}
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !entry.stale {
		if entry.err != nil {
			return nil, entry.err
		}
		return entry.page, nil
	}

	page, err := l.fetch(ctx, q)
	entry.stale = false
	entry.page = page
	entry.err = err
	return page, err
}

func (l *FeedLoader) fetch(ctx context.Context, q FeedQuery) (*FeedPage, error) {
	params := url.Values{}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.CategoryID != "" {
		params.Set("categoryId", q.CategoryID)
	}
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	path := "/api/get/ideas"
	if q.UserID != "" {
		path = "/api/get/ideas/user/" + q.UserID
	}
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page FeedPage
	if err := l.client.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
