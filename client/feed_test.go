package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const feedBody = `{
	"code": 0,
	"message": "ok",
	"data": {
		"pagination": {"current_page":1,"page_size":10,"last_page":1,"total":1,"from":1,"to":1},
		"ideaList": [{"id":"1","public_code":"aB3xK9","title":"更好的食堂","total_likes":3,"total_unlikes":1,"view_count":12}]
	}
}`

func newFeedServer(hits *int64, fail *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		if atomic.LoadInt32(fail) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"code":500,"message":"数据库不可用"}`))
			return
		}
		w.Write([]byte(feedBody))
	}))
}

func TestFeedLoaderCachesPerQuery(t *testing.T) {
	var hits int64
	var fail int32
	srv := newFeedServer(&hits, &fail)
	defer srv.Close()

	inv := NewInvalidator()
	defer inv.Close()
	loader := NewFeedLoader(New(srv.URL), inv)
	defer loader.Close()

	q := FeedQuery{SortBy: "latest", Page: 1, PageSize: 10}
	page, err := loader.Get(context.Background(), q)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(page.Ideas) != 1 || page.Ideas[0].Title != "更好的食堂" {
		t.Fatalf("unexpected page: %+v", page)
	}

	if _, err := loader.Get(context.Background(), q); err != nil {
		t.Fatalf("cached get: %v", err)
	}
	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Fatalf("server hits = %d, want 1 (second read from cache)", got)
	}

	// 不同查询键各自拉取
	if _, err := loader.Get(context.Background(), FeedQuery{SortBy: "popularity", Page: 1, PageSize: 10}); err != nil {
		t.Fatalf("second query: %v", err)
	}
	if got := atomic.LoadInt64(&hits); got != 2 {
		t.Fatalf("server hits = %d, want 2", got)
	}
}

func TestFeedLoaderRefetchesAfterInvalidation(t *testing.T) {
	var hits int64
	var fail int32
	srv := newFeedServer(&hits, &fail)
	defer srv.Close()

	inv := NewInvalidator()
	defer inv.Close()
	loader := NewFeedLoader(New(srv.URL), inv)
	defer loader.Close()

	q := FeedQuery{SortBy: "latest", Page: 1, PageSize: 10}
	if _, err := loader.Get(context.Background(), q); err != nil {
		t.Fatalf("get: %v", err)
	}

	inv.Publish(KeyIdeas)

	// 失效通知是异步投递的, 等缓存被标脏
	deadline := time.After(time.Second)
	for {
		if _, err := loader.Get(context.Background(), q); err != nil {
			t.Fatalf("get after invalidation: %v", err)
		}
		if atomic.LoadInt64(&hits) >= 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("cache never refetched after invalidation")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestFeedLoaderErrorIsTerminalUntilInvalidation(t *testing.T) {
	var hits int64
	var fail int32
	atomic.StoreInt32(&fail, 1)
	srv := newFeedServer(&hits, &fail)
	defer srv.Close()

	inv := NewInvalidator()
	defer inv.Close()
	loader := NewFeedLoader(New(srv.URL), inv)
	defer loader.Close()

	q := FeedQuery{SortBy: "latest", Page: 1, PageSize: 10}
	if _, err := loader.Get(context.Background(), q); err == nil {
		t.Fatal("expected error")
	}
	// 错误也缓存, 不自动重试
	if _, err := loader.Get(context.Background(), q); err == nil {
		t.Fatal("expected cached error")
	}
	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Fatalf("server hits = %d, want 1 (no retry on cached error)", got)
	}

	// 失效后恢复
	atomic.StoreInt32(&fail, 0)
	loader.MarkStale()
	if _, err := loader.Get(context.Background(), q); err != nil {
		t.Fatalf("get after recovery: %v", err)
	}
}

func TestFeedLoaderUserScopedPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	inv := NewInvalidator()
	defer inv.Close()
	loader := NewFeedLoader(New(srv.URL), inv)
	defer loader.Close()

	if _, err := loader.Get(context.Background(), FeedQuery{UserID: "99", Page: 1}); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotPath != "/api/get/ideas/user/99" {
		t.Fatalf("path = %s", gotPath)
	}
}
