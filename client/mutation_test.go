package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestCoordinatorPendingGuard(t *testing.T) {
	release := make(chan struct{})
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		<-release
		w.Write([]byte(`{"code":0,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Tokens.Set("test-token")
	inv := NewInvalidator()
	defer inv.Close()
	coord := NewCoordinator(c, inv, nil, nil)

	done := make(chan error, 1)
	go func() {
		done <- coord.IncrementView(context.Background(), "7")
	}()

	// 等第一个请求抵达服务端, 保证在途
	for atomic.LoadInt64(&hits) == 0 {
		time.Sleep(time.Millisecond)
	}

	if err := coord.IncrementView(context.Background(), "7"); err != ErrPending {
		t.Fatalf("second call err = %v, want ErrPending", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first call err = %v", err)
	}
	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Fatalf("server hits = %d, want 1", got)
	}

	// 在途结束后允许再次操作
	if err := coord.IncrementView(context.Background(), "7"); err != nil {
		t.Fatalf("third call err = %v", err)
	}
}

func TestCoordinatorConfirmRejected(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte(`{"code":0,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Tokens.Set("test-token")
	inv := NewInvalidator()
	defer inv.Close()
	coord := NewCoordinator(c, inv, func(string) bool { return false }, nil)

	if err := coord.DeleteIdea(context.Background(), "7"); err != ErrCancelled {
		t.Fatalf("delete err = %v, want ErrCancelled", err)
	}
	if err := coord.ReportIdea(context.Background(), "7", "spam"); err != ErrCancelled {
		t.Fatalf("report err = %v, want ErrCancelled", err)
	}
	if got := atomic.LoadInt64(&hits); got != 0 {
		t.Fatalf("server hits = %d, want 0 (no request without confirmation)", got)
	}
}

func TestCoordinatorPublishesOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":0,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Tokens.Set("test-token")
	inv := NewInvalidator()
	defer inv.Close()

	received := make(chan string, 8)
	unsub := inv.Subscribe(func(key string) { received <- key })
	defer unsub()

	coord := NewCoordinator(c, inv, func(string) bool { return true }, nil)
	if err := coord.DeleteIdea(context.Background(), "7"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := map[string]bool{KeyIdeas: false, IdeaKey("7"): false}
	timeout := time.After(time.Second)
	for i := 0; i < len(want); i++ {
		select {
		case key := <-received:
			if _, ok := want[key]; !ok {
				t.Fatalf("unexpected key %q", key)
			}
			want[key] = true
		case <-timeout:
			t.Fatalf("timed out waiting for invalidation keys, got %v", want)
		}
	}
}

func TestSubmitReactionBodyCarriesUserID(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"code":0,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Tokens.Set("test-token")
	c.SetUserID("9")
	inv := NewInvalidator()
	defer inv.Close()
	coord := NewCoordinator(c, inv, nil, nil)

	if err := coord.SubmitReaction(context.Background(), "7", "like", ""); err != nil {
		t.Fatalf("submit: %v", err)
	}

	var body map[string]string
	if err := json.Unmarshal(gotBody, &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["ideaId"] != "7" || body["userId"] != "9" || body["reaction"] != "like" {
		t.Fatalf("body = %v", body)
	}
}

func TestCoordinatorFailureNotifiesAndSkipsPublish(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code":500,"message":"创意不存在"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Tokens.Set("test-token")
	inv := NewInvalidator()
	defer inv.Close()

	published := make(chan string, 8)
	unsub := inv.Subscribe(func(key string) { published <- key })
	defer unsub()

	var notified string
	coord := NewCoordinator(c, inv, nil, func(msg string) { notified = msg })

	err := coord.SubmitComment(context.Background(), "7", "hello", false)
	if err == nil {
		t.Fatal("expected error")
	}
	if notified == "" {
		t.Fatal("expected transient notice on failure")
	}

	select {
	case key := <-published:
		t.Fatalf("unexpected publish %q after failure", key)
	case <-time.After(50 * time.Millisecond):
	}
}
