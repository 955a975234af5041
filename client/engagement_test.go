package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type fakeObserver struct {
	cb func(float64)
}

func (f *fakeObserver) Observe(onChange func(ratio float64)) (cancel func()) {
	f.cb = onChange
	return func() { f.cb = nil }
}

func (f *fakeObserver) emit(ratio float64) {
	if f.cb != nil {
		f.cb(ratio)
	}
}

func newCountingServer(t *testing.T, views, reactions *int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/view/idea/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(views, 1)
		w.Write([]byte(`{"code":0,"message":"ok"}`))
	})
	mux.HandleFunc("/api/createReaction", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(reactions, 1)
		w.Write([]byte(`{"code":0,"message":"ok","data":{"changed":true}}`))
	})
	return httptest.NewServer(mux)
}

func newTestTracker(t *testing.T, srvURL string, opts ...TrackerOption) (*Tracker, *Invalidator) {
	t.Helper()
	c := New(srvURL)
	c.Tokens.Set("test-token")
	inv := NewInvalidator()
	coord := NewCoordinator(c, inv, nil, nil)
	opts = append([]TrackerOption{WithDwell(20 * time.Millisecond)}, opts...)
	return NewTracker("42", coord, c, opts...), inv
}

func TestTrackerCountsOnceAfterDwell(t *testing.T) {
	var views, reactions int64
	srv := newCountingServer(t, &views, &reactions)
	defer srv.Close()

	tracker, inv := newTestTracker(t, srv.URL)
	defer inv.Close()
	obs := &fakeObserver{}
	tracker.Attach(obs)

	obs.emit(0.8)
	time.Sleep(100 * time.Millisecond)

	if got := atomic.LoadInt64(&views); got != 1 {
		t.Fatalf("views = %d, want 1", got)
	}
	if !tracker.Counted() {
		t.Fatal("tracker should be in counted state")
	}

	// 终态后再怎么晃动可见度都不再计数
	obs.emit(0.1)
	obs.emit(0.9)
	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt64(&views); got != 1 {
		t.Fatalf("views after re-show = %d, want 1", got)
	}
}

func TestTrackerBelowThresholdNeverCounts(t *testing.T) {
	var views, reactions int64
	srv := newCountingServer(t, &views, &reactions)
	defer srv.Close()

	tracker, inv := newTestTracker(t, srv.URL)
	defer inv.Close()
	obs := &fakeObserver{}
	tracker.Attach(obs)

	obs.emit(0.3)
	time.Sleep(80 * time.Millisecond)

	if got := atomic.LoadInt64(&views); got != 0 {
		t.Fatalf("views = %d, want 0", got)
	}
	if tracker.Counted() {
		t.Fatal("tracker should not be counted")
	}
}

func TestTrackerEarlyExitCancelsDwell(t *testing.T) {
	var views, reactions int64
	srv := newCountingServer(t, &views, &reactions)
	defer srv.Close()

	tracker, inv := newTestTracker(t, srv.URL, WithDwell(50*time.Millisecond))
	defer inv.Close()
	obs := &fakeObserver{}
	tracker.Attach(obs)

	obs.emit(0.8)
	time.Sleep(10 * time.Millisecond)
	obs.emit(0.2) // 驻留期内离开
	time.Sleep(120 * time.Millisecond)

	if got := atomic.LoadInt64(&views); got != 0 {
		t.Fatalf("views = %d, want 0", got)
	}

	// 再次进入并停满, 这次要计数
	obs.emit(0.9)
	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt64(&views); got != 1 {
		t.Fatalf("views after re-entry = %d, want 1", got)
	}
}

func TestTrackerCloseCancelsPending(t *testing.T) {
	var views, reactions int64
	srv := newCountingServer(t, &views, &reactions)
	defer srv.Close()

	tracker, inv := newTestTracker(t, srv.URL, WithDwell(50*time.Millisecond))
	defer inv.Close()
	obs := &fakeObserver{}
	tracker.Attach(obs)

	obs.emit(0.8)
	time.Sleep(10 * time.Millisecond)
	tracker.Close()
	time.Sleep(120 * time.Millisecond)

	if got := atomic.LoadInt64(&views); got != 0 {
		t.Fatalf("views after close = %d, want 0", got)
	}
}

func TestReactRequiresLogin(t *testing.T) {
	var views, reactions int64
	srv := newCountingServer(t, &views, &reactions)
	defer srv.Close()

	c := New(srv.URL) // 未登录
	inv := NewInvalidator()
	defer inv.Close()

	var notified string
	coord := NewCoordinator(c, inv, nil, func(msg string) { notified = msg })
	tracker := NewTracker("42", coord, c)

	if err := tracker.React(context.Background(), "like"); err != ErrNotLoggedIn {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}
	if got := atomic.LoadInt64(&reactions); got != 0 {
		t.Fatalf("reactions = %d, want 0 (no network on local rejection)", got)
	}
	if notified == "" {
		t.Fatal("expected login notice")
	}
}

func TestReactSameKindIsNoop(t *testing.T) {
	var views, reactions int64
	srv := newCountingServer(t, &views, &reactions)
	defer srv.Close()

	tracker, inv := newTestTracker(t, srv.URL)
	defer inv.Close()
	tracker.SetActiveKind("like")

	if err := tracker.React(context.Background(), "like"); err != nil {
		t.Fatalf("React: %v", err)
	}
	if got := atomic.LoadInt64(&reactions); got != 0 {
		t.Fatalf("reactions = %d, want 0 (same kind is idempotent)", got)
	}
}

func TestReactSwitchKindSendsOneRequest(t *testing.T) {
	var views, reactions int64
	srv := newCountingServer(t, &views, &reactions)
	defer srv.Close()

	tracker, inv := newTestTracker(t, srv.URL)
	defer inv.Close()
	tracker.SetActiveKind("like")

	if err := tracker.React(context.Background(), "unlike"); err != nil {
		t.Fatalf("React: %v", err)
	}
	if got := atomic.LoadInt64(&reactions); got != 1 {
		t.Fatalf("reactions = %d, want 1", got)
	}
	if tracker.ActiveKind() != "unlike" {
		t.Fatalf("active kind = %s, want unlike", tracker.ActiveKind())
	}
}
