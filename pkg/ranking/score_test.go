package ranking

import (
	"testing"
	"time"
)

func TestScore_ZeroEngagement(t *testing.T) {
	got := Score(time.Now(), 0, 0, 0, 0)
	if got != 0 {
		t.Fatalf("expected 0 for no engagement, got %f", got)
	}
}

func TestScore_MoreLikesRankHigher(t *testing.T) {
	created := time.Now().Add(-3 * time.Hour)
	low := Score(created, 2, 0, 0, 10)
	high := Score(created, 50, 0, 0, 10)
	if high <= low {
		t.Fatalf("expected more likes to score higher: high=%f low=%f", high, low)
	}
}

func TestScore_TimeDecay(t *testing.T) {
	fresh := Score(time.Now().Add(-1*time.Hour), 10, 0, 5, 100)
	stale := Score(time.Now().Add(-72*time.Hour), 10, 0, 5, 100)
	if fresh <= stale {
		t.Fatalf("expected fresh idea to score higher: fresh=%f stale=%f", fresh, stale)
	}
}

func TestScore_UnlikesPullDown(t *testing.T) {
	created := time.Now().Add(-5 * time.Hour)
	clean := Score(created, 10, 0, 0, 0)
	disputed := Score(created, 10, 8, 0, 0)
	if disputed >= clean {
		t.Fatalf("expected unlikes to lower the score: clean=%f disputed=%f", clean, disputed)
	}
}

func TestScore_NeverNegative(t *testing.T) {
	got := Score(time.Now().Add(-2*time.Hour), 0, 100, 0, 0)
	if got < 0 {
		t.Fatalf("score must not go negative, got %f", got)
	}
}
