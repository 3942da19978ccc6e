package keypool

import (
	"errors"
	"testing"
	"time"
)

func newTestPool(t *testing.T, keys ...string) *Pool {
	t.Helper()
	p, err := New(keys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestNewRejectsEmptyInput(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil keys")
	}
	if _, err := New([]string{"", "  "}); err == nil {
		t.Fatal("expected error for blank keys")
	}
}

func TestNewDropsBlankKeys(t *testing.T) {
	p := newTestPool(t, "key-one", "", "  key-two  ")
	if p.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", p.Len())
	}
}

func TestNextRoundRobin(t *testing.T) {
	p := newTestPool(t, "alpha", "beta", "gamma")

	var got []string
	for i := 0; i < 6; i++ {
		key, _, err := p.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, key)
	}

	want := []string{"alpha", "beta", "gamma", "alpha", "beta", "gamma"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rotation order %v, want %v", got, want)
		}
	}
}

func TestQuotaErrorTriggersCooldown(t *testing.T) {
	p := newTestPool(t, "alpha", "beta")

	_, id, err := p.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.ReportFailure(id, errors.New("googleapi: Error 429: quota exceeded"))

	// The quota key must be skipped until the cooldown expires.
	for i := 0; i < 4; i++ {
		key, _, err := p.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key != "beta" {
			t.Fatalf("expected beta while alpha cools down, got %q", key)
		}
	}

	h := p.Snapshot()
	if h.CooldownKeys != 1 || h.UsableKeys != 1 {
		t.Fatalf("unexpected health: %+v", h)
	}
}

func TestCooldownExpires(t *testing.T) {
	p := newTestPool(t, "alpha")
	now := time.Now()
	p.now = func() time.Time { return now }

	_, id, _ := p.Next()
	p.ReportFailure(id, errors.New("rate limit hit"))

	if _, _, err := p.Next(); err == nil {
		t.Fatal("expected error while the only key cools down")
	}

	now = now.Add(quotaCooldown + time.Minute)
	if _, _, err := p.Next(); err != nil {
		t.Fatalf("expected key to recover after cooldown, got %v", err)
	}
}

func TestConsecutiveFailuresMarkUnhealthy(t *testing.T) {
	p := newTestPool(t, "alpha", "beta")

	for i := 0; i < maxConsecutiveFailures; i++ {
		p.ReportFailure(1, errors.New("connection reset"))
	}

	key, _, err := p.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "beta" {
		t.Fatalf("expected unhealthy key to be skipped, got %q", key)
	}
}

func TestSuccessRestoresHealth(t *testing.T) {
	p := newTestPool(t, "alpha")

	for i := 0; i < maxConsecutiveFailures; i++ {
		p.ReportFailure(1, errors.New("boom"))
	}
	if _, _, err := p.Next(); err == nil {
		t.Fatal("expected error with all keys unhealthy")
	}

	p.ReportSuccess(1)
	if _, _, err := p.Next(); err != nil {
		t.Fatalf("expected recovered key, got %v", err)
	}
}

func TestResetClearsCooldown(t *testing.T) {
	p := newTestPool(t, "alpha")
	p.ReportFailure(1, errors.New("429 too many requests"))

	if _, _, err := p.Next(); err == nil {
		t.Fatal("expected cooldown error")
	}
	p.Reset(1)
	if _, _, err := p.Next(); err != nil {
		t.Fatalf("expected reset key to be usable, got %v", err)
	}
}

func TestIsQuotaError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("Error 429: Resource exhausted"), true},
		{errors.New("quota exceeded for model"), true},
		{errors.New("rate limit reached"), true},
		{errors.New("connection timeout"), false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := IsQuotaError(tc.err); got != tc.want {
			t.Errorf("IsQuotaError(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestSnapshotMasksKeys(t *testing.T) {
	p := newTestPool(t, "AIzaSyExampleKey12345", "short")

	h := p.Snapshot()
	if h.Keys[0].MaskedKey == "AIzaSyExampleKey12345" {
		t.Fatal("snapshot must not expose full key")
	}
	if h.Keys[1].MaskedKey != "***" {
		t.Fatalf("short keys should be fully masked, got %q", h.Keys[1].MaskedKey)
	}
}
