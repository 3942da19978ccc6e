// Package keypool manages a rotating pool of API keys with health tracking.
// Keys that hit quota limits enter a cooldown period and are skipped until
// they recover; keys with repeated failures are marked unhealthy.
package keypool

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	maxConsecutiveFailures = 3
	quotaCooldown          = time.Hour
)

var quotaIndicators = []string{"429", "quota", "resource exhausted", "rate limit"}

// keyStatus tracks health of a single key.
type keyStatus struct {
	key                 string
	id                  int
	healthy             bool
	successCount        int
	failureCount        int
	quotaExceededCount  int
	consecutiveFailures int
	lastError           string
	lastSuccess         time.Time
	lastFailure         time.Time
	cooldownUntil       time.Time
}

func (s *keyStatus) inCooldown(now time.Time) bool {
	return !s.cooldownUntil.IsZero() && now.Before(s.cooldownUntil)
}

func (s *keyStatus) usable(now time.Time) bool {
	return s.healthy && !s.inCooldown(now)
}

func (s *keyStatus) maskedKey() string {
	if len(s.key) > 8 {
		return s.key[:4] + "..." + s.key[len(s.key)-4:]
	}
	return "***"
}

// KeyInfo is a point-in-time snapshot of a single key's health.
type KeyInfo struct {
	ID                  int    `json:"id"`
	MaskedKey           string `json:"masked_key"`
	Healthy             bool   `json:"healthy"`
	Usable              bool   `json:"usable"`
	InCooldown          bool   `json:"in_cooldown"`
	CooldownUntil       string `json:"cooldown_until,omitempty"`
	SuccessCount        int    `json:"success_count"`
	FailureCount        int    `json:"failure_count"`
	QuotaExceededCount  int    `json:"quota_exceeded_count"`
	ConsecutiveFailures int    `json:"consecutive_failures"`
	LastError           string `json:"last_error,omitempty"`
}

// Health is an aggregate snapshot of the pool.
type Health struct {
	TotalKeys     int       `json:"total_keys"`
	UsableKeys    int       `json:"usable_keys"`
	CooldownKeys  int       `json:"cooldown_keys"`
	UnhealthyKeys int       `json:"unhealthy_keys"`
	Keys          []KeyInfo `json:"keys"`
}

// Pool rotates over a set of API keys round-robin, skipping keys that are in
// quota cooldown or marked unhealthy. Safe for concurrent use.
type Pool struct {
	mu       sync.Mutex
	statuses []*keyStatus
	current  int
	now      func() time.Time
}

// New creates a pool from the given keys. Blank keys are dropped.
func New(keys []string) (*Pool, error) {
	var statuses []*keyStatus
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		statuses = append(statuses, &keyStatus{
			key:     k,
			id:      len(statuses) + 1,
			healthy: true,
		})
	}
	if len(statuses) == 0 {
		return nil, fmt.Errorf("keypool: at least one API key is required")
	}
	return &Pool{statuses: statuses, now: time.Now}, nil
}

// Len returns the number of keys in the pool.
func (p *Pool) Len() int {
	return len(p.statuses)
}

// Next returns the next usable key and its id. It walks the pool at most once;
// if every key is unhealthy or cooling down it returns an error describing the
// earliest expected recovery.
func (p *Pool) Next() (string, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	for attempts := 0; attempts < len(p.statuses); attempts++ {
		status := p.statuses[p.current]
		p.current = (p.current + 1) % len(p.statuses)
		if status.usable(now) {
			return status.key, status.id, nil
		}
	}

	var earliest time.Time
	for _, s := range p.statuses {
		if s.inCooldown(now) && (earliest.IsZero() || s.cooldownUntil.Before(earliest)) {
			earliest = s.cooldownUntil
		}
	}
	if !earliest.IsZero() {
		return "", 0, fmt.Errorf("keypool: all %d keys exhausted, earliest recovery at %s",
			len(p.statuses), earliest.Format(time.RFC3339))
	}
	return "", 0, fmt.Errorf("keypool: all %d keys are unhealthy", len(p.statuses))
}

// ReportSuccess records a successful call for the key and clears any
// unhealthy state.
func (p *Pool) ReportSuccess(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.find(id)
	if s == nil {
		return
	}
	s.lastSuccess = p.now()
	s.successCount++
	s.consecutiveFailures = 0
	s.healthy = true
	s.lastError = ""
	s.cooldownUntil = time.Time{}
}

// ReportFailure records a failed call. Quota errors put the key into a
// one-hour cooldown immediately; other errors mark it unhealthy after
// repeated consecutive failures.
func (p *Pool) ReportFailure(id int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.find(id)
	if s == nil {
		return
	}
	now := p.now()
	s.lastFailure = now
	s.failureCount++
	s.consecutiveFailures++
	if err != nil {
		s.lastError = err.Error()
	}

	if err != nil && IsQuotaError(err) {
		s.quotaExceededCount++
		s.cooldownUntil = now.Add(quotaCooldown)
		s.healthy = false
	} else if s.consecutiveFailures >= maxConsecutiveFailures {
		s.healthy = false
	}
}

// Reset manually restores a key to healthy, clearing its cooldown.
func (p *Pool) Reset(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.find(id)
	if s == nil {
		return
	}
	s.healthy = true
	s.consecutiveFailures = 0
	s.cooldownUntil = time.Time{}
	s.lastError = ""
}

// Snapshot reports the current health of every key.
func (p *Pool) Snapshot() Health {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	h := Health{TotalKeys: len(p.statuses)}
	for _, s := range p.statuses {
		info := KeyInfo{
			ID:                  s.id,
			MaskedKey:           s.maskedKey(),
			Healthy:             s.healthy,
			Usable:              s.usable(now),
			InCooldown:          s.inCooldown(now),
			SuccessCount:        s.successCount,
			FailureCount:        s.failureCount,
			QuotaExceededCount:  s.quotaExceededCount,
			ConsecutiveFailures: s.consecutiveFailures,
			LastError:           s.lastError,
		}
		if !s.cooldownUntil.IsZero() {
			info.CooldownUntil = s.cooldownUntil.Format(time.RFC3339)
		}
		h.Keys = append(h.Keys, info)

		switch {
		case info.Usable:
			h.UsableKeys++
		case info.InCooldown:
			h.CooldownKeys++
		default:
			h.UnhealthyKeys++
		}
	}
	return h
}

func (p *Pool) find(id int) *keyStatus {
	if id < 1 || id > len(p.statuses) {
		return nil
	}
	return p.statuses[id-1]
}

// IsQuotaError reports whether err looks like a quota or rate-limit failure.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, indicator := range quotaIndicators {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}
