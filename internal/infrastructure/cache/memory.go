package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a simple in-memory Store with expiration, used when Redis
// is not configured.
type MemoryStore struct {
	mu   sync.RWMutex
	items map[string]*memoryItem
	sets  map[string]*memorySet
}

type memoryItem struct {
	value      string
	expireTime time.Time
}

type memorySet struct {
	members    map[string]struct{}
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		sets:  make(map[string]*memorySet),
	}

	// Cleanup goroutine removes expired entries
	go store.cleanupExpired()

	return store
}

func (ms *MemoryStore) Set(_ context.Context, key, value string, expiration time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[key] = &memoryItem{
		value:      value,
		expireTime: time.Now().Add(expiration),
	}
	return nil
}

func (ms *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[key]
	if !exists || time.Now().After(item.expireTime) {
		return "", false, nil
	}
	return item.value, true, nil
}

func (ms *MemoryStore) Delete(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
	delete(ms.sets, key)
	return nil
}

func (ms *MemoryStore) AddToSet(_ context.Context, key string, members ...string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	set, exists := ms.sets[key]
	if !exists || (!set.expireTime.IsZero() && time.Now().After(set.expireTime)) {
		set = &memorySet{members: make(map[string]struct{})}
		ms.sets[key] = set
	}
	for _, m := range members {
		set.members[m] = struct{}{}
	}
	return nil
}

func (ms *MemoryStore) SetMembers(_ context.Context, key string) ([]string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	set, exists := ms.sets[key]
	if !exists || (!set.expireTime.IsZero() && time.Now().After(set.expireTime)) {
		return nil, nil
	}
	members := make([]string, 0, len(set.members))
	for m := range set.members {
		members = append(members, m)
	}
	return members, nil
}

func (ms *MemoryStore) Expire(_ context.Context, key string, expiration time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if item, exists := ms.items[key]; exists {
		item.expireTime = time.Now().Add(expiration)
	}
	if set, exists := ms.sets[key]; exists {
		set.expireTime = time.Now().Add(expiration)
	}
	return nil
}

func (ms *MemoryStore) Close() error {
	return nil
}

// cleanupExpired periodically removes expired entries
func (ms *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, item := range ms.items {
			if now.After(item.expireTime) {
				delete(ms.items, key)
			}
		}
		for key, set := range ms.sets {
			if !set.expireTime.IsZero() && now.After(set.expireTime) {
				delete(ms.sets, key)
			}
		}
		ms.mu.Unlock()
	}
}
