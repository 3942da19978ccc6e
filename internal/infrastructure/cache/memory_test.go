package cache

import (
	"context"
	"sort"
	"testing"
	"time"
)

func TestMemoryStoreSetGet(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	if err := ms.Set(ctx, "session:1", "active", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok, err := ms.Get(ctx, "session:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "active" {
		t.Fatalf("expected active, got %q (found=%v)", value, ok)
	}
}

func TestMemoryStoreExpiration(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	_ = ms.Set(ctx, "ephemeral", "v", -time.Second)
	if _, ok, _ := ms.Get(ctx, "ephemeral"); ok {
		t.Fatal("expected expired key to be missing")
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	ms := NewMemoryStore()
	if _, ok, err := ms.Get(context.Background(), "nope"); ok || err != nil {
		t.Fatalf("expected miss without error, got found=%v err=%v", ok, err)
	}
}

func TestMemoryStoreSets(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	if err := ms.AddToSet(ctx, "session:1:asked", "12", "7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Duplicate member is a no-op.
	_ = ms.AddToSet(ctx, "session:1:asked", "12")

	members, err := ms.SetMembers(ctx, "session:1:asked")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sort.Strings(members)
	if len(members) != 2 || members[0] != "12" || members[1] != "7" {
		t.Fatalf("unexpected members: %v", members)
	}
}

func TestMemoryStoreDeleteRemovesSets(t *testing.T) {
	ms := NewMemoryStore()
	ctx := context.Background()

	_ = ms.AddToSet(ctx, "k", "a")
	_ = ms.Delete(ctx, "k")

	members, _ := ms.SetMembers(ctx, "k")
	if len(members) != 0 {
		t.Fatalf("expected empty set after delete, got %v", members)
	}
}
