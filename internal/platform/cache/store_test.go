package cache

import (
	"context"
	"testing"
	"time"
)

func TestStoreSetGet(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "snapshot", 42)

	value, ok := store.Get(ctx, "snapshot")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if value.(int) != 42 {
		t.Fatalf("unexpected value: %v", value)
	}

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatal("expected cache miss for unknown key")
	}
}

func TestStoreExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "key", "value")
	time.Sleep(25 * time.Millisecond)

	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatal("entry should have expired")
	}
	if store.Len() != 0 {
		t.Fatalf("expired entry should be evicted on read, len=%d", store.Len())
	}
}

func TestStoreZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()

	store.Set(ctx, "key", "value")
	time.Sleep(5 * time.Millisecond)

	if _, ok := store.Get(ctx, "key"); !ok {
		t.Fatal("zero TTL entries must not expire")
	}
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "key", "value")
	store.Delete(ctx, "key")

	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatal("deleted entry should be gone")
	}
}

func TestStoreIgnoresEmptyKey(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "", "value")
	if store.Len() != 0 {
		t.Fatal("empty keys must not be stored")
	}
	if _, ok := store.Get(ctx, ""); ok {
		t.Fatal("empty key lookups must miss")
	}
}
