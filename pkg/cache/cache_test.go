package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	key := NewDefaultKeyer().ArtifactKey("abc123", ArtifactKeyOpts{Format: "png"})
	if err := c.Set(ctx, key, []byte("image-bytes"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get = %v, ok=%v", err, ok)
	}
	if string(data) != "image-bytes" {
		t.Errorf("data = %q", data)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	defer c.Close()

	_, ok, err := c.Get(context.Background(), "artifact:missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected miss")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "artifact:short", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	_, ok, err := c.Get(ctx, "artifact:short")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "artifact:k", []byte("x"), 0)
	if err := c.Delete(ctx, "artifact:k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "artifact:k"); ok {
		t.Error("deleted entry should be a miss")
	}
	// Deleting a missing key is fine.
	if err := c.Delete(ctx, "artifact:k"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("null cache should never hit")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "png"})
	b := k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "svg"})
	c := k.ArtifactKey("hash2", ArtifactKeyOpts{Format: "png"})

	if !strings.HasPrefix(a, "artifact:") {
		t.Errorf("key = %q, want artifact: prefix", a)
	}
	if a == b || a == c {
		t.Error("different options must produce different keys")
	}
	if a != k.ArtifactKey("hash1", ArtifactKeyOpts{Format: "png"}) {
		t.Error("keyer must be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "team-a:")

	key := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(key, "team-a:artifact:") {
		t.Errorf("key = %q", key)
	}
	if strings.TrimPrefix(key, "team-a:") != inner.ArtifactKey("h", ArtifactKeyOpts{Format: "svg"}) {
		t.Error("scoped key should wrap the inner key")
	}
}

func TestHash(t *testing.T) {
	h := Hash([]byte("digraph G {}"))
	if len(h) != 64 {
		t.Errorf("hash length = %d, want 64", len(h))
	}
	if h != Hash([]byte("digraph G {}")) {
		t.Error("hash must be deterministic")
	}
	if h == Hash([]byte("digraph H {}")) {
		t.Error("different input must hash differently")
	}
}
