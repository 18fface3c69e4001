package cache

import (
	"context"
	"errors"
	"io"
	"testing"
)

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	fc := NewFileCache(t.TempDir())

	if err := fc.Put(ctx, "recipe/apple-pie", "contents", Unconditional()); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	rc, err := fc.Get(ctx, "recipe/apple-pie")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "contents" {
		t.Errorf("unexpected body %q", body)
	}

	ok, err := fc.Exists(ctx, "recipe/apple-pie")
	if err != nil || !ok {
		t.Errorf("expected key to exist, ok=%v err=%v", ok, err)
	}
}

func TestFileCacheNotFound(t *testing.T) {
	fc := NewFileCache(t.TempDir())
	if _, err := fc.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileCacheIfNoneMatch(t *testing.T) {
	ctx := context.Background()
	fc := NewFileCache(t.TempDir())

	if err := fc.Put(ctx, "k", "v1", IfNoneMatch()); err != nil {
		t.Fatalf("first conditional put failed: %v", err)
	}
	if err := fc.Put(ctx, "k", "v2", IfNoneMatch()); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestFileCacheList(t *testing.T) {
	ctx := context.Background()
	fc := NewFileCache(t.TempDir())

	for _, key := range []string{"recipe/b", "recipe/a", "other/x"} {
		if err := fc.Put(ctx, key, "{}", Unconditional()); err != nil {
			t.Fatalf("put %s failed: %v", key, err)
		}
	}

	keys, err := fc.List(ctx, "recipe/", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("unexpected keys %v", keys)
	}
}
