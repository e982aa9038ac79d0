package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	ctx := context.Background()
	kv, err := OpenSQLiteKV(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteKV failed: %v", err)
	}
	t.Cleanup(func() {
		if err := kv.Close(); err != nil {
			t.Logf("kv close failed: %v", err)
		}
	})
	return kv
}

func TestSQLiteKVGetAbsent(t *testing.T) {
	kv := openTestKV(t)
	_, ok, err := kv.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Fatalf("expected absent key")
	}
}

func TestSQLiteKVSetGetOverwrite(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if got != "v2" {
		t.Fatalf("Get = %q, want v2", got)
	}
}

func TestSQLiteKVPersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	kv, err := OpenSQLiteKV(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLiteKV failed: %v", err)
	}
	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	kv2, err := OpenSQLiteKV(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer kv2.Close()
	got, ok, err := kv2.Get(ctx, "k")
	if err != nil || !ok || got != "v" {
		t.Fatalf("Get after reopen = %q, %v, %v", got, ok, err)
	}
}
