package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func testStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	body := "code,term\nA01,Typhoid fever\n"
	info, err := store.Put(ctx, "exports/sepsis/v1.csv", strings.NewReader(body), PutOptions{
		ContentType: "text/csv",
		Metadata:    map[string]string{"list": "sepsis"},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Size != int64(len(body)) {
		t.Fatalf("unexpected size %d", info.Size)
	}
	if info.ETag == "" {
		t.Fatalf("expected an etag")
	}

	if _, err := store.Put(ctx, "exports/sepsis/v1.csv", strings.NewReader("x"), PutOptions{}); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists on second put, got %v", err)
	}

	got, rc, err := store.Get(ctx, "exports/sepsis/v1.csv")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	data, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != body {
		t.Fatalf("unexpected body %q", string(data))
	}
	if got.ContentType != "text/csv" || got.Metadata["list"] != "sepsis" {
		t.Fatalf("metadata not round-tripped: %+v", got)
	}

	head, err := store.Head(ctx, "exports/sepsis/v1.csv")
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if head.ETag != info.ETag {
		t.Fatalf("head etag mismatch: %q vs %q", head.ETag, info.ETag)
	}

	if _, err := store.Head(ctx, "exports/missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, _, err := store.Get(ctx, "exports/missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := store.Put(ctx, "exports/sepsis/v1.json", strings.NewReader("{}"), PutOptions{ContentType: "application/json"}); err != nil {
		t.Fatalf("put json: %v", err)
	}
	if _, err := store.Put(ctx, "logs/sepsis.log", strings.NewReader("line\n"), PutOptions{}); err != nil {
		t.Fatalf("put log: %v", err)
	}
	infos, err := store.List(ctx, "exports/")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 export artifacts, got %d", len(infos))
	}
	if infos[0].Key != "exports/sepsis/v1.csv" || infos[1].Key != "exports/sepsis/v1.json" {
		t.Fatalf("list not sorted by key: %v", infos)
	}

	ok, err := store.Delete(ctx, "logs/sepsis.log")
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	ok, err = store.Delete(ctx, "logs/sepsis.log")
	if err != nil || ok {
		t.Fatalf("second delete must report absence: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()
	if store.Driver() != DriverMemory {
		t.Fatalf("unexpected driver %s", store.Driver())
	}
	testStoreContract(t, store)
}

func TestFilesystemStore(t *testing.T) {
	store, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("new filesystem store: %v", err)
	}
	if store.Driver() != DriverFilesystem {
		t.Fatalf("unexpected driver %s", store.Driver())
	}
	testStoreContract(t, store)
}

func TestFilesystemKeySanitization(t *testing.T) {
	store, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("new filesystem store: %v", err)
	}
	ctx := context.Background()
	for _, key := range []string{"", "  ", "/abs/path", "../escape", "a/../../b"} {
		if _, err := store.Put(ctx, key, strings.NewReader("x"), PutOptions{}); err == nil {
			t.Fatalf("expected key %q to be rejected", key)
		}
	}
}

func TestOpenSelectsDriver(t *testing.T) {
	t.Setenv("CODELIST_BLOB_DRIVER", "memory")
	store, err := Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if store.Driver() != DriverMemory {
		t.Fatalf("unexpected driver %s", store.Driver())
	}

	t.Setenv("CODELIST_BLOB_DRIVER", "fs")
	t.Setenv("CODELIST_BLOB_FS_ROOT", t.TempDir())
	store, err = Open(context.Background())
	if err != nil {
		t.Fatalf("open fs: %v", err)
	}
	if store.Driver() != DriverFilesystem {
		t.Fatalf("unexpected driver %s", store.Driver())
	}

	t.Setenv("CODELIST_BLOB_DRIVER", "bogus")
	if _, err := Open(context.Background()); err == nil {
		t.Fatalf("expected unknown driver error")
	}

	t.Setenv("CODELIST_BLOB_DRIVER", "s3")
	t.Setenv("CODELIST_BLOB_S3_BUCKET", "")
	if _, err := Open(context.Background()); err == nil {
		t.Fatalf("expected missing bucket error")
	}
}
