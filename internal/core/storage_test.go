package core

import (
	"path/filepath"
	"testing"

	"codelistcore/internal/infra/persistence/memory"
	"codelistcore/internal/infra/persistence/sqlite"
)

func TestOpenPersistentStoreDefaultSQLite(t *testing.T) {
	t.Setenv("CODELIST_STORAGE_DRIVER", "")
	t.Setenv("CODELIST_SQLITE_PATH", filepath.Join(t.TempDir(), "codelists.db"))
	store, err := OpenPersistentStore()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s, ok := store.(*sqlite.Store)
	if !ok {
		t.Fatalf("expected sqlite store, got %T", store)
	}
	_ = s.Close()
}

func TestOpenPersistentStoreMemory(t *testing.T) {
	t.Setenv("CODELIST_STORAGE_DRIVER", "memory")
	store, err := OpenPersistentStore()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := store.(*memory.Store); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}
}

func TestOpenPersistentStoreCustomSQLitePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lists.db")
	t.Setenv("CODELIST_STORAGE_DRIVER", "sqlite")
	t.Setenv("CODELIST_SQLITE_PATH", path)
	store, err := OpenPersistentStore()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s := store.(*sqlite.Store)
	defer func() { _ = s.Close() }()
	if s.Path() != path {
		t.Fatalf("unexpected path %q", s.Path())
	}
}

func TestOpenPersistentStoreUnknownDriver(t *testing.T) {
	t.Setenv("CODELIST_STORAGE_DRIVER", "bogus")
	if _, err := OpenPersistentStore(); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}
