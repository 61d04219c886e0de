package postgres

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"codelistcore/pkg/domain"
)

// openSQLiteBackend routes the store's database handle to an embedded SQLite
// file. SQLite accepts the $n placeholders and the upsert syntax the store
// emits, so the persistence path is exercised end to end without a server.
func openSQLiteBackend(t *testing.T, path string) func() {
	t.Helper()
	restore := OverrideSQLOpen(func(_, _ string) (*sql.DB, error) {
		return sql.Open("sqlite", path)
	})
	return restore
}

func TestPersistAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backend.db")
	restore := openSQLiteBackend(t, path)
	defer restore()
	ctx := context.Background()

	store, err := NewStore("")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	list := domain.NewCodeList("sepsis", domain.ClassificationOPCS, domain.DefaultMetadata(domain.SourceLoadedFromFile), nil)
	if err := list.AddEntry("L31.1", "Percutaneous transluminal angioplasty", nil); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if err := store.RunInTransaction(ctx, func(tx domain.Transaction) error {
		return tx.CreateList(list)
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewStore("")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	err = reopened.View(ctx, func(v domain.TransactionView) error {
		loaded, ok := v.FindList("sepsis")
		if !ok {
			t.Fatalf("list not reloaded")
		}
		if !loaded.Equal(list) {
			t.Fatalf("reloaded list differs from the stored one")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestOpenError(t *testing.T) {
	wantErr := errors.New("connection refused")
	restore := OverrideSQLOpen(func(_, _ string) (*sql.DB, error) {
		return nil, wantErr
	})
	defer restore()
	if _, err := NewStore("postgres://example/db"); !errors.Is(err, wantErr) {
		t.Fatalf("expected open error, got %v", err)
	}
}
