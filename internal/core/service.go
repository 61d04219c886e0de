// Package core exposes the transactional service facade over the codelist
// domain: list lifecycle, entry and metadata mutation with activity logging,
// validation, and artifact export.
package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"codelistcore/internal/blob"
	"codelistcore/internal/infra/persistence/memory"
	"codelistcore/pkg/domain"
	"codelistcore/pkg/validation"
)

// Service wraps a persistent store with higher-level codelist operations.
// Every mutation runs in a store transaction, stamps the list's provenance
// and appends to its activity log.
type Service struct {
	store     PersistentStore
	artifacts blob.Store
	metrics   MetricsRecorder
	tracer    Tracer
}

// NewService constructs a service backed by the supplied store.
func NewService(store PersistentStore, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewInMemoryService creates a service over a fresh in-memory store.
func NewInMemoryService(opts ...Option) *Service {
	return NewService(memory.NewStore(), opts...)
}

// WithArtifactStore attaches a blob store for exports. Export operations fail
// when none is configured.
func WithArtifactStore(store blob.Store) Option {
	return func(s *Service) { s.artifacts = store }
}

// Store returns the underlying storage implementation.
func (s *Service) Store() PersistentStore { return s.store }

// CreateList persists a new list under its name.
func (s *Service) CreateList(ctx context.Context, list *CodeList) (*CodeList, error) {
	var created *CodeList
	err := s.instrument(ctx, "create_list", func(ctx context.Context) error {
		return s.store.RunInTransaction(ctx, func(tx Transaction) error {
			if err := tx.CreateList(list); err != nil {
				return err
			}
			var ok bool
			created, ok = tx.FindList(list.Name)
			if !ok {
				return domain.ListNotFoundError{Name: list.Name}
			}
			return nil
		})
	})
	return created, err
}

// GetList returns a copy of the named list.
func (s *Service) GetList(ctx context.Context, name string) (*CodeList, error) {
	var found *CodeList
	err := s.instrument(ctx, "get_list", func(ctx context.Context) error {
		return s.store.View(ctx, func(v TransactionView) error {
			list, ok := v.FindList(name)
			if !ok {
				return domain.ListNotFoundError{Name: name}
			}
			found = list
			return nil
		})
	})
	return found, err
}

// Lists returns copies of every persisted list, sorted by name.
func (s *Service) Lists(ctx context.Context) ([]*CodeList, error) {
	var out []*CodeList
	err := s.instrument(ctx, "lists", func(ctx context.Context) error {
		return s.store.View(ctx, func(v TransactionView) error {
			out = v.Lists()
			return nil
		})
	})
	return out, err
}

// Names returns the sorted names of every persisted list.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	var out []string
	err := s.instrument(ctx, "names", func(ctx context.Context) error {
		return s.store.View(ctx, func(v TransactionView) error {
			out = v.Names()
			return nil
		})
	})
	return out, err
}

// DeleteList removes the named list.
func (s *Service) DeleteList(ctx context.Context, name string) error {
	return s.instrument(ctx, "delete_list", func(ctx context.Context) error {
		return s.store.RunInTransaction(ctx, func(tx Transaction) error {
			return tx.DeleteList(name)
		})
	})
}

// mutateList updates the named list, touches its provenance and appends one
// activity log entry describing the mutation.
func (s *Service) mutateList(ctx context.Context, operation, name string, action LogAction, message string, mutate func(*CodeList) error) (*CodeList, error) {
	var updated *CodeList
	err := s.instrument(ctx, operation, func(ctx context.Context) error {
		return s.store.RunInTransaction(ctx, func(tx Transaction) error {
			var err error
			updated, err = tx.UpdateList(name, func(list *CodeList) error {
				if err := mutate(list); err != nil {
					return err
				}
				list.Metadata.Provenance.Touch()
				list.Log.Record(action, message)
				return nil
			})
			return err
		})
	})
	return updated, err
}

// AddEntry adds an entry to the named list.
func (s *Service) AddEntry(ctx context.Context, name, code, term string, comment *string) (*CodeList, error) {
	return s.mutateList(ctx, "add_entry", name, domain.LogActionAddEntry,
		fmt.Sprintf("added %s (%s)", code, term),
		func(list *CodeList) error { return list.AddEntry(code, term, comment) })
}

// RemoveEntry removes every entry matching the (code, term) pair.
func (s *Service) RemoveEntry(ctx context.Context, name, code, term string) (*CodeList, error) {
	return s.mutateList(ctx, "remove_entry", name, domain.LogActionRemoveEntry,
		fmt.Sprintf("removed %s (%s)", code, term),
		func(list *CodeList) error { return list.RemoveEntry(code, term) })
}

// AddEntryComment sets a comment on the matching entry.
func (s *Service) AddEntryComment(ctx context.Context, name, code, term, comment string) (*CodeList, error) {
	return s.mutateList(ctx, "add_entry_comment", name, domain.LogActionAddComment,
		fmt.Sprintf("commented %s (%s)", code, term),
		func(list *CodeList) error { return list.AddEntryComment(code, term, comment) })
}

// UpdateEntryComment replaces the comment on the matching entry.
func (s *Service) UpdateEntryComment(ctx context.Context, name, code, term, comment string) (*CodeList, error) {
	return s.mutateList(ctx, "update_entry_comment", name, domain.LogActionEditComment,
		fmt.Sprintf("edited comment on %s (%s)", code, term),
		func(list *CodeList) error { return list.UpdateEntryComment(code, term, comment) })
}

// RemoveEntryComment clears the comment on the matching entry.
func (s *Service) RemoveEntryComment(ctx context.Context, name, code, term string) (*CodeList, error) {
	return s.mutateList(ctx, "remove_entry_comment", name, domain.LogActionRemoveComment,
		fmt.Sprintf("removed comment on %s (%s)", code, term),
		func(list *CodeList) error { return list.RemoveEntryComment(code, term) })
}

// UpdateMetadata applies the mutator to the list's metadata aggregate. The
// note describes the change in the activity log.
func (s *Service) UpdateMetadata(ctx context.Context, name, note string, mutate func(*Metadata) error) (*CodeList, error) {
	return s.mutateList(ctx, "update_metadata", name, domain.LogActionEditMetadata, note,
		func(list *CodeList) error { return mutate(&list.Metadata) })
}

// RecordReview records a completed clinical review on the named list.
func (s *Service) RecordReview(ctx context.Context, name, reviewer string, status, notes *string) (*CodeList, error) {
	return s.mutateList(ctx, "record_review", name, domain.LogActionEditMetadata,
		fmt.Sprintf("review recorded by %s", reviewer),
		func(list *CodeList) error {
			list.Metadata.ValidationAndReview.RecordReview(reviewer, status, notes)
			return nil
		})
}

// Validate checks every entry of the named list against its classification's
// rule set (or configured custom pattern), reporting every failure at once.
func (s *Service) Validate(ctx context.Context, name string) error {
	return s.instrument(ctx, "validate_list", func(ctx context.Context) error {
		return s.store.View(ctx, func(v TransactionView) error {
			list, ok := v.FindList(name)
			if !ok {
				return domain.ListNotFoundError{Name: name}
			}
			return validation.Validate(list)
		})
	})
}

// ExportCSV renders the named list as CSV and archives it in the artifact
// store under key. The save is recorded in the list's activity log.
func (s *Service) ExportCSV(ctx context.Context, name, key string) (blob.Info, error) {
	return s.export(ctx, "export_csv", name, key, "text/csv", func(list *CodeList) ([]byte, error) {
		var buf bytes.Buffer
		if err := list.WriteCSV(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

// ExportJSON renders the full list, metadata and log included, and archives
// it in the artifact store under key.
func (s *Service) ExportJSON(ctx context.Context, name, key string) (blob.Info, error) {
	return s.export(ctx, "export_json", name, key, "application/json", func(list *CodeList) ([]byte, error) {
		return json.MarshalIndent(list, "", "  ")
	})
}

// ExportLog archives the list's activity log under key, in the format
// selected by the key's extension.
func (s *Service) ExportLog(ctx context.Context, name, key string) (blob.Info, error) {
	contentType := "text/plain"
	if path.Ext(key) == ".json" {
		contentType = "application/json"
	}
	return s.export(ctx, "export_log", name, key, contentType, func(list *CodeList) ([]byte, error) {
		return list.Log.Render(path.Ext(key))
	})
}

func (s *Service) export(ctx context.Context, operation, name, key, contentType string, render func(*CodeList) ([]byte, error)) (blob.Info, error) {
	var info blob.Info
	err := s.instrument(ctx, operation, func(ctx context.Context) error {
		if s.artifacts == nil {
			return fmt.Errorf("no artifact store configured")
		}
		return s.store.RunInTransaction(ctx, func(tx Transaction) error {
			list, ok := tx.FindList(name)
			if !ok {
				return domain.ListNotFoundError{Name: name}
			}
			data, err := render(list)
			if err != nil {
				return err
			}
			info, err = s.artifacts.Put(ctx, key, bytes.NewReader(data), blob.PutOptions{
				ContentType: contentType,
				Metadata: map[string]string{
					"codelist":       name,
					"classification": string(list.Classification),
					"exported_at":    time.Now().UTC().Format(time.RFC3339),
				},
			})
			if err != nil {
				return err
			}
			_, err = tx.UpdateList(name, func(list *CodeList) error {
				list.Log.Record(domain.LogActionSave, fmt.Sprintf("archived %s", key))
				return nil
			})
			return err
		})
	})
	return info, err
}
