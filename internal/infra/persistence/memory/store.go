// Package memory provides an in-memory implementation of the codelist
// persistence store used for tests and as the transactional core of the
// durable backends.
package memory

import (
	"context"
	"sort"
	"sync"

	"codelistcore/pkg/domain"
)

var _ domain.PersistentStore = (*Store)(nil)

// Snapshot captures a point-in-time clone of the store state, keyed by list
// name. It is the unit the durable backends serialize.
type Snapshot struct {
	Lists map[string]*domain.CodeList `json:"codelists"`
}

// Store holds codelists in process memory. Transactions operate on a full
// clone of the state and swap it in on success, so a failed transaction
// leaves the store untouched.
type Store struct {
	mu    sync.RWMutex
	lists map[string]*domain.CodeList
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{lists: make(map[string]*domain.CodeList)}
}

// ExportState clones the current state for external persistence.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Lists: cloneState(s.lists)}
}

// ImportState replaces the store state with the provided snapshot.
func (s *Store) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = cloneState(snapshot.Lists)
}

// RunInTransaction executes fn against a clone of the state and commits the
// clone when fn returns nil.
func (s *Store) RunInTransaction(_ context.Context, fn func(domain.Transaction) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &transaction{state: cloneState(s.lists)}
	if err := fn(tx); err != nil {
		return err
	}
	s.lists = tx.state
	return nil
}

// View executes fn against a read-only snapshot of the state.
func (s *Store) View(_ context.Context, fn func(domain.TransactionView) error) error {
	s.mu.RLock()
	snapshot := cloneState(s.lists)
	s.mu.RUnlock()
	return fn(&transaction{state: snapshot})
}

func cloneState(in map[string]*domain.CodeList) map[string]*domain.CodeList {
	out := make(map[string]*domain.CodeList, len(in))
	for name, list := range in {
		out[name] = list.Clone()
	}
	return out
}

// transaction implements both domain.Transaction and domain.TransactionView
// over a private clone of the store state.
type transaction struct {
	state map[string]*domain.CodeList
}

func (tx *transaction) FindList(name string) (*domain.CodeList, bool) {
	list, ok := tx.state[name]
	if !ok {
		return nil, false
	}
	return list.Clone(), true
}

func (tx *transaction) Lists() []*domain.CodeList {
	out := make([]*domain.CodeList, 0, len(tx.state))
	for _, name := range tx.Names() {
		out = append(out, tx.state[name].Clone())
	}
	return out
}

func (tx *transaction) Names() []string {
	names := make([]string, 0, len(tx.state))
	for name := range tx.state {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (tx *transaction) CreateList(list *domain.CodeList) error {
	if _, exists := tx.state[list.Name]; exists {
		return domain.ListExistsError{Name: list.Name}
	}
	tx.state[list.Name] = list.Clone()
	return nil
}

func (tx *transaction) UpdateList(name string, mutator func(*domain.CodeList) error) (*domain.CodeList, error) {
	current, ok := tx.state[name]
	if !ok {
		return nil, domain.ListNotFoundError{Name: name}
	}
	working := current.Clone()
	if err := mutator(working); err != nil {
		return nil, err
	}
	// Renames are not supported through UpdateList.
	working.Name = name
	tx.state[name] = working
	return working.Clone(), nil
}

func (tx *transaction) DeleteList(name string) error {
	if _, ok := tx.state[name]; !ok {
		return domain.ListNotFoundError{Name: name}
	}
	delete(tx.state, name)
	return nil
}
