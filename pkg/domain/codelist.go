package domain

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// CodeList is a named, deduplicated collection of entries tagged with one
// classification, carrying a metadata aggregate, options and an append-only
// activity log. Entry identity is full (code, term, comment) equality; the
// list is the sole owner of its entries. A list is not safe for concurrent
// mutation; share it under external synchronization or not at all.
type CodeList struct {
	Name           string
	Classification Classification
	Metadata       Metadata
	Options        Options
	Log            ActivityLog

	entries map[entryKey]Entry
}

// CodeTermPair is a (code, term) projection of an entry.
type CodeTermPair struct {
	Code string `json:"code"`
	Term string `json:"term"`
}

// NewCodeList creates an empty list. A nil options pointer selects
// DefaultOptions.
func NewCodeList(name string, classification Classification, metadata Metadata, options *Options) *CodeList {
	opts := DefaultOptions()
	if options != nil {
		opts = *options
	}
	return &CodeList{
		Name:           name,
		Classification: classification,
		Metadata:       metadata,
		Options:        opts,
		entries:        make(map[entryKey]Entry),
	}
}

// AddEntry constructs an entry and inserts it. Construction errors propagate;
// inserting an exact duplicate is a silent no-op. Entries that share a code
// but differ in term or comment coexist regardless of AllowDuplicates, which
// records intent for downstream consumers rather than changing identity.
func (cl *CodeList) AddEntry(code, term string, comment *string) error {
	entry, err := NewEntry(code, term, comment)
	if err != nil {
		return err
	}
	if cl.entries == nil {
		cl.entries = make(map[entryKey]Entry)
	}
	cl.entries[entry.key()] = entry
	return nil
}

// RemoveEntry removes every entry matching the (code, term) pair, whatever
// its comment. It fails with EntryNotFoundError when no entry matches.
func (cl *CodeList) RemoveEntry(code, term string) error {
	removed := false
	for k := range cl.entries {
		if k.code == code && k.term == term {
			delete(cl.entries, k)
			removed = true
		}
	}
	if !removed {
		return EntryNotFoundError{Code: code}
	}
	return nil
}

// AddEntryComment sets a comment on the matching (code, term) entry. It fails
// with EntryNotFoundError when the pair is absent and with
// CommentExistsError when a matching entry already carries a comment.
func (cl *CodeList) AddEntryComment(code, term, comment string) error {
	matches := cl.matching(code, term)
	if len(matches) == 0 {
		return EntryNotFoundError{Code: code}
	}
	for _, e := range matches {
		if e.Comment != nil {
			return CommentExistsError{Code: code}
		}
	}
	return cl.rekey(matches, func(e *Entry) error { return e.AddComment(comment) })
}

// UpdateEntryComment replaces the comment on the matching commented entries.
// It fails with EntryNotFoundError when the pair is absent and with
// CommentMissingError when no matching entry carries a comment.
func (cl *CodeList) UpdateEntryComment(code, term, comment string) error {
	matches := cl.matchingCommented(code, term)
	if matches == nil {
		return EntryNotFoundError{Code: code}
	}
	if len(matches) == 0 {
		return CommentMissingError{Code: code}
	}
	return cl.rekey(matches, func(e *Entry) error { return e.UpdateComment(comment) })
}

// RemoveEntryComment clears the comment on the matching commented entries,
// with the same failure modes as UpdateEntryComment.
func (cl *CodeList) RemoveEntryComment(code, term string) error {
	matches := cl.matchingCommented(code, term)
	if matches == nil {
		return EntryNotFoundError{Code: code}
	}
	if len(matches) == 0 {
		return CommentMissingError{Code: code}
	}
	return cl.rekey(matches, func(e *Entry) error { return e.RemoveComment() })
}

func (cl *CodeList) matching(code, term string) []Entry {
	var out []Entry
	for k, e := range cl.entries {
		if k.code == code && k.term == term {
			out = append(out, e)
		}
	}
	return out
}

// matchingCommented returns nil when the pair is absent entirely, and an
// empty slice when present but uncommented.
func (cl *CodeList) matchingCommented(code, term string) []Entry {
	all := cl.matching(code, term)
	if len(all) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(all))
	for _, e := range all {
		if e.Comment != nil {
			out = append(out, e)
		}
	}
	return out
}

// rekey applies mutate to each entry and reinserts it under its new
// identity. Entries that collapse onto an existing identity merge silently,
// mirroring duplicate insertion.
func (cl *CodeList) rekey(matches []Entry, mutate func(*Entry) error) error {
	for _, e := range matches {
		old := e.key()
		if err := mutate(&e); err != nil {
			return err
		}
		delete(cl.entries, old)
		cl.entries[e.key()] = e
	}
	return nil
}

// Entries returns the entries as sorted copies; mutating them does not
// affect the list.
func (cl *CodeList) Entries() []Entry {
	out := make([]Entry, 0, len(cl.entries))
	for _, e := range cl.entries {
		out = append(out, e.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// NumEntries returns the entry count.
func (cl *CodeList) NumEntries() int { return len(cl.entries) }

// HasEntry reports whether an entry equal to the given one is present.
func (cl *CodeList) HasEntry(entry Entry) bool {
	_, ok := cl.entries[entry.key()]
	return ok
}

// Codes returns the distinct codes in sorted order.
func (cl *CodeList) Codes() []string {
	seen := make(map[string]struct{}, len(cl.entries))
	var out []string
	for k := range cl.entries {
		if _, dup := seen[k.code]; dup {
			continue
		}
		seen[k.code] = struct{}{}
		out = append(out, k.code)
	}
	sort.Strings(out)
	return out
}

// CodeTermPairs returns the distinct (code, term) pairs in sorted order.
func (cl *CodeList) CodeTermPairs() []CodeTermPair {
	seen := make(map[CodeTermPair]struct{}, len(cl.entries))
	var out []CodeTermPair
	for k := range cl.entries {
		p := CodeTermPair{Code: k.code, Term: k.term}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// AddLog appends a free-text note to the activity log. It never fails.
func (cl *CodeList) AddLog(message string) {
	cl.Log.Record(LogActionNote, message)
}

// WriteCSV renders the entries as two columns using the configured column
// names. Comments are not exported.
func (cl *CodeList) WriteCSV(out io.Writer) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{cl.Options.CodeColumnName, cl.Options.TermColumnName}); err != nil {
		return err
	}
	for _, e := range cl.Entries() {
		if err := w.Write([]string{e.Code, e.Term}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// SaveToCSV writes the CSV rendering to path. The file handle is scoped to
// the call.
func (cl *CodeList) SaveToCSV(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return cl.WriteCSV(f)
}

// SaveToJSON serializes the full list, metadata and log included, so that
// loading the file reproduces an equal list.
func (cl *CodeList) SaveToJSON(path string) error {
	data, err := json.MarshalIndent(cl, "", "  ")
	if err != nil {
		return fmt.Errorf("encode codelist: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// SaveLog writes the activity log to path in the format selected by its
// extension.
func (cl *CodeList) SaveLog(path string) error {
	return cl.Log.WriteFile(path)
}

// LoadFromJSON reads a list previously written by SaveToJSON.
func LoadFromJSON(path string) (*CodeList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read codelist: %w", err)
	}
	var cl CodeList
	if err := json.Unmarshal(data, &cl); err != nil {
		return nil, fmt.Errorf("decode codelist: %w", err)
	}
	return &cl, nil
}

// Equal reports whether two lists have the same name, classification,
// entries, metadata, options and log.
func (cl *CodeList) Equal(other *CodeList) bool {
	if cl == nil || other == nil {
		return cl == other
	}
	a, errA := json.Marshal(cl)
	b, errB := json.Marshal(other)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(a, b)
}

type codeListJSON struct {
	Name           string         `json:"name"`
	Classification Classification `json:"classification"`
	Entries        []Entry        `json:"entries"`
	Metadata       Metadata       `json:"metadata"`
	Options        Options        `json:"options"`
	Log            ActivityLog    `json:"log"`
}

// MarshalJSON serializes entries as a sorted array so output is
// deterministic.
func (cl *CodeList) MarshalJSON() ([]byte, error) {
	return json.Marshal(codeListJSON{
		Name:           cl.Name,
		Classification: cl.Classification,
		Entries:        cl.Entries(),
		Metadata:       cl.Metadata,
		Options:        cl.Options,
		Log:            cl.Log,
	})
}

// UnmarshalJSON rebuilds the entry set, deduplicating by full equality.
func (cl *CodeList) UnmarshalJSON(data []byte) error {
	var raw codeListJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	cl.Name = raw.Name
	cl.Classification = raw.Classification
	cl.Metadata = raw.Metadata
	cl.Options = raw.Options
	cl.Log = raw.Log
	cl.entries = make(map[entryKey]Entry, len(raw.Entries))
	for _, e := range raw.Entries {
		cl.entries[e.key()] = e
	}
	return nil
}
