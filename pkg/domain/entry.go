package domain

import "strings"

// Entry is a single (code, term, optional comment) record. It is not specific
// to any classification; shape rules live in the validation engine. An entry
// held by a CodeList is owned by that list and mutated through it.
type Entry struct {
	Code    string  `json:"code"`
	Term    string  `json:"term"`
	Comment *string `json:"comment,omitempty"`
}

// NewEntry constructs an Entry. The code and term must contain non-whitespace
// content; no length or pattern constraints are applied at this layer.
func NewEntry(code, term string, comment *string) (Entry, error) {
	if strings.TrimSpace(code) == "" {
		return Entry{}, ErrEmptyCode
	}
	if strings.TrimSpace(term) == "" {
		return Entry{}, ErrEmptyTerm
	}
	e := Entry{Code: code, Term: term}
	if comment != nil {
		c := *comment
		e.Comment = &c
	}
	return e, nil
}

// AddComment sets the comment on an entry that has none.
func (e *Entry) AddComment(text string) error {
	if e.Comment != nil {
		return CommentExistsError{Code: e.Code}
	}
	e.Comment = &text
	return nil
}

// UpdateComment replaces an existing comment.
func (e *Entry) UpdateComment(text string) error {
	if e.Comment == nil {
		return CommentMissingError{Code: e.Code}
	}
	e.Comment = &text
	return nil
}

// RemoveComment clears an existing comment.
func (e *Entry) RemoveComment() error {
	if e.Comment == nil {
		return CommentMissingError{Code: e.Code}
	}
	e.Comment = nil
	return nil
}

// Equal reports full value equality over (code, term, comment), the identity
// used for set membership.
func (e Entry) Equal(other Entry) bool {
	if e.Code != other.Code || e.Term != other.Term {
		return false
	}
	if (e.Comment == nil) != (other.Comment == nil) {
		return false
	}
	return e.Comment == nil || *e.Comment == *other.Comment
}

// clone returns a copy with its own comment allocation so callers cannot
// mutate list-owned state through a returned view.
func (e Entry) clone() Entry {
	out := Entry{Code: e.Code, Term: e.Term}
	if e.Comment != nil {
		c := *e.Comment
		out.Comment = &c
	}
	return out
}

type entryKey struct {
	code       string
	term       string
	hasComment bool
	comment    string
}

func (e Entry) key() entryKey {
	k := entryKey{code: e.Code, term: e.Term}
	if e.Comment != nil {
		k.hasComment = true
		k.comment = *e.Comment
	}
	return k
}

// less orders entries by code, term, then comment (absent first), giving the
// deterministic iteration order used by views, exports and validation.
func (e Entry) less(other Entry) bool {
	if e.Code != other.Code {
		return e.Code < other.Code
	}
	if e.Term != other.Term {
		return e.Term < other.Term
	}
	if (e.Comment == nil) != (other.Comment == nil) {
		return e.Comment == nil
	}
	if e.Comment == nil {
		return false
	}
	return *e.Comment < *other.Comment
}
