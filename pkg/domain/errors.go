package domain

import (
	"errors"
	"fmt"
)

// Structural errors returned when constructing an Entry from blank input.
var (
	ErrEmptyCode = errors.New("empty code supplied")
	ErrEmptyTerm = errors.New("empty term supplied")
)

// EntryNotFoundError is returned when a removal or comment operation names a
// (code, term) pair that is not present in the list.
type EntryNotFoundError struct {
	Code string
}

func (e EntryNotFoundError) Error() string {
	return fmt.Sprintf("entry not found: %s", e.Code)
}

// CommentExistsError reports an AddComment call against an entry that already
// carries a comment.
type CommentExistsError struct {
	Code string
}

func (e CommentExistsError) Error() string {
	return fmt.Sprintf("comment for entry with code %s already exists; use UpdateComment instead", e.Code)
}

// CommentMissingError reports an update or removal of a comment that was
// never set.
type CommentMissingError struct {
	Code string
}

func (e CommentMissingError) Error() string {
	return fmt.Sprintf("comment for entry with code %s does not exist; use AddComment instead", e.Code)
}

// ContributorNotFoundError is returned when removing a contributor that is
// not part of the provenance record.
type ContributorNotFoundError struct {
	Name string
}

func (e ContributorNotFoundError) Error() string {
	return fmt.Sprintf("contributor %s not found", e.Name)
}

// FieldAlreadySetError reports an Add call against a single-value metadata
// field that already holds a value. Update is the permitted operation there.
type FieldAlreadySetError struct {
	Field string
}

func (e FieldAlreadySetError) Error() string {
	return fmt.Sprintf("%s already set; use the update operation instead", e.Field)
}

// InvalidClassificationError is returned when parsing an unknown
// classification name.
type InvalidClassificationError struct {
	Name string
}

func (e InvalidClassificationError) Error() string {
	return fmt.Sprintf("invalid classification: %s", e.Name)
}

// InvalidSourceError is returned when parsing an unknown provenance source.
type InvalidSourceError struct {
	Value string
}

func (e InvalidSourceError) Error() string {
	return fmt.Sprintf("invalid metadata source: %s", e.Value)
}

// ListNotFoundError is returned by store operations naming a list that is
// not persisted.
type ListNotFoundError struct {
	Name string
}

func (e ListNotFoundError) Error() string {
	return fmt.Sprintf("codelist %q not found", e.Name)
}

// ListExistsError is returned when creating a list under a name that is
// already taken.
type ListExistsError struct {
	Name string
}

func (e ListExistsError) Error() string {
	return fmt.Sprintf("codelist %q already exists", e.Name)
}

// UnsupportedLogFormatError is returned when a log export path carries an
// extension the writer does not understand.
type UnsupportedLogFormatError struct {
	Extension string
}

func (e UnsupportedLogFormatError) Error() string {
	return fmt.Sprintf("unsupported log format %q: must be .json, .txt or .log", e.Extension)
}
