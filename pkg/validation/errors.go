package validation

import (
	"errors"
	"fmt"
	"strings"

	"codelistcore/pkg/domain"
)

// ErrMissingCustomPattern is returned when custom validation is requested
// without a pattern to validate against.
var ErrMissingCustomPattern = errors.New("custom validation requested without a regex pattern")

// CodeLengthError reports a code whose length falls outside the window for
// its classification. Length and contents failures are mutually exclusive: a
// code that fails the length check is never also reported for its contents.
//
// The rendered text is consumed by downstream tooling and must not change.
type CodeLengthError struct {
	Code           string
	Classification domain.Classification
	Reason         string
}

func (e CodeLengthError) Error() string {
	return fmt.Sprintf("Code %s is an invalid length for type %s. Reason: %s", e.Code, e.Classification, e.Reason)
}

// CodeContentsError reports a code of acceptable length that does not match
// the shape pattern for its classification.
type CodeContentsError struct {
	Code           string
	Classification domain.Classification
	Reason         string
}

func (e CodeContentsError) Error() string {
	return fmt.Sprintf("Code %s contents is invalid for type %s. Reason: %s", e.Code, e.Classification, e.Reason)
}

// ListError aggregates every per-code failure found in one pass over a list.
type ListError struct {
	Reasons []string
}

func (e ListError) Error() string {
	return fmt.Sprintf("Some codes in the list are invalid. Details: %s", strings.Join(e.Reasons, ", "))
}

// PatternError reports a custom pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e PatternError) Error() string {
	return fmt.Sprintf("invalid custom regex pattern %q: %v", e.Pattern, e.Err)
}

func (e PatternError) Unwrap() error { return e.Err }

// UnsupportedClassificationError reports a classification with no built-in
// rule set. It cannot occur for the closed enumeration but guards against
// lists deserialized from tampered input.
type UnsupportedClassificationError struct {
	Classification domain.Classification
}

func (e UnsupportedClassificationError) Error() string {
	return fmt.Sprintf("classification %s is not supported", e.Classification)
}
