package factory

import "fmt"

// ColumnNotFoundError reports a header row missing the configured code or
// term column.
type ColumnNotFoundError struct {
	Header string
}

func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column not found with the header: %s", e.Header)
}

// DuplicateColumnError reports a header row naming the configured code or
// term column more than once.
type DuplicateColumnError struct {
	Header string
}

func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("multiple columns found with the header: %s", e.Header)
}

// EmptyCodeError reports a blank code cell. Row counts from 1 at the header,
// so the first data row is row 2.
type EmptyCodeError struct {
	Row int
}

func (e EmptyCodeError) Error() string {
	return fmt.Sprintf("empty code field in row %d", e.Row)
}

// FieldNotFoundError reports a JSON object missing the configured code or
// term field. Index is the object's position in the array.
type FieldNotFoundError struct {
	Field string
	Index int
}

func (e FieldNotFoundError) Error() string {
	return fmt.Sprintf("no %s field found at index %d", e.Field, e.Index)
}

// FieldTypeError reports a JSON field holding a value of the wrong kind.
type FieldTypeError struct {
	Field    string
	Index    int
	Expected string
}

func (e FieldTypeError) Error() string {
	return fmt.Sprintf("%s at index %d must be %s", e.Field, e.Index, e.Expected)
}

// UnsupportedFileTypeError reports a load path whose extension maps to no
// reader.
type UnsupportedFileTypeError struct {
	Path string
}

func (e UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("file %s is not a csv, json or xlsx file", e.Path)
}
