// Package usage retrieves and parses the NHS SNOMED code usage statistics
// published per financial year. It is the module's only networked component.
package usage

import (
	"encoding/csv"
	"fmt"
	"io"

	"codelistcore/pkg/domain"
)

// Entry is one row of a usage release: how often a SNOMED concept was
// recorded in primary care over the year. Usage stays a string because the
// publisher masks counts below five as "*".
type Entry struct {
	ConceptID     string `json:"snomed_concept_id"`
	Description   string `json:"description"`
	Usage         string `json:"usage"`
	ActiveAtStart bool   `json:"active_at_start"`
	ActiveAtEnd   bool   `json:"active_at_end"`
}

// Report is a parsed usage release.
type Report struct {
	Year    Year    `json:"usage_year"`
	Entries []Entry `json:"usage_data"`
}

// InvalidRecordError reports a malformed row in a usage file. Row counts
// from 1 at the first data row.
type InvalidRecordError struct {
	Row    int
	Detail string
}

func (e InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid usage record at row %d: %s", e.Row, e.Detail)
}

// recordWidth is the published column count: concept id, description, usage,
// active at start, active at end.
const recordWidth = 5

// Parse reads a tab-separated usage file. The first row is the header; every
// data row must carry exactly five non-empty fields.
func Parse(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read usage header: %w", err)
	}

	var entries []Entry
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read usage row %d: %w", row, err)
		}
		if len(record) != recordWidth {
			return nil, InvalidRecordError{Row: row, Detail: fmt.Sprintf("expected %d columns, got %d", recordWidth, len(record))}
		}
		for col, field := range record {
			if field == "" {
				return nil, InvalidRecordError{Row: row, Detail: fmt.Sprintf("empty value in column %d", col)}
			}
		}
		entries = append(entries, Entry{
			ConceptID:     record[0],
			Description:   record[1],
			Usage:         record[2],
			ActiveAtStart: record[3] == "1",
			ActiveAtEnd:   record[4] == "1",
		})
	}
	return entries, nil
}

// CodeList converts the report into a SNOMED codelist named name, one entry
// per concept with the description as the term.
func (r *Report) CodeList(name string) (*domain.CodeList, error) {
	list := domain.NewCodeList(name, domain.ClassificationSNOMED, domain.DefaultMetadata(domain.SourceLoadedFromFile), nil)
	for _, e := range r.Entries {
		if err := list.AddEntry(e.ConceptID, e.Description, nil); err != nil {
			return nil, fmt.Errorf("concept %s: %w", e.ConceptID, err)
		}
	}
	return list, nil
}
