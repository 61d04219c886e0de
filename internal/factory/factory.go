// Package factory builds codelists in bulk from external files, so that
// every list produced by one ingestion run shares the same classification,
// metadata template and options.
package factory

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"codelistcore/pkg/domain"
)

// Factory stamps every loaded list with a fixed classification, a copy of
// the metadata template and the shared options. The options also supply the
// column and field names used to locate codes and terms in input files.
type Factory struct {
	Classification domain.Classification
	Metadata       domain.Metadata
	Options        domain.Options
}

// New creates a factory. A nil options pointer selects DefaultOptions.
func New(classification domain.Classification, metadata domain.Metadata, options *domain.Options) *Factory {
	opts := domain.DefaultOptions()
	if options != nil {
		opts = *options
	}
	return &Factory{Classification: classification, Metadata: metadata, Options: opts}
}

func (f *Factory) newList(name string) *domain.CodeList {
	opts := f.Options
	return domain.NewCodeList(name, f.Classification, f.Metadata, &opts)
}

// columnIndex locates header within the header row, rejecting duplicates.
func columnIndex(headers []string, header string) (int, error) {
	idx := -1
	for i, h := range headers {
		if strings.TrimSpace(h) != header {
			continue
		}
		if idx >= 0 {
			return 0, DuplicateColumnError{Header: header}
		}
		idx = i
	}
	if idx < 0 {
		return 0, ColumnNotFoundError{Header: header}
	}
	return idx, nil
}

// ReadCSV builds a list named name from CSV data. The first row is the
// header; the configured code and term columns must appear exactly once.
// Extra columns are ignored. Cells are trimmed; a blank code cell fails with
// EmptyCodeError carrying the 1-based row number.
func (f *Factory) ReadCSV(name string, r io.Reader) (*domain.CodeList, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	codeIdx, err := columnIndex(headers, f.Options.CodeColumnName)
	if err != nil {
		return nil, err
	}
	termIdx, err := columnIndex(headers, f.Options.TermColumnName)
	if err != nil {
		return nil, err
	}

	list := f.newList(name)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row, err)
		}
		code := strings.TrimSpace(record[codeIdx])
		if code == "" {
			return nil, EmptyCodeError{Row: row}
		}
		term := strings.TrimSpace(record[termIdx])
		if err := list.AddEntry(code, term, nil); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
	}
	return list, nil
}

// ReadJSON builds a list named name from a JSON array of objects. The
// configured code field accepts strings and numbers; the term field must be
// a string.
func (f *Factory) ReadJSON(name string, r io.Reader) (*domain.CodeList, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: must be an array of objects: %w", err)
	}

	list := f.newList(name)
	for i, obj := range raw {
		codeValue, ok := obj[f.Options.CodeFieldName]
		if !ok {
			return nil, FieldNotFoundError{Field: f.Options.CodeFieldName, Index: i}
		}
		var code string
		switch v := codeValue.(type) {
		case string:
			code = strings.TrimSpace(v)
		case json.Number:
			code = v.String()
		default:
			return nil, FieldTypeError{Field: f.Options.CodeFieldName, Index: i, Expected: "a string or number"}
		}
		if code == "" {
			return nil, FieldTypeError{Field: f.Options.CodeFieldName, Index: i, Expected: "a non-empty string"}
		}

		termValue, ok := obj[f.Options.TermFieldName]
		if !ok {
			return nil, FieldNotFoundError{Field: f.Options.TermFieldName, Index: i}
		}
		term, ok := termValue.(string)
		if !ok {
			return nil, FieldTypeError{Field: f.Options.TermFieldName, Index: i, Expected: "a string"}
		}
		if err := list.AddEntry(code, strings.TrimSpace(term), nil); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
	}
	return list, nil
}

// ReadExcel builds a list named name from the first sheet of an xlsx
// workbook, applying the same header contract as ReadCSV.
func (f *Factory) ReadExcel(name string, r io.Reader) (*domain.CodeList, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, ColumnNotFoundError{Header: f.Options.CodeColumnName}
	}
	codeIdx, err := columnIndex(rows[0], f.Options.CodeColumnName)
	if err != nil {
		return nil, err
	}
	termIdx, err := columnIndex(rows[0], f.Options.TermColumnName)
	if err != nil {
		return nil, err
	}

	list := f.newList(name)
	for i, record := range rows[1:] {
		row := i + 2
		code := strings.TrimSpace(cell(record, codeIdx))
		if code == "" {
			return nil, EmptyCodeError{Row: row}
		}
		term := strings.TrimSpace(cell(record, termIdx))
		if err := list.AddEntry(code, term, nil); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
	}
	return list, nil
}

// cell tolerates the short rows GetRows produces when trailing cells are
// empty.
func cell(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}

// LoadFromFile builds a list from path, dispatching on the extension. The
// list is named name.
func (f *Factory) LoadFromFile(name, path string) (*domain.CodeList, error) {
	read := f.readerFor(path)
	if read == nil {
		return nil, UnsupportedFileTypeError{Path: path}
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	list, err := read(name, file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return list, nil
}

func (f *Factory) readerFor(path string) func(string, io.Reader) (*domain.CodeList, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return f.ReadCSV
	case ".json":
		return f.ReadJSON
	case ".xlsx":
		return f.ReadExcel
	default:
		return nil
	}
}

// LoadFromFolder builds one list per supported file directly under dir,
// named after the file without its extension. Unsupported files are skipped;
// a file that fails to load fails the whole call.
func (f *Factory) LoadFromFolder(dir string) ([]*domain.CodeList, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}
	var lists []*domain.CodeList
	for _, entry := range entries {
		if entry.IsDir() || f.readerFor(entry.Name()) == nil {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		list, err := f.LoadFromFile(name, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

// SaveAllCSV writes each list to dir as <name>.csv.
func SaveAllCSV(dir string, lists []*domain.CodeList) error {
	for _, list := range lists {
		if err := list.SaveToCSV(filepath.Join(dir, list.Name+".csv")); err != nil {
			return fmt.Errorf("save %s: %w", list.Name, err)
		}
	}
	return nil
}

// SaveAllJSON writes each list to dir as <name>.json.
func SaveAllJSON(dir string, lists []*domain.CodeList) error {
	for _, list := range lists {
		if err := list.SaveToJSON(filepath.Join(dir, list.Name+".json")); err != nil {
			return fmt.Errorf("save %s: %w", list.Name, err)
		}
	}
	return nil
}
