// Package domain defines the codelist core: entries, deduplicated lists,
// the metadata aggregate, the activity log, and the value types shared with
// the validation engine and infra layers.
package domain

import "strings"

// Classification identifies the clinical coding scheme a list is tagged with.
// The set is closed; the validation engine dispatches on it.
type Classification string

// Supported classifications.
const (
	// ClassificationICD10 is the ICD-10 diagnosis coding scheme.
	ClassificationICD10 Classification = "ICD10"
	// ClassificationSNOMED is SNOMED CT.
	ClassificationSNOMED Classification = "SNOMED"
	// ClassificationOPCS is the OPCS-4 procedure coding scheme.
	ClassificationOPCS Classification = "OPCS"
	// ClassificationCTV3 is the Read CTV3 scheme.
	ClassificationCTV3 Classification = "CTV3"
)

// ParseClassification converts a case-insensitive name into a Classification.
func ParseClassification(s string) (Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "icd10":
		return ClassificationICD10, nil
	case "snomed":
		return ClassificationSNOMED, nil
	case "opcs":
		return ClassificationOPCS, nil
	case "ctv3":
		return ClassificationCTV3, nil
	default:
		return "", InvalidClassificationError{Name: s}
	}
}

func (c Classification) String() string { return string(c) }

// IsTruncatable reports whether codes of this classification may be truncated
// to their three-character stem. Applies to ICD-10 only for now; ICD-11 will
// join once supported.
func (c Classification) IsTruncatable() bool { return c == ClassificationICD10 }

// IsXAddable reports whether an X placeholder may be appended to codes of
// this classification. ICD-10 only, as with truncation.
func (c Classification) IsXAddable() bool { return c == ClassificationICD10 }
