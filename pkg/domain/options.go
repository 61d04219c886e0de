package domain

// Options customises column/field naming for exports, duplicate-allowance
// intent, ICD-10 formatting flags, and the optional custom validation
// pattern that overrides the built-in rule set.
type Options struct {
	AllowDuplicates   bool   `json:"allow_duplicates"`
	TruncateTo3Digits bool   `json:"truncate_to_3_digits"` // ICD-10 specific
	AddXCodes         bool   `json:"add_x_codes"`          // ICD-10 specific
	CodeColumnName    string `json:"code_column_name"`     // csv files
	TermColumnName    string `json:"term_column_name"`     // csv files
	CodeFieldName     string `json:"code_field_name"`      // json files
	TermFieldName     string `json:"term_field_name"`
	CustomPattern     string `json:"custom_pattern,omitempty"` // custom validation
}

// DefaultOptions returns the options applied when a list is created without
// an explicit set.
func DefaultOptions() Options {
	return Options{
		CodeColumnName: "code",
		TermColumnName: "term",
		CodeFieldName:  "code",
		TermFieldName:  "term",
	}
}
