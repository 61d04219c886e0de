// Package validation checks codelist entries against the textual grammar of
// their classification. It is a pure function of (list, rule set): built-in
// rule sets are selected by the list's classification, a configured custom
// pattern takes precedence, and whole-list validation always completes a full
// pass, bundling every failure into one aggregate error rather than stopping
// at the first. Patterns are compiled once at package init and are read-only
// afterwards.
package validation

import "codelistcore/pkg/domain"

const contentsReason = "Code does not match the expected format"

// Validate checks every entry of the list. A custom pattern in the list's
// options overrides the built-in rule set. On failure it returns a ListError
// whose reasons follow the list's sorted entry order.
func Validate(list *domain.CodeList) error {
	if list.Options.CustomPattern != "" {
		return ValidateWithPattern(list, list.Options.CustomPattern)
	}
	if _, err := ruleSetFor(list.Classification); err != nil {
		return err
	}
	return validateAll(list, func(code string) error {
		return ValidateCode(list.Classification, code)
	})
}

// ValidateCode checks a single code against the built-in rule set for the
// classification. The length window is checked before the shape pattern, so
// a code only ever receives one of the two failure reasons.
func ValidateCode(classification domain.Classification, code string) error {
	check, err := ruleSetFor(classification)
	if err != nil {
		return err
	}
	return check(code)
}

func ruleSetFor(classification domain.Classification) (func(string) error, error) {
	switch classification {
	case domain.ClassificationICD10:
		return validateICD10Code, nil
	case domain.ClassificationSNOMED:
		return func(code string) error {
			return validateSnomedCode(code, SnomedMinLength, SnomedMaxLength)
		}, nil
	case domain.ClassificationOPCS:
		return validateOPCSCode, nil
	case domain.ClassificationCTV3:
		return validateCTV3Code, nil
	default:
		return nil, UnsupportedClassificationError{Classification: classification}
	}
}

// validateAll runs check over every entry, collecting every failure. The
// entry view is sorted, so aggregate reasons are deterministic.
func validateAll(list *domain.CodeList, check func(code string) error) error {
	var reasons []string
	for _, entry := range list.Entries() {
		if err := check(entry.Code); err != nil {
			reasons = append(reasons, err.Error())
		}
	}
	if len(reasons) > 0 {
		return ListError{Reasons: reasons}
	}
	return nil
}
