package validation

import (
	"regexp"

	"codelistcore/pkg/domain"
)

// OPCS-4: one letter, two digits, then optionally a dot followed by one or
// two digits, or one or two digits directly.
var opcsPattern = regexp.MustCompile(`^[A-Z][0-9]{2}(\.[0-9]{1,2}|[0-9]{1,2})?$`)

const (
	opcsMinLength = 3
	opcsMaxLength = 5
)

func validateOPCSCode(code string) error {
	if len(code) < opcsMinLength {
		return CodeLengthError{
			Code:           code,
			Classification: domain.ClassificationOPCS,
			Reason:         "Code is less than 3 characters in length",
		}
	}
	if len(code) > opcsMaxLength {
		return CodeLengthError{
			Code:           code,
			Classification: domain.ClassificationOPCS,
			Reason:         "Code is greater than 5 characters in length",
		}
	}
	if !opcsPattern.MatchString(code) {
		return CodeContentsError{
			Code:           code,
			Classification: domain.ClassificationOPCS,
			Reason:         contentsReason,
		}
	}
	return nil
}
