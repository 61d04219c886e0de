package validation

import (
	"regexp"

	"codelistcore/pkg/domain"
)

// CTV3: exactly five characters, alphanumerics padded to width with trailing
// dots (five alphanumerics down to all dots).
var ctv3Pattern = regexp.MustCompile(`^([a-zA-Z0-9]{5}|[a-zA-Z0-9]{4}\.|[a-zA-Z0-9]{3}\.{2}|[a-zA-Z0-9]{2}\.{3}|[a-zA-Z0-9]\.{4}|\.{5})$`)

const ctv3Length = 5

func validateCTV3Code(code string) error {
	if len(code) > ctv3Length {
		return CodeLengthError{
			Code:           code,
			Classification: domain.ClassificationCTV3,
			Reason:         "Code is greater than 5 characters in length",
		}
	}
	if len(code) < ctv3Length {
		return CodeLengthError{
			Code:           code,
			Classification: domain.ClassificationCTV3,
			Reason:         "Code is less than 5 characters in length",
		}
	}
	if !ctv3Pattern.MatchString(code) {
		return CodeContentsError{
			Code:           code,
			Classification: domain.ClassificationCTV3,
			Reason:         contentsReason,
		}
	}
	return nil
}
