package validation

import (
	"regexp"

	"codelistcore/pkg/domain"
)

// ICD-10: one letter, two digits, then optionally an X placeholder, a dot
// followed by up to four digits, or up to four digits directly.
var icd10Pattern = regexp.MustCompile(`^[A-Z][0-9]{2}(X|\.[0-9]{1,4}|[0-9]{1,4})?$`)

const icd10MaxLength = 7

func validateICD10Code(code string) error {
	if len(code) > icd10MaxLength {
		return CodeLengthError{
			Code:           code,
			Classification: domain.ClassificationICD10,
			Reason:         "Code is greater than 7 characters in length",
		}
	}
	if !icd10Pattern.MatchString(code) {
		return CodeContentsError{
			Code:           code,
			Classification: domain.ClassificationICD10,
			Reason:         contentsReason,
		}
	}
	return nil
}
