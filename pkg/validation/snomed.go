package validation

import (
	"fmt"

	"codelistcore/pkg/domain"
)

// Default SNOMED CT length window. Concept identifiers are 6-18 digits.
const (
	SnomedMinLength = 6
	SnomedMaxLength = 18
)

// ValidateSnomedWithBounds validates a SNOMED list against an explicit
// length window instead of the defaults.
func ValidateSnomedWithBounds(list *domain.CodeList, minLength, maxLength int) error {
	return validateAll(list, func(code string) error {
		return validateSnomedCode(code, minLength, maxLength)
	})
}

func validateSnomedCode(code string, minLength, maxLength int) error {
	if len(code) < minLength || len(code) > maxLength {
		return CodeLengthError{
			Code:           code,
			Classification: domain.ClassificationSNOMED,
			Reason:         fmt.Sprintf("Code is not between %d and %d numbers in length", minLength, maxLength),
		}
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return CodeContentsError{
				Code:           code,
				Classification: domain.ClassificationSNOMED,
				Reason:         "Code is not composed of all numerical characters",
			}
		}
	}
	return nil
}
