package validation

import (
	"regexp"
	"strings"

	"codelistcore/pkg/domain"
)

// ValidateWithPattern validates every entry against a caller-supplied
// regular expression instead of the classification's built-in rule set,
// under the same collect-all aggregation contract. An empty pattern is a
// configuration error, not a per-code one.
func ValidateWithPattern(list *domain.CodeList, pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return ErrMissingCustomPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return PatternError{Pattern: pattern, Err: err}
	}
	return validateAll(list, func(code string) error {
		if !re.MatchString(code) {
			return CodeContentsError{
				Code:           code,
				Classification: list.Classification,
				Reason:         "Code does not match the custom regex pattern",
			}
		}
		return nil
	})
}
