package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindFormat,
			Message: "is required",
		},
	}
}

// MaxLen validates a maximum character count. Counts runes, not bytes, since
// the limits are user-facing character budgets.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindRange,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}
