package validator

import (
	"fmt"
	"strings"
)

// OneOf validates membership in a closed value set.
func OneOf[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindEnum,
			Message: fmt.Sprintf("must be one of: %v", allowed),
		},
	}
}

// OneOfString is OneOf for strings with a comma-joined error message.
func OneOfString(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindEnum,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}
