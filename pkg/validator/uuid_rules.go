package validator

import (
	"github.com/google/uuid"
)

// ValidUUID validates the canonical hyphenated UUID format. The length and
// hyphen pre-checks reject the alternative encodings uuid.Parse would accept
// (braced, URN, bare hex).
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != 36 {
				return false
			}

			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}

			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindFormat,
			Message: "must be a valid UUID",
		},
	}
}
