package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

var (
	// CPF in the canonical punctuated form: 123.456.789-00.
	cpfRegex = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

	// Characters tolerated as phone separators besides the digits themselves.
	phoneSeparatorRegex = regexp.MustCompile(`^\+?[0-9 ().-]+$`)
	phoneDigitRegex     = regexp.MustCompile(`[0-9]`)
)

// ValidEmail validates that a string is a parseable bare email address with a
// dotted domain.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" {
				return false
			}

			domain := parts[1]
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindFormat,
			Message: "must be a valid email address",
		},
	}
}

// ValidPhone validates a phone number of 10 to 15 digits, tolerating an
// optional leading country-code plus sign and common separators.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !phoneSeparatorRegex.MatchString(value) {
				return false
			}
			digits := len(phoneDigitRegex.FindAllString(value, -1))
			return digits >= 10 && digits <= 15
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindFormat,
			Message: "must be a valid phone number with 10 to 15 digits",
		},
	}
}

// ValidCPF validates the punctuated Brazilian tax-id format.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return cpfRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindFormat,
			Message: "must be a CPF in the format 000.000.000-00",
		},
	}
}

// ValidLocale validates that a value is a well-formed BCP 47 tag and belongs
// to the allowed set.
func ValidLocale(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			if _, err := language.Parse(value); err != nil {
				return false
			}
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
