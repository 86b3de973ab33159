package validator

import (
	"fmt"
	"time"
)

// FutureWithin validates that a date is strictly in the future and no further
// ahead than max. Callers pass now explicitly so that every date rule of one
// validation pass compares against the same instant.
func FutureWithin(field string, value time.Time, now time.Time, max time.Duration) Rule {
	return Rule{
		Check: func() bool {
			return value.After(now) && !value.After(now.Add(max))
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindRange,
			Message: fmt.Sprintf("must be in the future and within %d days", int(max.Hours()/24)),
		},
	}
}

// AgeBetween validates the age derived from a birthdate. Age is the calendar
// year difference, minus one when the anniversary has not yet occurred this
// year.
func AgeBetween(field string, birthdate time.Time, now time.Time, min, max int) Rule {
	return Rule{
		Check: func() bool {
			age := now.Year() - birthdate.Year()
			if now.Month() < birthdate.Month() ||
				(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
				age--
			}
			return age >= min && age <= max
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindRange,
			Message: fmt.Sprintf("age must be between %d and %d years", min, max),
		},
	}
}
