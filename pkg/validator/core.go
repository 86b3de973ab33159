package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Numeric is the constraint used by the numeric rule helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind classifies a validation failure.
type Kind string

const (
	// KindFormat marks values failing a structural or pattern check
	// (UUID, email, phone, CPF, base64).
	KindFormat Kind = "format"
	// KindRange marks length, size, numeric or date bound violations.
	KindRange Kind = "range"
	// KindEnum marks values outside a fixed allowed set.
	KindEnum Kind = "enum"
	// KindDependency marks violated multi-field business constraints.
	KindDependency Kind = "dependency"
)

// ValidationError describes a single field-level validation failure.
type ValidationError struct {
	Field   string
	Kind    Kind
	Message string
}

// ValidationErrors aggregates all failures of one validation pass.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(parts, ", ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// ByField groups error messages by field path, preserving message order.
func (ve ValidationErrors) ByField() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	grouped := make(map[string][]string, len(ve))
	for _, err := range ve {
		grouped[err.Field] = append(grouped[err.Field], err.Message)
	}
	return grouped
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes all rules and aggregates every failure. It never stops at
// the first failing rule, so one pass reports the full set of violations.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// When gates a rule on a precondition; when cond is false the rule passes.
// Used for cross-field rules whose requirement only applies conditionally.
func When(cond bool, rule Rule) Rule {
	if cond {
		return rule
	}
	return Rule{Check: func() bool { return true }, Error: rule.Error}
}

// Group re-keys the errors of a nested validation pass under a parent field,
// joining paths with a dot (e.g. "communicate_events.signature_request").
func Group(prefix string, err error) ValidationErrors {
	nested := Extract(err)
	if nested == nil {
		return nil
	}
	grouped := make(ValidationErrors, 0, len(nested))
	for _, e := range nested {
		e.Field = prefix + "." + e.Field
		grouped = append(grouped, e)
	}
	return grouped
}

// Extract returns the ValidationErrors wrapped in err, or nil if err does not
// carry any.
func Extract(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
