package entity

import (
	"github.com/selosign/selosign-go/pkg/validator"
)

// Contract validates a full attribute snapshot for one entity kind,
// returning the normalized snapshot or the aggregated field errors.
// Contracts are stateless; each entity binds its contract at compile time.
type Contract[T any] interface {
	Validate(attrs T) (T, error)
}

// Model owns an entity's current attribute snapshot and error list. An
// instance is either valid (errors empty, attributes equal the contract's
// normalized output) or invalid (errors non-empty); no partially validated
// state is observable.
type Model[T any] struct {
	contract Contract[T]
	attrs    T
	errs     validator.ValidationErrors
}

// newModel is the fail-fast construction path: it returns the validated
// model or the aggregated validation errors.
func newModel[T any](c Contract[T], attrs T) (*Model[T], error) {
	normalized, err := c.Validate(attrs)
	if err != nil {
		return nil, err
	}
	return &Model[T]{contract: c, attrs: normalized}, nil
}

// buildModel is the error-collecting construction path: it always returns a
// model. On failure the raw attributes are kept as-is and the error list is
// populated.
func buildModel[T any](c Contract[T], attrs T) *Model[T] {
	m := &Model[T]{contract: c, attrs: attrs}
	normalized, err := c.Validate(attrs)
	if err != nil {
		m.errs = validator.Extract(err)
		return m
	}
	m.attrs = normalized
	return m
}

// Update applies patch to a copy of the current snapshot and re-runs the
// full contract. On success the snapshot is replaced and errors cleared; on
// failure the prior snapshot stays untouched and the new error list replaces
// the old one. The return reports whether the update was applied.
func (m *Model[T]) Update(patch func(*T)) bool {
	next := m.attrs
	patch(&next)

	normalized, err := m.contract.Validate(next)
	if err != nil {
		m.errs = validator.Extract(err)
		return false
	}

	m.attrs = normalized
	m.errs = nil
	return true
}

// Valid reports whether the entity passed its last validation pass.
func (m *Model[T]) Valid() bool {
	return len(m.errs) == 0
}

// Attrs returns the current attribute snapshot.
func (m *Model[T]) Attrs() T {
	return m.attrs
}

// Errors returns the failures of the last validation pass, nil when valid.
func (m *Model[T]) Errors() validator.ValidationErrors {
	return m.errs
}

// ErrorsByField groups error messages by field path.
func (m *Model[T]) ErrorsByField() map[string][]string {
	return m.errs.ByField()
}
