// Package validator provides the composable field-rule engine behind the
// entity contracts: small Rule values pairing a boolean Check with field-level
// error metadata, evaluated together by Apply.
//
// Apply never stops at the first failure; it runs every rule and aggregates
// all failures into a ValidationErrors slice that satisfies the error
// interface, so a single validation pass reports the complete set of
// violations keyed by field path.
//
// Each source file groups a family of rules (string_rules.go,
// choice_rules.go, date_rules.go, content_rules.go, ...). Rules hold no
// shared state; date rules take the reference instant as a parameter so one
// validation pass reads the clock exactly once. Failures carry a Kind
// (format, range, enum, dependency) classifying the violation.
//
// Usage:
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.MaxLen("name", name, 255),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.Extract(err); verrs != nil {
//	    // inspect per-field messages via Has, Get or ByField
//	}
package validator
