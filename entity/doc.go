// Package entity models the resources exchanged with the signing service:
// envelopes, signers, documents, requirements, qualifications and
// notifications. Every entity is a self-validating value object bound to a
// contract encoding its field-level and cross-field business rules.
//
// Entities are created in one of two modes. The New constructors are
// fail-fast: they validate the raw attributes and return the aggregated
// validation errors when any rule fails. The Build factories never fail;
// they return an instance whose Errors list carries the failures, for
// callers that prefer inspecting ErrorsByField over handling an error
// return. After construction an entity changes only through Update, which
// re-validates the patched attribute set as a whole and applies it
// atomically: a failed update leaves the previous attributes untouched.
//
// A valid entity serializes itself into the wire resource document through
// its ToJSONAPI method; serializing an invalid entity fails with the same
// aggregated errors reported at construction.
package entity
