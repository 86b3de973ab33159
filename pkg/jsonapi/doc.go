// Package jsonapi builds the resource documents the signing service speaks:
// a top-level data object grouping a resource type, its attributes and
// optional relationship linkage. Null-valued attributes are never emitted;
// optional fields are simply absent from the payload.
package jsonapi
