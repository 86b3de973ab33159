// Package sanitizer provides pure string normalization helpers used by the
// entity contracts to produce the normalized attribute snapshot. All
// functions are side-effect free and safe for concurrent use.
package sanitizer
