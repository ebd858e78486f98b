package csemver

import (
	"fmt"
)

// RangeError reports a numeric field outside its declared CSemVer bound.
// Validation of a multi-field value joins one RangeError per violation so a
// caller populating fields from independent sources sees every problem at
// once.
type RangeError struct {
	Field string
	Value string
	Min   int64
	Max   int64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("csemver: %s %s out of range [%d..%d]", e.Field, e.Value, e.Min, e.Max)
}

// rangeErr builds a RangeError for an int64-representable value.
func rangeErr(field string, value, min, max int64) *RangeError {
	return &RangeError{Field: field, Value: fmt.Sprintf("%d", value), Min: min, Max: max}
}

// ShapeError reports a structurally invalid CSemVer-CI value: a pre-release
// sequence that does not match either CI shape, a zero base build carrying a
// pre-release, or a combination rejected by the build-metadata policy.
type ShapeError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Input == "" {
		return "csemver: " + e.Reason
	}
	return fmt.Sprintf("csemver: %q: %s", e.Input, e.Reason)
}

// OverflowError reports an ordered-version computation that would exceed the
// 64-bit domain. The multiplier chain is large, so this is checked explicitly
// rather than allowed to wrap.
type OverflowError struct {
	Op string
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return "csemver: " + e.Op + " overflows the 64-bit ordered version domain"
}
