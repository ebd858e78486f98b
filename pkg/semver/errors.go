package semver

import (
	"strconv"
	"strings"
)

// FormatError describes a failure to parse a semantic version. Offset is the
// byte position of the failure within Input, and Expected lists the
// continuations that would have been admissible at that position.
type FormatError struct {
	Input    string
	Offset   int
	Expected []string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("semver: invalid version ")
	b.WriteString(strconv.Quote(e.Input))
	b.WriteString(": expected ")
	switch len(e.Expected) {
	case 0:
		b.WriteString("valid input")
	case 1:
		b.WriteString(e.Expected[0])
	default:
		b.WriteString("one of ")
		b.WriteString(strings.Join(e.Expected, ", "))
	}
	b.WriteString(" at offset ")
	b.WriteString(strconv.Itoa(e.Offset))
	if rest := remainderAt(e.Input, e.Offset); rest != "" {
		b.WriteString(" (near ")
		b.WriteString(strconv.Quote(rest))
		b.WriteString(")")
	}
	return b.String()
}

// remainderAt returns a short window of input starting at offset for use in
// diagnostics.
func remainderAt(input string, offset int) string {
	if offset < 0 || offset >= len(input) {
		return ""
	}
	const window = 12
	end := offset + window
	if end > len(input) {
		end = len(input)
	}
	return input[offset:end]
}

// IncompatibleModeError reports an attempt to compare two versions whose
// declared case-sensitivity modes differ. The caller must normalize one side
// with [Version.WithMode] before comparing.
type IncompatibleModeError struct {
	A, B CompareMode
}

// Error implements the error interface.
func (e *IncompatibleModeError) Error() string {
	return "semver: cannot compare versions with different case-sensitivity modes (" +
		e.A.String() + " vs " + e.B.String() + ")"
}
