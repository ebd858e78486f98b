package semver

import (
	"strings"

	"lukechampine.com/uint128"
)

// CompareMode selects how alphanumeric identifiers are compared. SemVer 2.0.0
// does not specify case sensitivity, so the mode is a required input to every
// comparison rather than a default.
type CompareMode int

const (
	// CaseSensitive compares alphanumeric identifiers byte-wise.
	CaseSensitive CompareMode = iota
	// CaseInsensitive compares alphanumeric identifiers ordinally after ASCII
	// upper-case folding.
	CaseInsensitive
)

// String returns the mode name.
func (m CompareMode) String() string {
	switch m {
	case CaseSensitive:
		return "case-sensitive"
	case CaseInsensitive:
		return "case-insensitive"
	default:
		return "unknown"
	}
}

// Identifier models a single pre-release identifier. Digits-only identifiers
// are flagged via Numeric and expose their value through Number.
type Identifier struct {
	Value   string          // Original identifier text.
	Numeric bool            // Reports whether the identifier is digits-only.
	Number  uint128.Uint128 // Parsed value when Numeric is true; undefined otherwise.
}

// Version represents a semantic version according to SemVer 2.0.0. Values are
// immutable after construction; use [Parse], [MustParse], or [New].
type Version struct {
	Major uint128.Uint128
	Minor uint128.Uint128
	Patch uint128.Uint128

	pre   []Identifier
	build []string
	mode  CompareMode
}

// New constructs a release version (no pre-release, no build metadata) with
// the given components and declared comparison mode.
func New(major, minor, patch uint64, mode CompareMode) Version {
	return Version{
		Major: uint128.From64(major),
		Minor: uint128.From64(minor),
		Patch: uint128.From64(patch),
		mode:  mode,
	}
}

// Mode returns the comparison mode declared when the version was constructed.
func (v Version) Mode() CompareMode {
	return v.mode
}

// WithMode returns a copy of v declared under the given comparison mode. This
// is the normalization step required before comparing versions that were
// constructed under different modes.
func (v Version) WithMode(mode CompareMode) Version {
	v.mode = mode
	return v
}

// WithPreRelease returns a copy of v with the given pre-release identifiers,
// validating each against the SemVer grammar (non-empty, [0-9A-Za-z-] only,
// digits-only identifiers without leading zeros).
func (v Version) WithPreRelease(ids ...string) (Version, error) {
	pre := make([]Identifier, 0, len(ids))
	for _, id := range ids {
		ident, err := parsePreReleaseIdentifier(id)
		if err != nil {
			return Version{}, err
		}
		pre = append(pre, ident)
	}
	v.pre = pre
	return v, nil
}

// WithBuild returns a copy of v with the given build metadata identifiers,
// validating each against the SemVer grammar (non-empty, [0-9A-Za-z-] only;
// leading zeros are permitted).
func (v Version) WithBuild(ids ...string) (Version, error) {
	build := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := validateBuildIdentifier(id); err != nil {
			return Version{}, err
		}
		build = append(build, id)
	}
	v.build = build
	return v, nil
}

// PreRelease returns the pre-release identifiers in order. The returned slice
// aliases internal storage and must be treated as read-only.
func (v Version) PreRelease() []Identifier {
	if len(v.pre) == 0 {
		return nil
	}
	return v.pre
}

// Build returns the build metadata identifiers in order. The returned slice
// aliases internal storage and must be treated as read-only.
func (v Version) Build() []string {
	if len(v.build) == 0 {
		return nil
	}
	return v.build
}

// IsPreRelease reports whether the version carries pre-release identifiers.
func (v Version) IsPreRelease() bool {
	return len(v.pre) > 0
}

// Compare returns an integer comparing v to other under their shared declared
// mode: -1 if v < other, 0 if equal precedence, 1 if v > other. It fails with
// *IncompatibleModeError when the declared modes differ.
func (v Version) Compare(other Version) (int, error) {
	if v.mode != other.mode {
		return 0, &IncompatibleModeError{A: v.mode, B: other.mode}
	}
	return Compare(v, other, v.mode), nil
}

// Compare returns an integer comparing two versions under an explicitly
// supplied mode, ignoring the modes the versions were declared with. The
// result is -1 if a < b, 0 if they have equal precedence, and 1 if a > b.
//
// Precedence follows SemVer 2.0.0 section 11: major, minor, and patch compare
// numerically; a version without pre-release identifiers ranks above one with
// them; pre-release identifiers compare element-wise (numeric vs. numeric by
// value, numeric below alphanumeric, alphanumeric by string under mode), and
// a shared prefix ranks the shorter sequence lower. Build metadata is ignored.
func Compare(a, b Version, mode CompareMode) int {
	if c := a.Major.Cmp(b.Major); c != 0 {
		return c
	}
	if c := a.Minor.Cmp(b.Minor); c != 0 {
		return c
	}
	if c := a.Patch.Cmp(b.Patch); c != 0 {
		return c
	}
	if len(a.pre) == 0 && len(b.pre) > 0 {
		return 1
	}
	if len(a.pre) > 0 && len(b.pre) == 0 {
		return -1
	}
	for i := 0; i < len(a.pre) && i < len(b.pre); i++ {
		l, r := a.pre[i], b.pre[i]
		switch {
		case l.Numeric && r.Numeric:
			if c := l.Number.Cmp(r.Number); c != 0 {
				return c
			}
		case l.Numeric:
			return -1
		case r.Numeric:
			return 1
		default:
			if c := compareIdentifier(l.Value, r.Value, mode); c != 0 {
				return c
			}
		}
	}
	if len(a.pre) < len(b.pre) {
		return -1
	}
	if len(a.pre) > len(b.pre) {
		return 1
	}
	return 0
}

// compareIdentifier compares two alphanumeric identifiers under the given
// mode. Case-insensitive ordering folds ASCII letters to upper case before
// comparing, matching ordinal-ignore-case semantics.
func compareIdentifier(a, b string, mode CompareMode) int {
	if mode == CaseSensitive {
		return strings.Compare(a, b)
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := foldUpper(a[i]), foldUpper(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// foldUpper maps ASCII lower-case letters to upper case.
func foldUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Equal reports whether v and other are structurally identical: same
// components, same pre-release identifiers byte-for-byte, and same build
// metadata. Declared modes are comparison metadata and do not participate.
func (v Version) Equal(other Version) bool {
	if !v.Major.Equals(other.Major) || !v.Minor.Equals(other.Minor) || !v.Patch.Equals(other.Patch) {
		return false
	}
	if len(v.pre) != len(other.pre) || len(v.build) != len(other.build) {
		return false
	}
	for i := range v.pre {
		if v.pre[i].Value != other.pre[i].Value {
			return false
		}
	}
	for i := range v.build {
		if v.build[i] != other.build[i] {
			return false
		}
	}
	return true
}

// String formats the version using canonical SemVer notation.
func (v Version) String() string {
	var b strings.Builder
	b.Grow(16)
	b.WriteString(v.Major.String())
	b.WriteByte('.')
	b.WriteString(v.Minor.String())
	b.WriteByte('.')
	b.WriteString(v.Patch.String())
	if len(v.pre) > 0 {
		b.WriteByte('-')
		for i, ident := range v.pre {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(ident.Value)
		}
	}
	if len(v.build) > 0 {
		b.WriteByte('+')
		for i, ident := range v.build {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(ident)
		}
	}
	return b.String()
}
