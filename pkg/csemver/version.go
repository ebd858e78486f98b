package csemver

import (
	"errors"
	"strings"

	"lukechampine.com/uint128"

	"github.com/UbiquityDotNET/csemver-go/pkg/semver"
)

// Core component bounds. They are what make the dense 64-bit ordered
// encoding possible.
const (
	MaxMajor = 99999
	MaxMinor = 49999
	MaxPatch = 9999
)

// Version is a CSemVer value: bounded core components, an optional
// pre-release drawn from the fixed name table, and build metadata that never
// affects ordering. Values are immutable after construction; use [New],
// [Parse], or [FromSemVer].
type Version struct {
	major  uint32
	minor  uint32
	patch  uint32
	pre    Prerelease
	hasPre bool
	build  []string
}

// New constructs a release version (no pre-release, no build metadata). All
// range violations are reported together.
func New(major, minor, patch int) (Version, error) {
	var errs []error
	if major < 0 || major > MaxMajor {
		errs = append(errs, rangeErr("major", int64(major), 0, MaxMajor))
	}
	if minor < 0 || minor > MaxMinor {
		errs = append(errs, rangeErr("minor", int64(minor), 0, MaxMinor))
	}
	if patch < 0 || patch > MaxPatch {
		errs = append(errs, rangeErr("patch", int64(patch), 0, MaxPatch))
	}
	if len(errs) > 0 {
		return Version{}, errors.Join(errs...)
	}
	return Version{major: uint32(major), minor: uint32(minor), patch: uint32(patch)}, nil
}

// MustNew is like New but panics on error. Intended for constants and tests.
func MustNew(major, minor, patch int) Version {
	v, err := New(major, minor, patch)
	if err != nil {
		panic(err)
	}
	return v
}

// WithPrerelease returns a copy of v carrying the given pre-release.
func (v Version) WithPrerelease(p Prerelease) Version {
	v.pre = p
	v.hasPre = true
	return v
}

// WithoutPrerelease returns the release version for v.
func (v Version) WithoutPrerelease() Version {
	v.pre = Prerelease{}
	v.hasPre = false
	return v
}

// WithBuild returns a copy of v with the given build metadata identifiers,
// each validated against [0-9A-Za-z-]+.
func (v Version) WithBuild(ids ...string) (Version, error) {
	build := make([]string, 0, len(ids))
	for _, id := range ids {
		if !semver.IsIdentifier(id) {
			return Version{}, &ShapeError{Input: id, Reason: "not a build metadata identifier ([0-9A-Za-z-]+)"}
		}
		build = append(build, id)
	}
	v.build = build
	return v, nil
}

// Parse parses a CSemVer version string: the SemVer grammar with bounded
// components and the constrained name[.number[.fix]] pre-release shorthand.
// CI-shaped strings are rejected here; use [ParseCI] for those.
func Parse(input string) (Version, error) {
	sv, err := semver.Parse(input, semver.CaseInsensitive)
	if err != nil {
		return Version{}, err
	}
	return FromSemVer(sv)
}

// MustParse is like Parse but panics on error. Intended for constants and
// tests.
func MustParse(input string) Version {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSemVer constrains a generic semantic version, validating component
// bounds and the table-driven pre-release shorthand. All violations are
// reported together, core and pre-release alike.
func FromSemVer(sv semver.Version) (Version, error) {
	var errs []error
	major, ok := componentInRange(sv.Major, MaxMajor)
	if !ok {
		errs = append(errs, &RangeError{Field: "major", Value: sv.Major.String(), Min: 0, Max: MaxMajor})
	}
	minor, ok := componentInRange(sv.Minor, MaxMinor)
	if !ok {
		errs = append(errs, &RangeError{Field: "minor", Value: sv.Minor.String(), Min: 0, Max: MaxMinor})
	}
	patch, ok := componentInRange(sv.Patch, MaxPatch)
	if !ok {
		errs = append(errs, &RangeError{Field: "patch", Value: sv.Patch.String(), Min: 0, Max: MaxPatch})
	}

	v := Version{major: major, minor: minor, patch: patch}
	if ids := sv.PreRelease(); len(ids) > 0 {
		pre, err := prereleaseFromIdentifiers(ids)
		if err != nil {
			errs = append(errs, err)
		} else {
			v.pre = pre
			v.hasPre = true
		}
	}
	if len(errs) > 0 {
		return Version{}, errors.Join(errs...)
	}
	if build := sv.Build(); len(build) > 0 {
		v.build = append([]string(nil), build...)
	}
	return v, nil
}

// prereleaseFromIdentifiers interprets a parsed SemVer pre-release sequence
// as the CSemVer name[.number[.fix]] shorthand.
func prereleaseFromIdentifiers(ids []semver.Identifier) (Prerelease, error) {
	if len(ids) > 3 {
		return Prerelease{}, &ShapeError{
			Input:  joinIdentifiers(ids),
			Reason: "CSemVer pre-release has at most 3 components (name[.number[.fix]])",
		}
	}
	number, fix := 0, 0
	var err error
	if len(ids) > 1 {
		if number, err = prereleaseComponent(ids[1], "prerelease number"); err != nil {
			return Prerelease{}, err
		}
	}
	if len(ids) > 2 {
		if fix, err = prereleaseComponent(ids[2], "prerelease fix"); err != nil {
			return Prerelease{}, err
		}
	}
	return PrereleaseFromName(ids[0].Value, number, fix)
}

// prereleaseComponent validates a numeric pre-release refinement in 0..99.
func prereleaseComponent(id semver.Identifier, field string) (int, error) {
	if !id.Numeric {
		return 0, &ShapeError{Input: id.Value, Reason: field + " must be numeric"}
	}
	if id.Number.Cmp64(MaxPrereleaseNumber) > 0 {
		return 0, &RangeError{Field: field, Value: id.Value, Min: 0, Max: MaxPrereleaseNumber}
	}
	return int(id.Number.Lo), nil
}

func joinIdentifiers(ids []semver.Identifier) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.Value
	}
	return strings.Join(parts, ".")
}

// componentInRange narrows a wide SemVer component to a bounded CSemVer one.
func componentInRange(c uint128.Uint128, max uint32) (uint32, bool) {
	if c.Cmp64(uint64(max)) > 0 {
		return 0, false
	}
	return uint32(c.Lo), true
}

// Major returns the major component.
func (v Version) Major() int { return int(v.major) }

// Minor returns the minor component.
func (v Version) Minor() int { return int(v.minor) }

// Patch returns the patch component.
func (v Version) Patch() int { return int(v.patch) }

// Prerelease returns the pre-release refinement and whether one is present.
func (v Version) Prerelease() (Prerelease, bool) {
	return v.pre, v.hasPre
}

// Build returns the build metadata identifiers. The returned slice aliases
// internal storage and must be treated as read-only.
func (v Version) Build() []string {
	if len(v.build) == 0 {
		return nil
	}
	return v.build
}

// IsPrerelease reports whether the version carries a pre-release.
func (v Version) IsPrerelease() bool { return v.hasPre }

// IsZero reports whether this is the zero version 0.0.0 with no pre-release.
func (v Version) IsZero() bool {
	return v.major == 0 && v.minor == 0 && v.patch == 0 && !v.hasPre
}

// Compare orders two CSemVer versions. CSemVer comparison is always
// case-insensitive, and because pre-release names come from a fixed table the
// ordered-integer encoding is order-identical to SemVer precedence, so the
// comparison happens on the encoded values. Build metadata is ignored.
func (v Version) Compare(other Version) int {
	a, b := v.Ordered(), other.Ordered()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two versions are structurally identical, including
// build metadata.
func (v Version) Equal(other Version) bool {
	if v.Compare(other) != 0 || len(v.build) != len(other.build) {
		return false
	}
	for i := range v.build {
		if v.build[i] != other.build[i] {
			return false
		}
	}
	return true
}

// ToSemVer widens the version into a generic semantic version declared
// case-insensitive, carrying the canonical pre-release rendering and the
// build metadata.
func (v Version) ToSemVer() semver.Version {
	sv := semver.New(uint64(v.major), uint64(v.minor), uint64(v.patch), semver.CaseInsensitive)
	if v.hasPre {
		// Identifiers from the fixed table are always grammatically valid.
		sv, _ = sv.WithPreRelease(v.pre.identifiers()...)
	}
	if len(v.build) > 0 {
		sv, _ = sv.WithBuild(v.build...)
	}
	return sv
}

// String returns the canonical (short) rendering, trimming zero-valued
// pre-release number and fix components: "1.2.3-beta" rather than
// "1.2.3-beta.0.0".
func (v Version) String() string {
	return v.format(false)
}

// ExpandedString returns the long rendering with the pre-release always
// expanded to name.number.fix. Versions without a pre-release render the same
// as String.
func (v Version) ExpandedString() string {
	return v.format(true)
}

func (v Version) format(expanded bool) string {
	var b strings.Builder
	b.Grow(24)
	writeCore(&b, v.major, v.minor, v.patch)
	if v.hasPre {
		b.WriteByte('-')
		if expanded {
			b.WriteString(v.pre.Expanded())
		} else {
			b.WriteString(v.pre.String())
		}
	}
	for i, id := range v.build {
		if i == 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(id)
	}
	return b.String()
}

// writeCore writes "major.minor.patch".
func writeCore(b *strings.Builder, major, minor, patch uint32) {
	writeUint(b, major)
	b.WriteByte('.')
	writeUint(b, minor)
	b.WriteByte('.')
	writeUint(b, patch)
}

func writeUint(b *strings.Builder, n uint32) {
	var buf [10]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	b.Write(buf[i:])
}
