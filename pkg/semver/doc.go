// Package semver implements parsing, formatting, and precedence ordering for
// Semantic Versioning 2.0.0 version strings.
//
// # Overview
//
// A [Version] is an immutable value: three numeric components, an optional
// ordered list of pre-release identifiers, and an optional ordered list of
// build metadata identifiers. Numeric components are 128-bit wide because the
// SemVer grammar places no upper bound on them.
//
// SemVer leaves the case sensitivity of alphanumeric identifier comparison
// unspecified. This package therefore never defaults it: every Version carries
// an explicit [CompareMode] declared at construction, and comparing two
// versions with different declared modes fails with
// [*IncompatibleModeError] instead of silently picking one. Callers that hold
// versions with mixed modes normalize first via [Version.WithMode].
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("1.2.3-beta.1+build.5", semver.CaseInsensitive)
//	if err != nil {
//	    // *FormatError with offset and expected-token info
//	}
//	fmt.Println(v.String()) // Output: 1.2.3-beta.1+build.5
//
// Compare versions:
//
//	a := semver.MustParse("1.0.0-alpha", semver.CaseSensitive)
//	b := semver.MustParse("1.0.0", semver.CaseSensitive)
//	cmp, _ := a.Compare(b) // -1: a pre-release precedes its release
//
// Build metadata never participates in ordering.
//
// # Grammar
//
// The accepted grammar is exactly SemVer 2.0.0:
//
//	version    := core ('-' prerelease)? ('+' buildmeta)?
//	core       := numeric '.' numeric '.' numeric
//	numeric    := '0' | [1-9][0-9]*
//	prerelease := id ('.' id)*       # digits-only ids must not have leading zeros
//	buildmeta  := id ('.' id)*       # digits-only ids may have leading zeros
//	id         := [0-9A-Za-z-]+
//
// No "v" prefix, surrounding whitespace, or partial versions are accepted.
//
// # Error Handling
//
// Parse failures are reported as [*FormatError] carrying the byte offset of
// the failure and the set of admissible continuations at that point. Mode
// mismatches during comparison are reported as [*IncompatibleModeError].
// Nothing is ever coerced or truncated.
package semver
