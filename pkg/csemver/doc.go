// Package csemver implements Constrained Semantic Versioning (CSemVer) and
// its continuous-integration extension (CSemVer-CI): bounded version values,
// a bijective 64-bit ordered-integer encoding, and the four-field file
// version form consumable by native callers.
//
// # Overview
//
// A CSemVer [Version] is a SemVer value with bounded components
// (major 0..99999, minor 0..49999, patch 0..9999) and an optional
// [Prerelease] drawn from a closed table of eight names
// (alpha, beta, delta, epsilon, gamma, kappa, pre, rc) refined by a number
// and fix in 0..99. The bounds exist so that every version maps to a unique
// 64-bit [OrderedVersion] that sorts exactly like the version itself, and
// onto a [FileVersionQuad] of four 16-bit fields whose low bit carries a CI
// marker.
//
// CSemVer mandates case-insensitive identifier comparison, so unlike
// package semver there is no comparison mode to choose here.
//
// # Ordered encoding
//
// The encoding is dense and total-order preserving:
//
//	ordered = major*MulMajor + minor*MulMinor + (patch+1)*MulPatch
//	// a pre-release occupies the space below its release slot:
//	ordered += prerelease.index*MulName + prerelease.number*MulNum +
//	           prerelease.fix - (MulPatch - 1)
//
// [Version.Ordered] and [VersionFromOrdered] are exact inverses; build
// metadata never participates. The file version quad packs
// ordered<<1 | ciFlag into four 16-bit fields. A CI quad cannot be turned
// back into a full CI version because the CI index and name do not survive
// the projection; only the ordered value and the flag do.
//
// # CSemVer-CI
//
// A [CIVersion] wraps a base [Version] plus a CI index/name pair. Its
// effective version advances the base patch by one (except for the zero
// version 0.0.0, which stays put) and reuses the pre-release channel for the
// CI identity:
//
//	1.2.3              -> 1.2.4--ci.<index>.<name>
//	1.2.3-beta.1       -> 1.2.4-beta.1.0.ci.<index>.<name>
//	0.0.0 (zero base)  -> 0.0.0--ci.<index>.<name>
//
// The "-ci" sentinel sorts below every constrained pre-release name, keeping
// CI builds ahead of the release they lead up to. [ParseCI] recognizes both
// shapes and recomputes the original base build.
//
// # Usage
//
//	v, err := csemver.Parse("20.1.4-beta")
//	if err != nil { ... }
//	ord := v.Ordered()            // 800010800340005
//	quad := v.FileVersion(false)  // four uint16 fields
//	back, _ := csemver.VersionFromOrdered(ord)
//	_ = back.Equal(v)             // true
//
// # Error Handling
//
// Validation surfaces every applicable *RangeError at once (joined), parse
// failures are *semver.FormatError, structurally invalid CI input is
// *ShapeError, and the ordered computation guards the 64-bit domain with
// *OverflowError instead of wrapping.
package csemver
