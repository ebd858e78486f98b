package csemver

import (
	"strings"
	"sync/atomic"

	"github.com/UbiquityDotNET/csemver-go/pkg/semver"
)

// CI pre-release sentinels. A CI version based on a release uses "-ci" as
// the first pre-release identifier; based on a pre-release it appends "ci"
// after the expanded name.number.fix triple. The two sentinels keep the
// boundary between the real pre-release and the CI identity unambiguous when
// parsing back.
const (
	ciSentinelBare   = "-ci"
	ciSentinelNested = "ci"
)

// strictBuildMetaDefault is the process-wide default for the CI
// build-metadata policy. Permissive (false) by default: a non-zero base
// build may carry build metadata. The strict behavior exists because the
// CSemVer-CI specification never resolved whether that combination is legal;
// both behaviors are preserved here and the default must never be
// repurposed, only superseded by an additively named option.
var strictBuildMetaDefault atomic.Bool

// SetStrictBuildMetaDefault sets the process-wide default for rejecting
// build metadata on non-zero CI base builds. Individual constructions can
// override it with [WithStrictBuildMeta].
func SetStrictBuildMetaDefault(strict bool) {
	strictBuildMetaDefault.Store(strict)
}

// StrictBuildMetaDefault reports the current process-wide default.
func StrictBuildMetaDefault() bool {
	return strictBuildMetaDefault.Load()
}

// CIOption adjusts CI version construction.
type CIOption func(*ciConfig)

type ciConfig struct {
	strictBuildMeta bool
}

// WithStrictBuildMeta overrides the process-wide build-metadata policy for a
// single construction.
func WithStrictBuildMeta(strict bool) CIOption {
	return func(c *ciConfig) {
		c.strictBuildMeta = strict
	}
}

// CIVersion is a CSemVer-CI value: a base build plus a CI index and name.
// The version it renders and orders as is the base with its patch advanced
// by one, except for the zero base 0.0.0 which stays put. Values are
// immutable after construction; use [NewCI] or [ParseCI].
type CIVersion struct {
	base  Version
	index string
	name  string
}

// NewCI constructs a CI version from a base build and CI identity. The index
// and name must match [0-9A-Za-z-]+; a zero base must not carry a
// pre-release; and under the strict build-metadata policy a non-zero base
// must not carry build metadata. The advanced patch must stay within the
// CSemVer patch bound.
func NewCI(base Version, index, name string, opts ...CIOption) (CIVersion, error) {
	cfg := ciConfig{strictBuildMeta: StrictBuildMetaDefault()}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Index and name ride in the pre-release channel, so beyond the basic
	// [0-9A-Za-z-]+ rule they must also survive as pre-release identifiers
	// (no leading zeros on digits-only values).
	if !semver.IsPreReleaseIdentifier(index) {
		return CIVersion{}, &ShapeError{Input: index, Reason: "CI index must be a valid pre-release identifier ([0-9A-Za-z-]+, no leading zeros when numeric)"}
	}
	if !semver.IsPreReleaseIdentifier(name) {
		return CIVersion{}, &ShapeError{Input: name, Reason: "CI name must be a valid pre-release identifier ([0-9A-Za-z-]+, no leading zeros when numeric)"}
	}

	zeroCore := base.major == 0 && base.minor == 0 && base.patch == 0
	if zeroCore && base.hasPre {
		return CIVersion{}, &ShapeError{
			Input:  base.String(),
			Reason: "a CI version based on the zero version cannot have a pre-release",
		}
	}
	if cfg.strictBuildMeta && !zeroCore && len(base.build) > 0 {
		return CIVersion{}, &ShapeError{
			Input:  base.String(),
			Reason: "build metadata on a non-zero CI base build is disallowed by the strict policy",
		}
	}
	if !zeroCore && base.patch >= MaxPatch {
		return CIVersion{}, rangeErr("advanced patch", int64(base.patch)+1, 0, MaxPatch)
	}

	return CIVersion{base: base, index: index, name: name}, nil
}

// BaseBuild returns the original base build the CI version was constructed
// from, without the patch advance.
func (c CIVersion) BaseBuild() Version { return c.base }

// Index returns the CI build index.
func (c CIVersion) Index() string { return c.index }

// Name returns the CI build name.
func (c CIVersion) Name() string { return c.name }

// IsZeroBased reports whether the CI version is based on the zero version,
// in which case no patch advance applies.
func (c CIVersion) IsZeroBased() bool {
	return c.base.major == 0 && c.base.minor == 0 && c.base.patch == 0
}

// effectiveBase returns the base with the patch advance applied.
func (c CIVersion) effectiveBase() Version {
	v := c.base
	if !c.IsZeroBased() {
		v.patch++
	}
	return v
}

// Major returns the effective (patch-advanced) major component.
func (c CIVersion) Major() int { return c.effectiveBase().Major() }

// Minor returns the effective minor component.
func (c CIVersion) Minor() int { return c.effectiveBase().Minor() }

// Patch returns the effective patch component.
func (c CIVersion) Patch() int { return c.effectiveBase().Patch() }

// Prerelease returns the effective pre-release refinement and whether one is
// present. The pre-release itself is unchanged by the patch advance.
func (c CIVersion) Prerelease() (Prerelease, bool) {
	return c.base.pre, c.base.hasPre
}

// Ordered returns the ordered value of the effective version. Together with
// the CI flag it is all that survives into the file version quad.
func (c CIVersion) Ordered() OrderedVersion {
	return c.effectiveBase().Ordered()
}

// FileVersion produces the quad for the CI version, with the CI flag set.
func (c CIVersion) FileVersion() FileVersionQuad {
	return c.effectiveBase().FileVersion(true)
}

// ciIdentifiers returns the full rendered pre-release identifier sequence.
func (c CIVersion) ciIdentifiers() []string {
	if c.base.hasPre {
		ids := c.base.pre.expandedIdentifiers()
		return append(ids, ciSentinelNested, c.index, c.name)
	}
	return []string{ciSentinelBare, c.index, c.name}
}

// ToSemVer renders the CI version as a generic semantic version declared
// case-insensitive: the effective core, the synthesized pre-release sequence
// carrying the CI identity, and the base's build metadata.
func (c CIVersion) ToSemVer() semver.Version {
	eff := c.effectiveBase()
	sv := semver.New(uint64(eff.major), uint64(eff.minor), uint64(eff.patch), semver.CaseInsensitive)
	sv, _ = sv.WithPreRelease(c.ciIdentifiers()...)
	if len(c.base.build) > 0 {
		sv, _ = sv.WithBuild(c.base.build...)
	}
	return sv
}

// Compare orders two CI versions by their effective rendered form under
// case-insensitive SemVer precedence. The "-ci" sentinel sorts below every
// constrained pre-release name, so a release-based CI build ranks below any
// pre-release of the version it leads up to.
func (c CIVersion) Compare(other CIVersion) int {
	return semver.Compare(c.ToSemVer(), other.ToSemVer(), semver.CaseInsensitive)
}

// String renders the CI version: "1.2.4--ci.<index>.<name>" for a
// release-based build, "1.2.4-beta.1.0.ci.<index>.<name>" for a
// pre-release-based one.
func (c CIVersion) String() string {
	return c.ToSemVer().String()
}

// ParseCI parses a CSemVer-CI string. The CI shape is detected before any
// generic interpretation: a pre-release sequence of exactly three
// identifiers starting with "-ci", or of exactly six whose fourth is "ci"
// (both case-insensitive). The base build is recomputed by undoing the patch
// advance.
func ParseCI(input string, opts ...CIOption) (CIVersion, error) {
	sv, err := semver.Parse(input, semver.CaseInsensitive)
	if err != nil {
		return CIVersion{}, err
	}
	ids := sv.PreRelease()

	var (
		index, name string
		pre         *Prerelease
	)
	switch {
	case len(ids) == 3 && foldEqual(ids[0].Value, ciSentinelBare):
		index, name = ids[1].Value, ids[2].Value
	case len(ids) == 6 && foldEqual(ids[3].Value, ciSentinelNested):
		p, err := prereleaseFromIdentifiers(ids[:3])
		if err != nil {
			return CIVersion{}, err
		}
		pre = &p
		index, name = ids[4].Value, ids[5].Value
	default:
		return CIVersion{}, &ShapeError{
			Input:  input,
			Reason: "not a CSemVer-CI version (expected pre-release [-ci.<index>.<name>] or [name.number.fix.ci.<index>.<name>])",
		}
	}

	base, err := ciBaseFromCore(sv, pre, input)
	if err != nil {
		return CIVersion{}, err
	}
	return NewCI(base, index, name, opts...)
}

// ciBaseFromCore rebuilds the original base build from a parsed effective
// core, undoing the patch advance for non-zero versions.
func ciBaseFromCore(sv semver.Version, pre *Prerelease, input string) (Version, error) {
	release, err := FromSemVer(stripPre(sv))
	if err != nil {
		return Version{}, err
	}
	if !release.IsZero() {
		if release.patch == 0 {
			return Version{}, &ShapeError{
				Input:  input,
				Reason: "effective patch 0 cannot result from a patch advance on a non-zero base",
			}
		}
		release.patch--
		if release.IsZero() {
			// Effective 0.0.1 would require the zero base to advance,
			// which it never does.
			return Version{}, &ShapeError{
				Input:  input,
				Reason: "effective version 0.0.1 cannot result from a patch advance (the zero base never advances)",
			}
		}
	} else if pre != nil {
		return Version{}, &ShapeError{
			Input:  input,
			Reason: "a CI version based on the zero version cannot have a pre-release",
		}
	}
	if pre != nil {
		release = release.WithPrerelease(*pre)
	}
	if build := sv.Build(); len(build) > 0 {
		if release, err = release.WithBuild(build...); err != nil {
			return Version{}, err
		}
	}
	return release, nil
}

// stripPre drops the pre-release identifiers from a parsed version, leaving
// the core and build metadata.
func stripPre(sv semver.Version) semver.Version {
	out := semver.New(0, 0, 0, sv.Mode())
	out.Major, out.Minor, out.Patch = sv.Major, sv.Minor, sv.Patch
	if build := sv.Build(); len(build) > 0 {
		out, _ = out.WithBuild(build...)
	}
	return out
}

// foldEqual compares ASCII strings case-insensitively.
func foldEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
