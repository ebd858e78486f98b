package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/UbiquityDotNET/csemver-go/pkg/csemver"
	"github.com/UbiquityDotNET/csemver-go/pkg/semver"
)

// versionKind selects which grammar a command applies.
type versionKind string

const (
	kindSemVer  versionKind = "semver"
	kindCSemVer versionKind = "csemver"
	kindCI      versionKind = "ci"
)

func supportedKinds() []string {
	return []string{string(kindSemVer), string(kindCSemVer), string(kindCI)}
}

var (
	kindFlag = &cli.StringFlag{
		Name:  "kind",
		Value: string(kindCSemVer),
		Usage: fmt.Sprintf("Version grammar to apply (supported values: %v)", supportedKinds()),
	}
	caseSensitiveFlag = &cli.BoolFlag{
		Name:  "case-sensitive",
		Usage: "Compare pre-release identifiers case-sensitively (semver kind only)",
	}
)

func kindFromCmd(cmd *cli.Command) (versionKind, error) {
	k := versionKind(cmd.String("kind"))
	switch k {
	case kindSemVer, kindCSemVer, kindCI:
		return k, nil
	default:
		return "", fmt.Errorf("unknown kind: %q, supported values: %v", k, supportedKinds())
	}
}

func modeFromCmd(cmd *cli.Command) semver.CompareMode {
	if cmd.Bool("case-sensitive") {
		return semver.CaseSensitive
	}
	return semver.CaseInsensitive
}

// semverResult is the decomposition of an unconstrained version.
type semverResult struct {
	Canonical  string   `json:"canonical" yaml:"canonical"`
	Major      string   `json:"major" yaml:"major"`
	Minor      string   `json:"minor" yaml:"minor"`
	Patch      string   `json:"patch" yaml:"patch"`
	PreRelease []string `json:"preRelease,omitempty" yaml:"preRelease,omitempty"`
	Build      []string `json:"build,omitempty" yaml:"build,omitempty"`
}

func semverResultFrom(v semver.Version) semverResult {
	r := semverResult{
		Canonical: v.String(),
		Major:     v.Major.String(),
		Minor:     v.Minor.String(),
		Patch:     v.Patch.String(),
		Build:     v.Build(),
	}
	for _, id := range v.PreRelease() {
		r.PreRelease = append(r.PreRelease, id.Value)
	}
	return r
}

type prereleaseResult struct {
	Name   string `json:"name" yaml:"name"`
	Number int    `json:"number" yaml:"number"`
	Fix    int    `json:"fix" yaml:"fix"`
}

// csemverResult is the decomposition of a constrained version, including
// its derived encodings.
type csemverResult struct {
	Canonical   string            `json:"canonical" yaml:"canonical"`
	Expanded    string            `json:"expanded" yaml:"expanded"`
	Major       int               `json:"major" yaml:"major"`
	Minor       int               `json:"minor" yaml:"minor"`
	Patch       int               `json:"patch" yaml:"patch"`
	Prerelease  *prereleaseResult `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Build       []string          `json:"build,omitempty" yaml:"build,omitempty"`
	Ordered     uint64            `json:"ordered" yaml:"ordered"`
	FileVersion string            `json:"fileVersion" yaml:"fileVersion"`
}

func csemverResultFrom(v csemver.Version) csemverResult {
	r := csemverResult{
		Canonical:   v.String(),
		Expanded:    v.ExpandedString(),
		Major:       v.Major(),
		Minor:       v.Minor(),
		Patch:       v.Patch(),
		Build:       v.Build(),
		Ordered:     uint64(v.Ordered()),
		FileVersion: v.FileVersion(false).String(),
	}
	if pre, ok := v.Prerelease(); ok {
		r.Prerelease = &prereleaseResult{
			Name:   pre.Name(),
			Number: pre.Number(),
			Fix:    pre.Fix(),
		}
	}
	return r
}

// ciResult is the decomposition of a CI version: the base build, the CI
// identity, and the effective (patch-advanced) derived values.
type ciResult struct {
	Canonical   string `json:"canonical" yaml:"canonical"`
	Base        string `json:"base" yaml:"base"`
	Index       string `json:"index" yaml:"index"`
	Name        string `json:"name" yaml:"name"`
	Major       int    `json:"major" yaml:"major"`
	Minor       int    `json:"minor" yaml:"minor"`
	Patch       int    `json:"patch" yaml:"patch"`
	Ordered     uint64 `json:"ordered" yaml:"ordered"`
	FileVersion string `json:"fileVersion" yaml:"fileVersion"`
}

func ciResultFrom(ci csemver.CIVersion) ciResult {
	return ciResult{
		Canonical:   ci.String(),
		Base:        ci.BaseBuild().String(),
		Index:       ci.Index(),
		Name:        ci.Name(),
		Major:       ci.Major(),
		Minor:       ci.Minor(),
		Patch:       ci.Patch(),
		Ordered:     uint64(ci.Ordered()),
		FileVersion: ci.FileVersion().String(),
	}
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a version string and emit its decomposition",
		ArgsUsage:             "<version>",
		Description: `Parse a version string under the selected grammar:
  - semver:  unconstrained semantic version (SemVer 2.0.0)
  - csemver: constrained semantic version (bounded core, fixed pre-release names)
  - ci:      constrained CI version (base build plus CI index/name)

The decomposition can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			kindFlag,
			caseSensitiveFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected exactly one version argument")
			}
			input := cmd.Args().First()

			result, err := parseByKind(cmd, input)
			if err != nil {
				return err
			}
			return emit(cmd, result)
		},
	}
}

func parseByKind(cmd *cli.Command, input string) (any, error) {
	kind, err := kindFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	switch kind {
	case kindSemVer:
		v, err := semver.Parse(input, modeFromCmd(cmd))
		if err != nil {
			return nil, err
		}
		return semverResultFrom(v), nil
	case kindCSemVer:
		v, err := csemver.Parse(input)
		if err != nil {
			return nil, err
		}
		return csemverResultFrom(v), nil
	default:
		ci, err := csemver.ParseCI(input)
		if err != nil {
			return nil, err
		}
		return ciResultFrom(ci), nil
	}
}
