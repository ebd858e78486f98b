package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/UbiquityDotNET/csemver-go/pkg/csemver"
	"github.com/UbiquityDotNET/csemver-go/pkg/semver"
)

// compareResult reports the precedence relation of two versions.
type compareResult struct {
	A      string `json:"a" yaml:"a"`
	B      string `json:"b" yaml:"b"`
	Result int    `json:"result" yaml:"result"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two version strings",
		ArgsUsage:             "<a> <b>",
		Description: `Compare two version strings under the selected grammar and emit -1, 0,
or 1 for a lower than, equal to, or higher than b. Build metadata never
participates in the comparison.`,
		Flags: []cli.Flag{
			kindFlag,
			caseSensitiveFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("expected exactly two version arguments")
			}
			a, b := cmd.Args().Get(0), cmd.Args().Get(1)

			result, err := compareByKind(cmd, a, b)
			if err != nil {
				return err
			}
			return emit(cmd, result)
		},
	}
}

func compareByKind(cmd *cli.Command, a, b string) (compareResult, error) {
	kind, err := kindFromCmd(cmd)
	if err != nil {
		return compareResult{}, err
	}

	switch kind {
	case kindSemVer:
		mode := modeFromCmd(cmd)
		va, err := semver.Parse(a, mode)
		if err != nil {
			return compareResult{}, err
		}
		vb, err := semver.Parse(b, mode)
		if err != nil {
			return compareResult{}, err
		}
		return compareResult{A: va.String(), B: vb.String(), Result: semver.Compare(va, vb, mode)}, nil
	case kindCSemVer:
		va, err := csemver.Parse(a)
		if err != nil {
			return compareResult{}, err
		}
		vb, err := csemver.Parse(b)
		if err != nil {
			return compareResult{}, err
		}
		return compareResult{A: va.String(), B: vb.String(), Result: va.Compare(vb)}, nil
	default:
		va, err := csemver.ParseCI(a)
		if err != nil {
			return compareResult{}, err
		}
		vb, err := csemver.ParseCI(b)
		if err != nil {
			return compareResult{}, err
		}
		return compareResult{A: va.String(), B: vb.String(), Result: va.Compare(vb)}, nil
	}
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort version strings into precedence order",
		ArgsUsage:             "<version> [<version> ...]",
		Flags: []cli.Flag{
			kindFlag,
			caseSensitiveFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return fmt.Errorf("expected at least one version argument")
			}

			sorted, err := sortByKind(cmd, cmd.Args().Slice())
			if err != nil {
				return err
			}
			return emit(cmd, sorted)
		},
	}
}

func sortByKind(cmd *cli.Command, inputs []string) ([]string, error) {
	kind, err := kindFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	switch kind {
	case kindSemVer:
		mode := modeFromCmd(cmd)
		versions := make([]semver.Version, 0, len(inputs))
		for _, input := range inputs {
			v, err := semver.Parse(input, mode)
			if err != nil {
				return nil, err
			}
			versions = append(versions, v)
		}
		sort.SliceStable(versions, func(i, j int) bool {
			return semver.Compare(versions[i], versions[j], mode) < 0
		})
		return renderAll(versions), nil
	case kindCSemVer:
		versions := make([]csemver.Version, 0, len(inputs))
		for _, input := range inputs {
			v, err := csemver.Parse(input)
			if err != nil {
				return nil, err
			}
			versions = append(versions, v)
		}
		sort.SliceStable(versions, func(i, j int) bool {
			return versions[i].Compare(versions[j]) < 0
		})
		return renderAll(versions), nil
	default:
		versions := make([]csemver.CIVersion, 0, len(inputs))
		for _, input := range inputs {
			v, err := csemver.ParseCI(input)
			if err != nil {
				return nil, err
			}
			versions = append(versions, v)
		}
		sort.SliceStable(versions, func(i, j int) bool {
			return versions[i].Compare(versions[j]) < 0
		})
		return renderAll(versions), nil
	}
}

func renderAll[T fmt.Stringer](versions []T) []string {
	out := make([]string, len(versions))
	for i, v := range versions {
		out[i] = v.String()
	}
	return out
}
