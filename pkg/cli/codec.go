package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/UbiquityDotNET/csemver-go/pkg/csemver"
)

// quadResult is emitted for a decoded CI quad, whose version text is not
// recoverable (the CI index and name do not survive the quad projection).
type quadResult struct {
	FileVersion string `json:"fileVersion" yaml:"fileVersion"`
	Ordered     uint64 `json:"ordered" yaml:"ordered"`
	CI          bool   `json:"ci" yaml:"ci"`
}

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "encode",
		EnableShellCompletion: true,
		Usage:                 "Encode a constrained version as its ordered number and file version",
		ArgsUsage:             "<version>",
		Description: `Encode a constrained version into its ordered number, the dense uint64
encoding whose numeric order matches version precedence, together with
the file-version quad. With --ci the quad carries the CI flag. Build
metadata is ignored.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "ci",
				Usage: "Mark the emitted file-version quad as a CI build",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected exactly one version argument")
			}

			v, err := csemver.Parse(cmd.Args().First())
			if err != nil {
				return err
			}
			result := csemverResultFrom(v)
			if cmd.Bool("ci") {
				result.FileVersion = v.FileVersion(true).String()
			}
			return emit(cmd, result)
		},
	}
}

func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "decode",
		EnableShellCompletion: true,
		Usage:                 "Decode an ordered number or file-version quad back into a version",
		ArgsUsage:             "<ordered | quad>",
		Description: `Decode an ordered number, or a dotted file-version quad such as
"0.45.172.16010", back into a version. A quad carrying the CI flag
cannot regenerate its CI index and name; for those only the ordered
value and the flag are reported.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("expected exactly one ordered-number or quad argument")
			}
			input := cmd.Args().First()

			result, err := decodeInput(input)
			if err != nil {
				return err
			}
			return emit(cmd, result)
		},
	}
}

func decodeInput(input string) (any, error) {
	if strings.Contains(input, ".") {
		return decodeQuad(input)
	}

	o, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ordered number %q: %w", input, err)
	}
	v, err := csemver.VersionFromOrdered(csemver.OrderedVersion(o))
	if err != nil {
		return nil, err
	}
	return csemverResultFrom(v), nil
}

func decodeQuad(input string) (any, error) {
	q, err := csemver.ParseQuad(input)
	if err != nil {
		return nil, err
	}
	if q.IsCI() {
		// The ordered value must still decode to a valid version.
		if _, err := csemver.VersionFromOrdered(q.Ordered()); err != nil {
			return nil, err
		}
		return quadResult{
			FileVersion: q.String(),
			Ordered:     uint64(q.Ordered()),
			CI:          true,
		}, nil
	}

	v, err := q.Version()
	if err != nil {
		return nil, err
	}
	return csemverResultFrom(v), nil
}
