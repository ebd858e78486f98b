package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/UbiquityDotNET/csemver-go/pkg/csemver"
)

var strictBuildMetaFlag = &cli.BoolFlag{
	Name:  "strict-build-meta",
	Usage: "Reject build metadata on a non-zero base build",
}

func ciCmd() *cli.Command {
	return &cli.Command{
		Name:                  "ci",
		EnableShellCompletion: true,
		Usage:                 "Construct a CI version from a base build and CI identity",
		Description: `Construct a constrained CI version. The rendered version is the base
with its patch advanced by one (the zero base 0.0.0 stays put), carrying
the CI index and name in the pre-release channel:

  csemver ci --base 1.2.3 --index AB12 --name BLD
  -> 1.2.4--ci.AB12.BLD`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "base",
				Required: true,
				Usage:    "Base build version (constrained form)",
			},
			&cli.StringFlag{
				Name:     "index",
				Required: true,
				Usage:    "CI build index (e.g., a build counter or timestamp)",
			},
			&cli.StringFlag{
				Name:     "name",
				Required: true,
				Usage:    "CI build name (e.g., a branch or machine name)",
			},
			strictBuildMetaFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			base, err := csemver.Parse(cmd.String("base"))
			if err != nil {
				return fmt.Errorf("invalid base build: %w", err)
			}

			ci, err := csemver.NewCI(base, cmd.String("index"), cmd.String("name"),
				csemver.WithStrictBuildMeta(cmd.Bool("strict-build-meta")))
			if err != nil {
				return err
			}
			return emit(cmd, ciResultFrom(ci))
		},
	}
}
