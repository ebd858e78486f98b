package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/UbiquityDotNET/csemver-go/pkg/buildinfo"
	"github.com/UbiquityDotNET/csemver-go/pkg/csemver"
)

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:                  "build",
		EnableShellCompletion: true,
		Usage:                 "Derive build properties from a persisted version record",
		Description: `Read a repository's persisted build-version record and emit the derived
property set: canonical and expanded text forms, the ordered value, and
the file-version quad. With --ci-index and --ci-name the CI form is
included and the quad carries the CI flag.

The record format is detected from the file extension (.xml, .json,
.yaml/.yml).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   "BuildVersion.xml",
				Usage:   "Path to the persisted version record",
			},
			&cli.StringFlag{
				Name:  "ci-index",
				Usage: "CI build index; requires --ci-name",
			},
			&cli.StringFlag{
				Name:  "ci-name",
				Usage: "CI build name; requires --ci-index",
			},
			strictBuildMetaFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("file")
			rec, err := buildinfo.Load(path)
			if err != nil {
				return err
			}
			slog.Debug("loaded version record", "path", path)

			index, ciName := cmd.String("ci-index"), cmd.String("ci-name")
			if (index == "") != (ciName == "") {
				return fmt.Errorf("--ci-index and --ci-name must be provided together")
			}

			var props buildinfo.Properties
			if index != "" {
				props, err = rec.CIProperties(index, ciName,
					csemver.WithStrictBuildMeta(cmd.Bool("strict-build-meta")))
			} else {
				props, err = rec.Properties()
			}
			if err != nil {
				return err
			}
			return emit(cmd, props)
		},
	}
}
