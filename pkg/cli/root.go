package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/UbiquityDotNET/csemver-go/pkg/logging"
	"github.com/UbiquityDotNET/csemver-go/pkg/serializer"
)

const (
	name           = "csemver"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to the given file instead of stdout",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Value: "info",
		Usage: "Log level (debug, info, warn, error)",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Constrained semantic versioning (CSemVer) tooling",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(),
			compareCmd(),
			sortCmd(),
			encodeCmd(),
			decodeCmd(),
			ciCmd(),
			buildCmd(),
		},
	}
}

// Execute runs the root command. It is called by main and handles
// SIGINT/SIGTERM for graceful cancellation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// emit serializes v per the command's --output and --format flags.
func emit(cmd *cli.Command, v any) error {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", outFormat)
	}

	w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer w.Close()
	return w.Serialize(v)
}
