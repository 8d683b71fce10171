package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/numcast/pkg/config"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Logger     *zap.Logger
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the numcast CLI application with the fx lifecycle. The
// application is executed once fx has started and the process exit code is
// derived from the command result.
//
// Global Flags:
//   - --config, -c: Config file replacing the one found via NUMCAST_CONFIG
//     or numcast.yaml
//
// Example usage:
//
//	numcast cast --money "1 234,56"
//	numcast --config numcast.yaml convert --input data.yaml --output json
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "numcast",
		Usage: "Coerce loosely formatted values into numbers",
		Description: `numcast converts strings such as "1 234,56", "0x1A" or "12,5" into
integers and floats. Values are coerced one at a time with the cast command
or inside whole YAML/JSON documents with the convert command.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a numcast.yaml config file",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before:   loadConfig(p.Config),
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			p.Logger.Error("Error running command", zap.Error(err))
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// loadConfig replaces cfg in place with the file named by --config so that
// commands holding the injected pointer see the override.
func loadConfig(cfg *config.Config) func(context.Context, *cli.Command) (context.Context, error) {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		path := cmd.String("config")
		if path == "" {
			return ctx, nil
		}

		loaded, err := config.LoadConfigFile(path)
		if err != nil {
			return ctx, errors.Wrap(err, "failed to load config")
		}

		*cfg = *loaded
		return ctx, nil
	}
}
