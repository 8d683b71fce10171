package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pseudomuto/numcast/pkg/cmd"
	"github.com/pseudomuto/numcast/pkg/config"
	"github.com/pseudomuto/numcast/pkg/logging"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fx.New(
		fx.Supply(
			os.Args,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		fx.Provide(func() context.Context { return ctx }),
		config.Module,
		logging.Module,
		cmd.Module,
		fx.WithLogger(logging.EventLogger),
		// Commands run inside the start hook and may wait on stdin.
		fx.StartTimeout(time.Hour),
	).Run()
}
