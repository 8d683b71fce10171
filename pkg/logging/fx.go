package logging

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var Module = fx.Module("logging",
	fx.Provide(func(lc fx.Lifecycle, cfg Config) (*zap.Logger, error) {
		logger, err := New(cfg)
		if err != nil {
			return nil, err
		}

		lc.Append(fx.StopHook(func(context.Context) error {
			// Sync fails on terminals, nothing useful can be done about it.
			_ = logger.Sync()
			return nil
		}))
		return logger, nil
	}),
)

// EventLogger routes fx lifecycle events to the application logger at debug
// level.
func EventLogger(logger *zap.Logger) fxevent.Logger {
	l := &fxevent.ZapLogger{Logger: logger}
	l.UseLogLevel(zap.DebugLevel)
	return l
}
