package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(castCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(convertCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(moneyCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
