package cmd

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/numcast/pkg/cast"
	"github.com/pseudomuto/numcast/pkg/config"
	"github.com/pseudomuto/numcast/pkg/round"
	"github.com/pseudomuto/numcast/pkg/utils"
	"github.com/urfave/cli/v3"
)

// flagSwitches maps boolean CLI switches onto coercion flags.
var flagSwitches = []struct {
	name  string
	flag  cast.Flag
	usage string
}{
	{"comma", cast.AllowCommaSeparator, `read "12,5" as 12.5`},
	{"money", cast.HandleMoneyFormat, `read grouped amounts like "1 234,56" and "1,234.56"`},
	{"special", cast.HandleSpecialFormats, "read 0x and 0b prefixed integers"},
	{"bool-as-int", cast.BooleanAsInt, "convert booleans to 1 and 0"},
	{"null-as-zero", cast.NullAsZero, "convert null to 0"},
	{"strict", cast.StrictMode, "replace values that cannot be converted with NaN"},
	{"no-recurse", cast.DisallowRecursive, "leave nested containers untouched"},
}

// optionFlags returns the coercion flags shared by every command.
func optionFlags() []cli.Flag {
	flags := make([]cli.Flag, 0, len(flagSwitches)+4)
	for _, s := range flagSwitches {
		flags = append(flags, &cli.BoolFlag{Name: s.name, Usage: s.usage})
	}

	return append(flags,
		&cli.IntFlag{
			Name:  "precision",
			Usage: "round results to this many fractional digits (negative rounds to tens, hundreds, ...)",
		},
		&cli.StringFlag{
			Name:  "rounding",
			Usage: "tie-break rule: half-up, half-down, half-even or half-odd",
		},
		&cli.StringFlag{
			Name:  "decimal-separator",
			Usage: "render results as strings using this decimal separator",
		},
		&cli.StringFlag{
			Name:  "thousands-separator",
			Usage: "separator between digit groups of rendered results",
		},
	)
}

// castOptions starts from the config file and applies any flags given on the
// command line.
func castOptions(cmd *cli.Command, cfg *config.Config) (cast.Options, error) {
	opts, err := cfg.Options()
	if err != nil {
		return opts, errors.Wrap(err, "invalid config")
	}

	for _, s := range flagSwitches {
		if !cmd.IsSet(s.name) {
			continue
		}

		if cmd.Bool(s.name) {
			opts.Flags |= s.flag
		} else {
			opts.Flags &^= s.flag
		}
	}

	if cmd.IsSet("precision") {
		opts.Precision = utils.Ptr(int(cmd.Int("precision")))
	}

	if cmd.IsSet("rounding") {
		mode, err := round.ParseMode(cmd.String("rounding"))
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}

	if cmd.IsSet("decimal-separator") {
		opts.DecimalSeparator = cmd.String("decimal-separator")
	}

	if cmd.IsSet("thousands-separator") {
		opts.ThousandsSeparator = cmd.String("thousands-separator")
	}

	return opts, nil
}
