package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pseudomuto/numcast/pkg/cast"
	"github.com/pseudomuto/numcast/pkg/config"
	"github.com/urfave/cli/v3"
)

// castCmd coerces every argument and prints one tab separated line per value:
// the input, the result and what happened to it.
//
// The last column is "integer" or "float" for converted numbers, and
// "formatted", "nan" or "unchanged" otherwise.
//
// Examples:
//
//	numcast cast 42 "1.5" abc
//	numcast cast --money --precision 2 "1 234,565"
//	numcast cast --typed --bool-as-int true null
func castCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "cast",
		Usage:     "Coerce values into numbers",
		ArgsUsage: "<value>...",
		Flags: append(optionFlags(),
			&cli.BoolFlag{
				Name:  "typed",
				Usage: "read true, false and null as booleans and null instead of text",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return errors.New("at least one value is required")
			}

			opts, err := castOptions(cmd, cfg)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			p := newPalette(w, !cmd.Bool("no-color"))
			typed := cmd.Bool("typed")

			for _, arg := range cmd.Args().Slice() {
				var in any = arg
				if typed {
					in = typedValue(arg)
				}

				res := cast.Coerce(in, opts)
				c := p.colorFor(res)
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", arg, c.Sprint(display(res)), c.Sprint(kindLabel(res))); err != nil {
					return errors.Wrap(err, "failed to write result")
				}
			}

			return nil
		},
	}
}

func typedValue(arg string) any {
	switch arg {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	default:
		return arg
	}
}

func display(res cast.Result) string {
	switch res.Kind {
	case cast.Numeric:
		return res.Number.String()
	case cast.Formatted:
		return res.Text
	case cast.NotANumber:
		return "NaN"
	default:
		if res.Original == nil {
			return "null"
		}
		return fmt.Sprint(res.Original)
	}
}

func kindLabel(res cast.Result) string {
	if res.Kind == cast.Numeric {
		return res.Number.Kind().String()
	}
	return res.Kind.String()
}

func (p palette) colorFor(res cast.Result) *color.Color {
	switch res.Kind {
	case cast.Numeric:
		return p.numeric
	case cast.Formatted:
		return p.formatted
	case cast.NotANumber:
		return p.nan
	default:
		return p.unchanged
	}
}
