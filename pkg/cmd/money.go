package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/numcast/pkg/money"
	"github.com/urfave/cli/v3"
)

// moneyCmd runs the grouped amount parser on each argument and prints the
// normalized text next to whether the input matched a grouping pattern. With
// --number the normalized text is converted and printed as a number instead.
//
//	$ numcast money "1 234,56" "1,234.56" abc
//	1 234,56	1234.56	true
//	1,234.56	1234.56	true
//	abc	abc	false
func moneyCmd() *cli.Command {
	return &cli.Command{
		Name:      "money",
		Usage:     "Normalize space or comma grouped amounts",
		ArgsUsage: "<value>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "number",
				Aliases: []string{"n"},
				Usage:   "print the converted number instead of the normalized text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return errors.New("at least one value is required")
			}

			w := cmd.Root().Writer
			asNumber := cmd.Bool("number")
			for _, arg := range cmd.Args().Slice() {
				normalized, matched := money.Parse(arg)
				if asNumber {
					if n, ok := money.ParseNumber(arg); ok {
						normalized = n.String()
					}
				}

				if _, err := fmt.Fprintf(w, "%s\t%s\t%t\n", arg, normalized, matched); err != nil {
					return errors.Wrap(err, "failed to write result")
				}
			}

			return nil
		},
	}
}
