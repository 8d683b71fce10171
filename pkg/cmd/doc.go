// Package cmd provides the CLI commands of the numcast tool.
//
// Commands are built with urfave/cli/v3 and assembled by fx: each command
// constructor is provided into the "commands" value group and Run registers
// the resulting application with the fx lifecycle.
//
// # Available Commands
//
//   - cast: coerce each argument and print the result
//   - money: normalize space or comma grouped amounts
//   - convert: coerce every value of a YAML or JSON document
//
// # Options
//
// cast and convert start from the loaded numcast.yaml and accept flags that
// override it:
//
//	--comma --money --special --bool-as-int --null-as-zero --strict --no-recurse
//	--precision N --rounding MODE --decimal-separator S --thousands-separator S
//
// # Example Usage
//
//	numcast cast --comma "12,5"                    # 12.5
//	numcast cast --special 0x1A 0b101               # 26, 5
//	numcast money "1 234 567,89"                    # 1234567.89
//	numcast convert --money -i prices.yaml -o json  # whole documents
package cmd
