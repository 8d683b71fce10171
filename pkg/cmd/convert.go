package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/numcast/pkg/cast"
	"github.com/pseudomuto/numcast/pkg/config"
	"github.com/pseudomuto/numcast/pkg/walk"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// convertCmd coerces every scalar of a YAML or JSON document.
//
// The document is read from --input (stdin by default), walked with the
// configured options and written back as YAML or JSON. With --diff only the
// changed lines are printed, prefixed with "-" and "+".
//
// Examples:
//
//	numcast convert --input prices.yaml
//	cat prices.json | numcast convert --money --output json
//	numcast convert --strict --diff --input prices.yaml
func convertCmd(cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "convert",
		Usage: "Coerce every value of a YAML or JSON document",
		Flags: append(optionFlags(),
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "document to read, - for stdin",
				Value:   "-",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format: yaml or json",
				Value:   "yaml",
			},
			&cli.BoolFlag{
				Name:  "diff",
				Usage: "print a line diff between the input and the converted document",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := castOptions(cmd, cfg)
			if err != nil {
				return err
			}

			encode, err := encoderFor(cmd.String("output"))
			if err != nil {
				return err
			}

			doc, err := readDocument(cmd.Root().Reader, cmd.String("input"))
			if err != nil {
				return err
			}

			converted := walk.Map(doc, opts, logLeaf(logger))

			w := cmd.Root().Writer
			if !cmd.Bool("diff") {
				return encode(w, converted)
			}

			var before, after bytes.Buffer
			if err := encode(&before, doc); err != nil {
				return err
			}
			if err := encode(&after, converted); err != nil {
				return err
			}

			return writeDiff(w, before.String(), after.String())
		},
	}
}

func readDocument(stdin io.Reader, path string) (any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document: %s", path)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse document: %s", path)
	}

	return doc, nil
}

// logLeaf reports values that could not be converted.
func logLeaf(logger *zap.Logger) walk.Visitor {
	return func(path []string, in any, res cast.Result) {
		if res.IsNumeric() {
			return
		}

		logger.Debug("Value not converted",
			zap.String("path", strings.Join(path, ".")),
			zap.Any("value", in),
			zap.Stringer("kind", res.Kind),
		)
	}
}

type encodeFunc func(io.Writer, any) error

func encoderFor(format string) (encodeFunc, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return encodeYAML, nil
	case "json":
		return encodeJSON, nil
	default:
		return nil, errors.Errorf("unsupported output format: %s", format)
	}
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode YAML")
	}
	return errors.Wrap(enc.Close(), "failed to encode YAML")
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(jsonValue(v)), "failed to encode JSON")
}

// jsonValue makes a decoded document encodable as JSON. Non-string map keys
// are printed with fmt and non-finite floats become the strings "NaN",
// "+Inf" and "-Inf".
func jsonValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = jsonValue(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = jsonValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = jsonValue(val)
		}
		return out
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return strconv.FormatFloat(t, 'g', -1, 64)
		}
	}
	return v
}

func writeDiff(w io.Writer, before, after string) error {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		prefix := ""
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		default:
			continue
		}

		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if _, err := fmt.Fprintln(w, prefix+line); err != nil {
				return errors.Wrap(err, "failed to write diff")
			}
		}
	}

	return nil
}
