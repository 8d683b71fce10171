package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/numcast/pkg/cmd/testutil"
	"github.com/pseudomuto/numcast/pkg/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
	"gotest.tools/v3/golden"
)

var strictArgs = []string{"--money", "--comma", "--special", "--strict"}

func TestConvertCommand_Golden(t *testing.T) {
	input := filepath.Join("testdata", "product.yaml")

	tests := []struct {
		name   string
		output string
	}{
		{name: "convert_strict.yaml.golden", output: "yaml"},
		{name: "convert_strict.json.golden", output: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--input", input, "--output", tt.output}, strictArgs...)
			out, err := testutil.RunCommand(t, convertCmd(config.Default(), zap.NewNop()), args...)
			require.NoError(t, err)
			golden.Assert(t, out, tt.name)
		})
	}
}

func TestConvertCommand_Stdin(t *testing.T) {
	input := `{"a": "1,5", "b": [true, null], "c": "text"}`

	out, err := testutil.RunCommandWithInput(
		context.Background(), t,
		convertCmd(config.Default(), zap.NewNop()),
		input,
		"--comma", "--bool-as-int", "--null-as-zero", "--output", "json",
	)
	require.NoError(t, err)
	require.JSONEq(t, `{"a": 1.5, "b": [1, 0], "c": "text"}`, out)
}

func TestConvertCommand_NoRecurse(t *testing.T) {
	out, err := testutil.RunCommandWithInput(
		context.Background(), t,
		convertCmd(config.Default(), zap.NewNop()),
		`["1", ["2", "x"], {"k": "3"}]`,
		"--no-recurse", "--strict",
	)
	require.NoError(t, err)

	var doc []any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Equal(t, []any{1, []any{"2", "x"}, map[string]any{"k": "3"}}, doc)
}

func TestConvertCommand_Diff(t *testing.T) {
	input := testutil.WriteDocument(t, "doc.yaml", "name: widget\nquantity: \"12\"\nprice: 3.5\n")

	out, err := testutil.RunCommand(t, convertCmd(config.Default(), zap.NewNop()), "--input", input, "--diff")
	require.NoError(t, err)

	lines := testutil.Lines(out)
	require.Len(t, lines, 2)
	require.Regexp(t, `^- quantity: .12.$`, lines[0])
	require.Equal(t, "+ quantity: 12", lines[1])
	require.NotContains(t, out, "name")
	require.NotContains(t, out, "price")
}

func TestConvertCommand_LogsUnconverted(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := testutil.RunCommandWithInput(
		context.Background(), t,
		convertCmd(config.Default(), zap.New(core)),
		"items:\n  - \"1\"\n  - abc\nother: xyz\n",
		"--strict",
	)
	require.NoError(t, err)

	entries := logs.FilterMessage("Value not converted").AllUntimed()
	require.Len(t, entries, 2)

	paths := []string{}
	for _, e := range entries {
		paths = append(paths, e.ContextMap()["path"].(string))
		require.Equal(t, "nan", e.ContextMap()["kind"])
	}
	require.ElementsMatch(t, []string{"items.1", "other"}, paths)
}

func TestConvertCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{
			name: "unsupported output",
			args: []string{"--output", "toml", "--input", filepath.Join("testdata", "product.yaml")},
			msg:  "unsupported output format: toml",
		},
		{
			name: "missing input",
			args: []string{"--input", "nonexistent.yaml"},
			msg:  "failed to read document: nonexistent.yaml",
		},
		{
			name: "invalid rounding",
			args: []string{"--rounding", "up"},
			msg:  "unknown rounding mode: up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testutil.RunCommand(t, convertCmd(config.Default(), zap.NewNop()), tt.args...)
			testutil.RequireError(t, err, tt.msg)
		})
	}
}

func TestConvertCommand_InvalidDocument(t *testing.T) {
	_, err := testutil.RunCommandWithInput(
		context.Background(), t,
		convertCmd(config.Default(), zap.NewNop()),
		"a: [1, 2",
	)
	testutil.RequireError(t, err, "failed to parse document: -")
}
