package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/numcast/pkg/cast"
	. "github.com/pseudomuto/numcast/pkg/config"
	"github.com/pseudomuto/numcast/pkg/consts"
	"github.com/pseudomuto/numcast/pkg/round"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/numcast.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		config, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal config")

		// Empty input
		config, err = LoadConfig(strings.NewReader(""))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal config")

		// Unknown flag
		config, err = LoadConfig(strings.NewReader("flags: [round_everything]"))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "unknown flag: round_everything")

		// Unknown rounding mode
		config, err = LoadConfig(strings.NewReader("rounding: sideways"))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "unknown rounding mode")
	})

	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("other_key: value"))
		require.NoError(t, err)
		require.Empty(t, config.Flags)
		require.Nil(t, config.Precision)
		require.Equal(t, round.HalfUp, config.Rounding)
		require.Equal(t, consts.DefaultLogLevel, config.Logging.Level)
		require.Equal(t, consts.DefaultLogFormat, config.Logging.Format)
		require.Equal(t, consts.DefaultLogOutput, config.Logging.Output)

		opts, err := config.Options()
		require.NoError(t, err)
		require.Equal(t, cast.Options{Mode: round.HalfUp}, opts)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "numcast.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

		config, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		config, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to open file")

		// Directory instead of file
		config, err = LoadConfigFile(t.TempDir())
		require.Error(t, err)
		require.Nil(t, config)
	})
}

func TestOptions(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	opts, err := config.Options()
	require.NoError(t, err)
	require.Equal(t, cast.HandleMoneyFormat|cast.AllowCommaSeparator|cast.StrictMode, opts.Flags)
	require.Equal(t, 2, *opts.Precision)
	require.Equal(t, round.HalfEven, opts.Mode)
	require.Equal(t, ",", opts.DecimalSeparator)
	require.Equal(t, " ", opts.ThousandsSeparator)

	res := cast.Coerce("1 234 567,885", opts)
	require.Equal(t, cast.Formatted, res.Kind)
	require.Equal(t, "1 234 567,88", res.Value())

	config.Flags = append(config.Flags, "bogus")
	_, err = config.Options()
	require.Error(t, err)
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.Equal(t, []string{"handle_money_format", "allow_comma_separator", "strict_mode"}, config.Flags)
	require.NotNil(t, config.Precision)
	require.Equal(t, 2, *config.Precision)
	require.Equal(t, round.HalfEven, config.Rounding)
	require.Equal(t, ",", config.DecimalSeparator)
	require.Equal(t, " ", config.ThousandsSeparator)
	require.Equal(t, "debug", config.Logging.Level)
	require.Equal(t, "json", config.Logging.Format)
	require.Equal(t, consts.DefaultLogOutput, config.Logging.Output)
}
