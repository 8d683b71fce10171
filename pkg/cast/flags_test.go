package cast_test

import (
	"testing"

	"github.com/pseudomuto/numcast/pkg/cast"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		name     string
		expected cast.Flag
	}{
		{name: "allow_comma_separator", expected: cast.AllowCommaSeparator},
		{name: "HANDLE_MONEY_FORMAT", expected: cast.HandleMoneyFormat},
		{name: "handle-special-formats", expected: cast.HandleSpecialFormats},
		{name: "boolean_as_int", expected: cast.BooleanAsInt},
		{name: " null_as_zero ", expected: cast.NullAsZero},
		{name: "strict_mode", expected: cast.StrictMode},
		{name: "disallow_recursive", expected: cast.DisallowRecursive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag, err := cast.ParseFlag(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.expected, flag)
		})
	}

	_, err := cast.ParseFlag("round_everything")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown flag: round_everything")
}

func TestParseFlags(t *testing.T) {
	flags, err := cast.ParseFlags("strict_mode", "handle_money_format")
	require.NoError(t, err)
	require.True(t, flags.Has(cast.StrictMode))
	require.True(t, flags.Has(cast.HandleMoneyFormat))
	require.False(t, flags.Has(cast.NullAsZero))
	require.Equal(t, "handle_money_format|strict_mode", flags.String())
	require.Equal(t, []string{"handle_money_format", "strict_mode"}, flags.Names())

	flags, err = cast.ParseFlags()
	require.NoError(t, err)
	require.Equal(t, "none", flags.String())

	_, err = cast.ParseFlags("strict_mode", "nope")
	require.Error(t, err)
}
