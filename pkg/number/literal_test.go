package number_test

import (
	"math"
	"testing"

	. "github.com/pseudomuto/numcast/pkg/number"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Number
	}{
		{name: "integer", input: "1234", expected: Int(1234)},
		{name: "negative integer", input: "-1234", expected: Int(-1234)},
		{name: "explicit plus", input: "+42", expected: Int(42)},
		{name: "underscored integer", input: "1_234_567", expected: Int(1234567)},
		{name: "negative underscored integer", input: "-1_234_567", expected: Int(-1234567)},
		{name: "octal looking", input: "0123", expected: Int(83)},
		{name: "octal looking short", input: "042", expected: Int(34)},
		{name: "negative octal looking", input: "-0123", expected: Int(-83)},
		{name: "leading zero with decimal digits", input: "089", expected: Int(89)},
		{name: "zero", input: "0", expected: Int(0)},
		{name: "leading whitespace", input: " 0", expected: Int(0)},
		{name: "surrounding whitespace", input: "\t12\n", expected: Int(12)},
		{name: "float", input: "1.234", expected: Float(1.234)},
		{name: "negative float", input: "-1.234", expected: Float(-1.234)},
		{name: "exponent", input: "1.2e3", expected: Float(1200)},
		{name: "integer exponent", input: "7e3", expected: Float(7000)},
		{name: "negative exponent", input: "7e-3", expected: Float(0.007)},
		{name: "upper exponent", input: "1.2E3", expected: Float(1200)},
		{name: "negative upper exponent", input: "-7E-3", expected: Float(-0.007)},
		{name: "leading dot", input: ".42", expected: Float(0.42)},
		{name: "negative leading dot", input: "-.42", expected: Float(-0.42)},
		{name: "trailing dot", input: "23.", expected: Float(23)},
		{name: "negative trailing dot", input: "-23.", expected: Float(-23)},
		{name: "underscored float", input: "1_23443.36", expected: Float(123443.36)},
		{name: "underscored trailing dot", input: "1_23443.", expected: Float(123443)},
		{name: "int64 overflow", input: "99999999999999999999", expected: Float(1e20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected.Kind(), n.Kind())
			require.InDelta(t, tt.expected.Float64(), n.Float64(), 1e-9)
			if tt.expected.IsInt() {
				require.Equal(t, tt.expected.Int64(), n.Int64())
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"string",
		"1,234",
		"1 000",
		"1.2.3",
		"1e",
		"e5",
		".",
		"-",
		"+",
		"1__0",
		"_1",
		"1_",
		"0x1a",
		"0b101",
		"12abc",
		"- 1",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrNotNumeric)
			require.False(t, IsNumeric(input))
		})
	}
}

func TestParseLiteral(t *testing.T) {
	lit, err := ParseLiteral("  -1.5e2 ")
	require.NoError(t, err)
	require.NotNil(t, lit.Float)
	require.Nil(t, lit.Int)
	require.Equal(t, "-1.5e2", *lit.Float)

	lit, err = ParseLiteral("1_000")
	require.NoError(t, err)
	require.NotNil(t, lit.Int)
	require.Equal(t, "1_000", *lit.Int)
}

func TestParseHugeExponent(t *testing.T) {
	n, err := Parse("1e400")
	require.NoError(t, err)
	require.True(t, math.IsInf(n.Float64(), 1))
}
