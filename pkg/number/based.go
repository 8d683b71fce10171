package number

import (
	"math/big"
	"regexp"
)

var basedPattern = regexp.MustCompile(`^-?(0[xX][0-9a-fA-F]+|0[bB][01]+)$`)

// IsBased reports whether text is a signed hexadecimal or binary integer
// literal such as "0x1A" or "-0b101".
func IsBased(text string) bool {
	return basedPattern.MatchString(text)
}

// ParseBased parses a signed hexadecimal ("0x"/"0X") or binary ("0b"/"0B")
// integer literal. Values outside the int64 range are returned as floats.
func ParseBased(text string) (Number, bool) {
	if !basedPattern.MatchString(text) {
		return Number{}, false
	}

	v, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return Number{}, false
	}

	if v.IsInt64() {
		return Int(v.Int64()), true
	}

	f, _ := new(big.Float).SetInt(v).Float64()
	return Float(f), true
}
