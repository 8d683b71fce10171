// Package round rounds numbers to a signed number of fractional digits using
// one of four tie-breaking rules.
//
// Rounding works on the shortest decimal representation of a value rather
// than on its binary form, so 1.005 rounded to two places with HalfUp is 1.01.
package round

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/numcast/pkg/number"
	"github.com/shopspring/decimal"
)

// Mode selects how a value exactly halfway between two candidates is rounded.
type Mode int

const (
	// HalfUp rounds ties away from zero. It is also used for the zero Mode.
	HalfUp Mode = iota + 1
	// HalfDown rounds ties toward zero.
	HalfDown
	// HalfEven rounds ties to the even neighbour.
	HalfEven
	// HalfOdd rounds ties to the odd neighbour.
	HalfOdd
)

var (
	modeNames = map[Mode]string{
		HalfUp:   "half-up",
		HalfDown: "half-down",
		HalfEven: "half-even",
		HalfOdd:  "half-odd",
	}

	half = decimal.New(5, -1)
	one  = decimal.NewFromInt(1)
	two  = decimal.NewFromInt(2)
)

func (m Mode) String() string {
	if name, ok := modeNames[m.normalize()]; ok {
		return name
	}
	return "unknown"
}

// ParseMode returns the Mode for names like "half-even" or "HALF_EVEN".
func ParseMode(name string) (Mode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for mode, modeName := range modeNames {
		if key == modeName {
			return mode, nil
		}
	}
	return 0, errors.Errorf("unknown rounding mode: %s", name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m Mode) normalize() Mode {
	if m == 0 {
		return HalfUp
	}
	return m
}

// Round rounds n to precision fractional digits. A negative precision rounds
// to the nearest multiple of 10^-precision. Integers keep their kind, floats
// keep theirs, and non-finite floats are returned as is.
func Round(n number.Number, precision int, mode Mode) number.Number {
	if !n.IsFinite() {
		return n
	}
	if n.IsInt() && precision >= 0 {
		return n
	}

	d := Decimal(n, precision, mode)
	if n.IsInt() {
		if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || d.LessThan(decimal.NewFromInt(math.MinInt64)) {
			return number.Float(d.InexactFloat64())
		}
		return number.Int(d.IntPart())
	}

	return number.Float(d.InexactFloat64())
}

// Decimal returns n rounded to precision as a decimal. n must be finite.
func Decimal(n number.Number, precision int, mode Mode) decimal.Decimal {
	var d decimal.Decimal
	if n.IsInt() {
		d = decimal.NewFromInt(n.Int64())
	} else {
		d = decimal.NewFromFloat(n.Float64())
	}
	return Apply(d, precision, mode)
}

// Apply rounds d to precision fractional digits with the given mode.
func Apply(d decimal.Decimal, precision int, mode Mode) decimal.Decimal {
	places := int32(precision)
	shifted := d.Shift(places)
	whole := shifted.Truncate(0)

	switch shifted.Sub(whole).Abs().Cmp(half) {
	case 1:
		whole = awayFromZero(whole, shifted)
	case 0:
		if breakTie(whole, mode.normalize()) {
			whole = awayFromZero(whole, shifted)
		}
	}

	return whole.Shift(-places)
}

// breakTie reports whether a tie at whole should move away from zero.
func breakTie(whole decimal.Decimal, mode Mode) bool {
	even := whole.Mod(two).IsZero()
	switch mode {
	case HalfDown:
		return false
	case HalfEven:
		return !even
	case HalfOdd:
		return even
	default:
		return true
	}
}

func awayFromZero(whole, shifted decimal.Decimal) decimal.Decimal {
	if shifted.Sign() < 0 {
		return whole.Sub(one)
	}
	return whole.Add(one)
}
