package number

import (
	"math"
	"strconv"
)

// Kind identifies which representation a Number carries.
type Kind int

const (
	// KindInt marks an integral value stored as int64.
	KindInt Kind = iota
	// KindFloat marks a value stored as float64.
	KindFloat
)

func (k Kind) String() string {
	if k == KindInt {
		return "integer"
	}
	return "float"
}

// Number is an integer or floating point value tagged with its kind.
// The zero value is the integer 0.
type Number struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integral Number.
func Int(v int64) Number {
	return Number{kind: KindInt, i: v}
}

// Float returns a floating point Number.
func Float(v float64) Number {
	return Number{kind: KindFloat, f: v}
}

// Kind returns the representation of n.
func (n Number) Kind() Kind {
	return n.kind
}

// IsInt reports whether n is integral.
func (n Number) IsInt() bool {
	return n.kind == KindInt
}

// IsNaN reports whether n is a floating point NaN.
func (n Number) IsNaN() bool {
	return n.kind == KindFloat && math.IsNaN(n.f)
}

// IsFinite reports whether n is neither NaN nor an infinity.
func (n Number) IsFinite() bool {
	return n.kind == KindInt || (!math.IsNaN(n.f) && !math.IsInf(n.f, 0))
}

// Int64 returns n as an int64, truncating floats toward zero.
func (n Number) Int64() int64 {
	if n.kind == KindInt {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	if n.kind == KindInt {
		return float64(n.i)
	}
	return n.f
}

// Value returns the underlying int64 or float64.
func (n Number) Value() any {
	if n.kind == KindInt {
		return n.i
	}
	return n.f
}

// Equal reports whether both numbers have the same kind and value.
// NaN is never equal to anything, itself included.
func (n Number) Equal(o Number) bool {
	if n.kind != o.kind {
		return false
	}
	if n.kind == KindInt {
		return n.i == o.i
	}
	return n.f == o.f
}

func (n Number) String() string {
	if n.kind == KindInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
