package cast

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/pseudomuto/numcast/pkg/format"
	"github.com/pseudomuto/numcast/pkg/money"
	"github.com/pseudomuto/numcast/pkg/number"
	"github.com/pseudomuto/numcast/pkg/round"
)

var commaDecimal = regexp.MustCompile(`^\d+,\d+$`)

type (
	// Options controls a single coercion.
	Options struct {
		// Flags selects the classification behaviour.
		Flags Flag
		// Precision rounds numeric results when set. Negative values round to
		// tens, hundreds, and so on.
		Precision *int
		// Mode is the tie-break rule used for rounding. The zero value is
		// round.HalfUp.
		Mode round.Mode
		// DecimalSeparator switches the output to a formatted string when it
		// is not empty.
		DecimalSeparator string
		// ThousandsSeparator is used between digit groups of formatted output.
		ThousandsSeparator string
	}

	// Kind describes the outcome of a coercion.
	Kind int

	// Result is the outcome of Coerce. Exactly one of Number (Numeric), Text
	// (Formatted) or Original (Unchanged, NotANumber) is meaningful.
	Result struct {
		Kind     Kind
		Number   number.Number
		Text     string
		Original any
	}
)

const (
	// Unchanged means no rule applied and the input is returned as is.
	Unchanged Kind = iota
	// Numeric means the input was converted to an integer or float.
	Numeric
	// Formatted means the input was converted and rendered as a string.
	Formatted
	// NotANumber means no rule applied and StrictMode was set.
	NotANumber
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Formatted:
		return "formatted"
	case NotANumber:
		return "nan"
	default:
		return "unchanged"
	}
}

// Value returns the coerced value: int64 or float64 for Numeric results, the
// rendered string for Formatted ones, NaN for NotANumber and the original
// input otherwise.
func (r Result) Value() any {
	switch r.Kind {
	case Numeric:
		return r.Number.Value()
	case Formatted:
		return r.Text
	case NotANumber:
		return math.NaN()
	default:
		return r.Original
	}
}

// IsNumeric reports whether the input was converted.
func (r Result) IsNumeric() bool {
	return r.Kind == Numeric || r.Kind == Formatted
}

// Coerce converts value into a number following opts. It never fails; values
// that cannot be converted are returned unchanged or, with StrictMode, as
// NotANumber.
func Coerce(value any, opts Options) Result {
	n, ok := classify(value, opts.Flags)
	if !ok {
		if opts.Flags.Has(StrictMode) {
			return Result{Kind: NotANumber, Original: value}
		}
		return Result{Kind: Unchanged, Original: value}
	}

	if opts.DecimalSeparator != "" {
		f := format.New(format.FormatterOptions{
			Precision:          opts.precision(),
			Mode:               opts.Mode,
			DecimalSeparator:   opts.DecimalSeparator,
			ThousandsSeparator: opts.ThousandsSeparator,
		})
		return Result{
			Kind:     Formatted,
			Number:   round.Round(n, opts.precision(), opts.Mode),
			Text:     f.String(n),
			Original: value,
		}
	}

	if opts.Precision != nil {
		n = round.Round(n, *opts.Precision, opts.Mode)
	}
	return Result{Kind: Numeric, Number: n, Original: value}
}

// Value is shorthand for Coerce(value, opts).Value().
func Value(value any, opts Options) any {
	return Coerce(value, opts).Value()
}

func (o Options) precision() int {
	if o.Precision == nil {
		return 0
	}
	return *o.Precision
}

func classify(value any, flags Flag) (number.Number, bool) {
	if text, ok := asText(value); ok {
		return classifyText(text, flags)
	}

	if n, ok := asNumber(value); ok {
		return n, true
	}

	if value == nil {
		if flags.Has(NullAsZero) {
			return number.Int(0), true
		}
		return number.Number{}, false
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Bool {
		if flags.Has(BooleanAsInt) {
			if rv.Bool() {
				return number.Int(1), true
			}
			return number.Int(0), true
		}
		return number.Number{}, false
	}

	if s, ok := asStringer(value); ok {
		return classifyText(s, flags)
	}

	return number.Number{}, false
}

func classifyText(text string, flags Flag) (number.Number, bool) {
	if flags.Has(HandleMoneyFormat) {
		text, _ = money.Parse(text)
	}

	if flags.Has(AllowCommaSeparator) && commaDecimal.MatchString(text) {
		text = strings.Replace(text, ",", ".", 1)
	}

	if n, err := number.Parse(text); err == nil {
		return n, true
	}

	if flags.Has(HandleSpecialFormats) {
		return number.ParseBased(text)
	}

	return number.Number{}, false
}

// asText handles the builtin textual types. Stringers are checked last so
// that named numeric and boolean types keep their value semantics.
func asText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func asStringer(value any) (string, bool) {
	s, ok := value.(fmt.Stringer)
	if !ok {
		return "", false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return "", false
		}
	}
	return s.String(), true
}

func asNumber(value any) (number.Number, bool) {
	if value == nil {
		return number.Number{}, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number.Int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return number.Float(float64(u)), true
		}
		return number.Int(int64(u)), true
	case reflect.Float32, reflect.Float64:
		return number.Float(rv.Float()), true
	}
	return number.Number{}, false
}
