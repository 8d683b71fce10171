package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/numcast/pkg/number"
	"github.com/pseudomuto/numcast/pkg/round"
)

type (
	// FormatterOptions controls how numbers are rendered.
	FormatterOptions struct {
		// Precision is the number of fractional digits. Negative values round
		// to tens, hundreds, ... and print no fractional part.
		Precision int
		// Mode is the tie-break rule used when rounding to Precision.
		Mode round.Mode
		// DecimalSeparator is placed between the integer and fractional parts.
		DecimalSeparator string
		// ThousandsSeparator is placed between groups of three integer digits.
		ThousandsSeparator string
	}

	// Formatter renders numbers according to its options.
	Formatter struct {
		options FormatterOptions
	}
)

// Defaults renders whole numbers with "," between thousands.
var Defaults = FormatterOptions{
	Precision:          0,
	Mode:               round.HalfUp,
	DecimalSeparator:   ".",
	ThousandsSeparator: ",",
}

// New creates a Formatter with the given options.
func New(options FormatterOptions) *Formatter {
	return &Formatter{options: options}
}

// Options returns the options the Formatter was created with.
func (f *Formatter) Options() FormatterOptions {
	return f.options
}

// Format writes every number on its own line.
func (f *Formatter) Format(w io.Writer, numbers ...number.Number) error {
	for _, n := range numbers {
		if _, err := io.WriteString(w, f.String(n)+"\n"); err != nil {
			return errors.Wrap(err, "failed to write formatted number")
		}
	}
	return nil
}

// Format is the functional form of Formatter.Format.
func Format(w io.Writer, options FormatterOptions, numbers ...number.Number) error {
	return New(options).Format(w, numbers...)
}

// String renders a single number. NaN and infinities are rendered the way
// strconv prints them since they have no digits to group.
func (f *Formatter) String(n number.Number) string {
	if !n.IsFinite() {
		return n.String()
	}

	digits := max(f.options.Precision, 0)
	fixed := round.Decimal(n, f.options.Precision, f.options.Mode).StringFixed(int32(digits))

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	integer, fraction, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteString(f.group(integer))
	if digits > 0 {
		sb.WriteString(f.options.DecimalSeparator)
		sb.WriteString(fraction)
	}

	return sb.String()
}

// group inserts the thousands separator into a string of digits.
func (f *Formatter) group(integer string) string {
	if f.options.ThousandsSeparator == "" || len(integer) <= 3 {
		return integer
	}

	head := len(integer) % 3
	if head == 0 {
		head = 3
	}

	parts := []string{integer[:head]}
	for i := head; i < len(integer); i += 3 {
		parts = append(parts, integer[i:i+3])
	}
	return strings.Join(parts, f.options.ThousandsSeparator)
}
