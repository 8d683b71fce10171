package number

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// ErrNotNumeric is returned (wrapped) when text is not a numeric literal.
var ErrNotNumeric = errors.New("not a numeric literal")

var (
	// literalLexer tokenizes plain decimal literals. Float must be tried
	// before Int so that "1.5" is not split into "1" and ".5".
	literalLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Float", Pattern: `[-+]?(?:(?:\d+(?:_\d+)*)?\.\d+(?:_\d+)*(?:[eE][-+]?\d+(?:_\d+)*)?|\d+(?:_\d+)*\.(?:[eE][-+]?\d+(?:_\d+)*)?|\d+(?:_\d+)*[eE][-+]?\d+(?:_\d+)*)`},
		{Name: "Int", Pattern: `[-+]?\d+(?:_\d+)*`},
		{Name: "Whitespace", Pattern: `[ \t\n\r\v\f]+`},
	})

	literalParser = participle.MustBuild[Literal](
		participle.Lexer(literalLexer),
		participle.Elide("Whitespace"),
	)
)

// Literal is a single plain numeric literal. Exactly one of Float and Int is
// set after a successful parse.
type Literal struct {
	Pos lexer.Position

	Float *string `parser:"  @Float"`
	Int   *string `parser:"| @Int"`
}

// ParseLiteral parses text as exactly one plain numeric literal surrounded by
// optional whitespace.
func ParseLiteral(text string) (*Literal, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.Wrap(ErrNotNumeric, "empty input")
	}

	lit, err := literalParser.ParseString("", text)
	if err != nil {
		return nil, errors.Wrapf(ErrNotNumeric, "failed to parse %q: %v", text, err)
	}

	if lit.Float == nil && lit.Int == nil {
		return nil, errors.Wrapf(ErrNotNumeric, "no literal in %q", text)
	}

	return lit, nil
}

// Number converts the literal to its value. Integral literals that do not fit
// into an int64 are returned as floats.
func (l *Literal) Number() (Number, error) {
	if l.Int != nil {
		return parseIntegral(*l.Int)
	}

	f, err := strconv.ParseFloat(stripUnderscores(*l.Float), 64)
	if err != nil && !isRangeErr(err) {
		return Number{}, errors.Wrapf(err, "invalid float literal %q", *l.Float)
	}
	return Float(f), nil
}

// Parse reads text as a plain numeric literal.
func Parse(text string) (Number, error) {
	lit, err := ParseLiteral(text)
	if err != nil {
		return Number{}, err
	}
	return lit.Number()
}

// IsNumeric reports whether text is a plain numeric literal.
func IsNumeric(text string) bool {
	_, err := ParseLiteral(text)
	return err == nil
}

func parseIntegral(text string) (Number, error) {
	clean := stripUnderscores(text)

	sign, digits := "", clean
	if digits[0] == '+' || digits[0] == '-' {
		sign, digits = digits[:1], digits[1:]
	}

	base := 10
	if len(digits) > 1 && digits[0] == '0' && isOctal(digits) {
		base = 8
	}

	i, err := strconv.ParseInt(sign+digits, base, 64)
	if err == nil {
		return Int(i), nil
	}
	if !isRangeErr(err) {
		return Number{}, errors.Wrapf(err, "invalid integer literal %q", text)
	}

	// out of int64 range
	if base == 8 {
		return Float(octalFloat(sign, digits)), nil
	}
	f, err := strconv.ParseFloat(sign+digits, 64)
	if err != nil && !isRangeErr(err) {
		return Number{}, errors.Wrapf(err, "invalid integer literal %q", text)
	}
	return Float(f), nil
}

func octalFloat(sign, digits string) float64 {
	var f float64
	for _, c := range digits {
		f = f*8 + float64(c-'0')
	}
	if sign == "-" {
		return -f
	}
	return f
}

func isOctal(digits string) bool {
	for _, c := range digits {
		if c < '0' || c > '7' {
			return false
		}
	}
	return true
}

func stripUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", "")
}

func isRangeErr(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && numErr.Err == strconv.ErrRange
}
