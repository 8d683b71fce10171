// Package number provides the numeric value type shared by the coercion
// packages together with the literal grammars used to read numbers from text.
//
// A Number carries either an int64 or a float64 and remembers which one it is,
// so callers can distinguish 3 from 3.0 after parsing:
//
//	n, err := number.Parse("1_234")
//	// n.IsInt() == true, n.Int64() == 1234
//
//	n, err = number.Parse("-1.2e3")
//	// n.IsInt() == false, n.Float64() == -1200
//
// The plain literal grammar is implemented with a participle lexer and accepts:
//   - optional surrounding whitespace
//   - an optional sign
//   - digits, optionally separated by single underscores
//   - an optional fractional part, including the ".42" and "23." forms
//   - an optional exponent
//
// Integral literals with a leading zero and only octal digits are read in base
// 8, so "0123" is 83. Base-prefixed hexadecimal and binary integers ("0x1a",
// "-0b101") are not plain literals; they are handled separately by ParseBased.
package number
