// Package cast coerces loosely typed values into numbers.
//
// Coerce accepts strings, fmt.Stringer values, byte slices, Go numeric types,
// booleans and nil, and classifies them according to a set of behaviour flags:
//
//	res := cast.Coerce("1,234", cast.Options{Flags: cast.AllowCommaSeparator})
//	// res.Kind == cast.Numeric, res.Value() == 1.234
//
//	res = cast.Coerce("1 000 000,50", cast.Options{Flags: cast.HandleMoneyFormat})
//	// res.Value() == 1000000.5
//
//	res = cast.Coerce("-0b11111111", cast.Options{Flags: cast.HandleSpecialFormats})
//	// res.Value() == int64(-255)
//
// Classification order, first applicable rule wins:
//
//  1. text with HandleMoneyFormat is normalized by the money package
//  2. text of the form digits,digits with AllowCommaSeparator has "," read as "."
//  3. numbers are used as they are
//  4. plain numeric literals are parsed (integers stay integers)
//  5. hexadecimal and binary literals with HandleSpecialFormats
//  6. booleans with BooleanAsInt
//  7. nil with NullAsZero
//  8. everything else is returned unchanged, or as NaN with StrictMode
//
// Numeric results are then optionally rounded (Options.Precision) or rendered
// as a string with custom separators (Options.DecimalSeparator).
//
// Coerce never fails. Callers that need validation inspect Result.Kind.
package cast
