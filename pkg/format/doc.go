// Package format renders numbers as strings with configurable decimal and
// thousands separators, the way spreadsheets and invoices display them.
//
// Values are first rounded to the configured precision using the configured
// tie-break mode, then printed with exactly max(precision, 0) fractional
// digits. The integer part is grouped in threes from the right.
//
// Usage:
//
//	// Object-oriented API with default options ("1,234,567.89" style)
//	formatter := format.New(format.Defaults)
//	s := formatter.String(number.Float(1234567.891))
//	// s == "1,234,568"
//
//	// Custom options
//	formatter = format.New(format.FormatterOptions{
//		Precision:          2,
//		Mode:               round.HalfEven,
//		DecimalSeparator:   ",",
//		ThousandsSeparator: " ",
//	})
//	s = formatter.String(number.Float(1234567.885))
//	// s == "1 234 567,88"
//
//	// Functional API, one number per line
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, numbers...)
//
// Negative values that round to zero are printed without a sign.
package format
