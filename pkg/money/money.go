// Package money normalizes grouped ("money" style) numeric strings into plain
// numeric strings.
//
// Two grammars are recognized, in this order:
//
//	1 000 000,00007  ->  1000000.00007   (space grouped, "." or "," fraction)
//	1,000,000.00007  ->  1000000.00007   (comma grouped, "." fraction)
//
// The whole (trimmed) string must match. Grouped numbers embedded in other
// text are left alone. A single comma group such as "1,234" is always read as
// the grouped integer 1234, never as the decimal fraction 1.234.
package money

import (
	"regexp"
	"strings"

	"github.com/pseudomuto/numcast/pkg/number"
)

var (
	spaceGrouped = regexp.MustCompile(`^(?P<integer>\d{1,3}(?: \d{3})+)(?:[.,](?P<fraction>\d+))?$`)
	commaGrouped = regexp.MustCompile(`^(?P<integer>\d{1,3}(?:,\d{3})+)(?:\.(?P<fraction>\d+))?$`)
)

// Parse normalizes a grouped number. When text matches neither grammar it is
// returned unchanged with matched set to false.
func Parse(text string) (normalized string, matched bool) {
	if !strings.ContainsAny(text, " ,") {
		return text, false
	}

	trimmed := strings.TrimSpace(text)
	if m := spaceGrouped.FindStringSubmatch(trimmed); m != nil {
		return join(
			strings.ReplaceAll(m[spaceGrouped.SubexpIndex("integer")], " ", ""),
			m[spaceGrouped.SubexpIndex("fraction")],
		), true
	}

	if m := commaGrouped.FindStringSubmatch(trimmed); m != nil {
		return join(
			strings.ReplaceAll(m[commaGrouped.SubexpIndex("integer")], ",", ""),
			m[commaGrouped.SubexpIndex("fraction")],
		), true
	}

	return text, false
}

// ParseNumber normalizes a grouped number and converts it. Results without a
// fractional part are integers.
func ParseNumber(text string) (number.Number, bool) {
	normalized, ok := Parse(text)
	if !ok {
		return number.Number{}, false
	}

	n, err := number.Parse(normalized)
	if err != nil {
		return number.Number{}, false
	}
	return n, true
}

func join(integer, fraction string) string {
	if fraction == "" {
		return integer
	}
	return integer + "." + fraction
}
