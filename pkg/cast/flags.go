package cast

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Flag is a set of behaviour switches for Coerce. Flags are combined with |.
type Flag uint

const (
	// AllowCommaSeparator reads a bare "digits,digits" string as a decimal
	// fraction.
	AllowCommaSeparator Flag = 64
	// HandleMoneyFormat normalizes space or comma grouped thousands.
	HandleMoneyFormat Flag = 128
	// HandleSpecialFormats parses signed hexadecimal and binary literals.
	HandleSpecialFormats Flag = 256
	// BooleanAsInt converts true and false to 1 and 0.
	BooleanAsInt Flag = 512
	// NullAsZero converts nil to 0.
	NullAsZero Flag = 1024
	// StrictMode turns unconvertible values into NaN instead of returning
	// them unchanged.
	StrictMode Flag = 2048
	// DisallowRecursive stops container traversal from descending into
	// nested containers.
	DisallowRecursive Flag = 4096
)

var flagNames = map[Flag]string{
	AllowCommaSeparator:  "allow_comma_separator",
	HandleMoneyFormat:    "handle_money_format",
	HandleSpecialFormats: "handle_special_formats",
	BooleanAsInt:         "boolean_as_int",
	NullAsZero:           "null_as_zero",
	StrictMode:           "strict_mode",
	DisallowRecursive:    "disallow_recursive",
}

// Has reports whether every flag in other is set.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// Names returns the names of the set flags in ascending bit order.
func (f Flag) Names() []string {
	flags := make([]Flag, 0, len(flagNames))
	for flag := range flagNames {
		if f.Has(flag) {
			flags = append(flags, flag)
		}
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i] < flags[j] })

	names := make([]string, len(flags))
	for i, flag := range flags {
		names[i] = flagNames[flag]
	}
	return names
}

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}

// ParseFlag returns the flag for a name such as "strict_mode". Matching is
// case insensitive and accepts "-" in place of "_".
func ParseFlag(name string) (Flag, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for flag, flagName := range flagNames {
		if key == flagName {
			return flag, nil
		}
	}
	return 0, errors.Errorf("unknown flag: %s", name)
}

// ParseFlags combines several flag names.
func ParseFlags(names ...string) (Flag, error) {
	var flags Flag
	for _, name := range names {
		flag, err := ParseFlag(name)
		if err != nil {
			return 0, err
		}
		flags |= flag
	}
	return flags, nil
}
