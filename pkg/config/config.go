package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/numcast/pkg/cast"
	"github.com/pseudomuto/numcast/pkg/logging"
	"github.com/pseudomuto/numcast/pkg/round"
	"gopkg.in/yaml.v3"
)

type (
	// Config represents the numcast configuration file.
	Config struct {
		// Flags lists the behaviour flags by name, e.g. handle_money_format
		Flags []string `yaml:"flags,omitempty"`

		// Precision rounds numeric results to this many fractional digits
		// Negative values round to tens, hundreds, ...
		Precision *int `yaml:"precision,omitempty"`

		// Rounding is the tie-break mode: half-up, half-down, half-even, half-odd
		Rounding round.Mode `yaml:"rounding,omitempty"`

		// DecimalSeparator switches results from numbers to formatted strings
		DecimalSeparator string `yaml:"decimal_separator,omitempty"`

		// ThousandsSeparator is placed between groups of three integer digits
		// of formatted strings
		ThousandsSeparator string `yaml:"thousands_separator,omitempty"`

		// Logging configures the CLI logger
		Logging logging.Config `yaml:"logging,omitempty"`
	}
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Rounding: round.HalfUp,
		Logging:  logging.DefaultConfig(),
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The function expects YAML-formatted data. Missing values are filled from
// Default and the flag names are validated.
//
// Example:
//
//	yamlData := `
//	flags:
//	  - handle_money_format
//	  - strict_mode
//	precision: 2
//	rounding: half-even
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	opts, _ := cfg.Options()
//	fmt.Println(opts.Flags) // handle_money_format|strict_mode
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Rounding == 0 {
		cfg.Rounding = round.HalfUp
	}
	cfg.Logging = cfg.Logging.WithDefaults()

	if _, err := cast.ParseFlags(cfg.Flags...); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Options converts the configuration into coercion options.
func (c *Config) Options() (cast.Options, error) {
	flags, err := cast.ParseFlags(c.Flags...)
	if err != nil {
		return cast.Options{}, err
	}

	return cast.Options{
		Flags:              flags,
		Precision:          c.Precision,
		Mode:               c.Rounding,
		DecimalSeparator:   c.DecimalSeparator,
		ThousandsSeparator: c.ThousandsSeparator,
	}, nil
}
