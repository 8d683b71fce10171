package config

import (
	"os"

	"github.com/pseudomuto/numcast/pkg/consts"
	"github.com/pseudomuto/numcast/pkg/logging"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the file named by NUMCAST_CONFIG, or numcast.yaml when present.
	// Without either the defaults are used so numcast works without setup.
	func() (*Config, error) {
		path := os.Getenv(consts.ConfigEnvVar)
		if path == "" {
			path = consts.DefaultConfigFile
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return Default(), nil
			}
		}

		return LoadConfigFile(path)
	},
	func(c *Config) logging.Config {
		return c.Logging
	},
))
