package consts

import "os"

const (
	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the config file looked up in the working directory
	DefaultConfigFile = "numcast.yaml"

	// ConfigEnvVar names the environment variable overriding DefaultConfigFile
	ConfigEnvVar = "NUMCAST_CONFIG"

	// DefaultLogLevel is used when the config does not set one
	DefaultLogLevel = "info"

	// DefaultLogFormat is used when the config does not set one
	DefaultLogFormat = "console"

	// DefaultLogOutput is used when the config does not set one
	DefaultLogOutput = "stderr"
)
