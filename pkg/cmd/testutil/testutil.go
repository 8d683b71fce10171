package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/numcast/pkg/config"
	"github.com/pseudomuto/numcast/pkg/consts"
	"github.com/stretchr/testify/require"
)

// WriteConfig writes content as numcast.yaml into a temp dir and returns its
// path.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), consts.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile), "Failed to write config file")
	return path
}

// LoadConfig writes content as numcast.yaml and loads it.
func LoadConfig(t *testing.T, content string) *config.Config {
	t.Helper()

	cfg, err := config.LoadConfigFile(WriteConfig(t, content))
	require.NoError(t, err, "Failed to load config file")
	return cfg
}

// WriteDocument writes a document to convert into a temp dir and returns its
// path.
func WriteDocument(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile), "Failed to write document")
	return path
}
