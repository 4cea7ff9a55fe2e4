package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
	fs.String("root", "/", "")
	fs.String("format", FormatText, "")
	fs.BoolP("debug", "D", false, "")

	return fs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlagSet(), "")
	require.NoError(t, err)

	assert.Equal(t, "/", cfg.Root)
	assert.Equal(t, FormatText, cfg.Format)
	assert.False(t, cfg.Debug)
}

func TestLoadPrecedence(t *testing.T) {
	file := writeFile(t, "whoami.yaml", "format: yaml\nroot: /mnt/host\ndebug: true\n")
	t.Setenv("WHOAMI_FORMAT", "json")

	fs := newFlagSet()
	cfg, err := Load(fs, file)
	require.NoError(t, err)

	// env beats file, file beats untouched flags
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "/mnt/host", cfg.Root)
	assert.True(t, cfg.Debug)

	require.NoError(t, fs.Parse([]string{"--format", "text", "--root", "/srv"}))
	cfg, err = Load(fs, file)
	require.NoError(t, err)

	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "/srv", cfg.Root)
}

func TestLoadFileFormats(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"whoami.json", `{"format": "yaml"}`},
		{"whoami.toml", "format = \"yaml\"\n"},
		{"whoami.yml", "format: yml\n"},
		{"whoami.env", "format=yaml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(nil, writeFile(t, tt.name, tt.content))
			require.NoError(t, err)
			assert.Equal(t, FormatYAML, cfg.Format)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(nil, writeFile(t, "whoami.ini", "format=json"))
	assert.ErrorContains(t, err, "unsupported config file format")

	_, err = Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "loading config file")

	t.Setenv("WHOAMI_FORMAT", "xml")
	_, err = Load(nil, "")
	assert.ErrorContains(t, err, "unknown output format")
}
