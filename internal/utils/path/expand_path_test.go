package path

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/whoami.yaml", filepath.Join(home, "whoami.yaml")},
		{"/etc/whoami.yaml", "/etc/whoami.yaml"},
		{"/", "/"},
		{"relative/file.toml", "relative/file.toml"},
		{"~other/file", "~other/file"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ExpandPath("")
	assert.Error(t, err)
}
