package getCommand

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redjax/whoami/internal/app"
	"github.com/redjax/whoami/internal/config"
	"github.com/redjax/whoami/internal/logging"
	platformservice "github.com/redjax/whoami/internal/services/platformService"
)

// stubTarget answers every fact with a fixed value.
type stubTarget struct {
	archErr error
}

func (stubTarget) RealName() (string, error)   { return "Jane Doe", nil }
func (stubTarget) Username() (string, error)   { return "jdoe", nil }
func (stubTarget) DeviceName() (string, error) { return "Jane's Laptop", nil }
func (stubTarget) Hostname() (string, error)   { return "build-01", nil }
func (stubTarget) Distro() (string, error)     { return "Debian GNU/Linux 12 (bookworm)", nil }
func (stubTarget) Langs() []string             { return []string{"en", "en-US"} }

func (stubTarget) DesktopEnv() platformservice.DesktopEnv {
	return platformservice.ClassifyDesktopEnv("gnome")
}

func (stubTarget) Platform() platformservice.Platform {
	return platformservice.PlatformFor("linux")
}

func (s stubTarget) Arch() (platformservice.Arch, error) {
	if s.archErr != nil {
		return platformservice.Arch{}, s.archErr
	}

	return platformservice.ClassifyArch("x86_64"), nil
}

func run(t *testing.T, target platformservice.Target, format string, args ...string) (string, error) {
	t.Helper()

	a := &app.App{
		Config:  &config.Config{Root: "/", Format: format},
		Log:     logging.Discard(),
		Service: platformservice.New(platformservice.WithTarget(target)),
	}

	var out bytes.Buffer
	cmd := NewGetCmd()
	cmd.SetContext(app.WithApp(context.Background(), a))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestGetPrintsValuesInOrder(t *testing.T) {
	out, err := run(t, stubTarget{}, config.FormatText, "username", "hostname", "langs", "arch")
	require.NoError(t, err)

	assert.Equal(t, "jdoe\nbuild-01\nen, en-US\nX86_64\n", out)
}

func TestGetJSON(t *testing.T) {
	out, err := run(t, stubTarget{}, config.FormatJSON, "desktop", "platform")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]string{"desktop": "Gnome", "platform": "Linux"}, got)
}

func TestGetUnknownFact(t *testing.T) {
	out, err := run(t, stubTarget{}, config.FormatText, "hostname", "shoesize")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestGetReportsFailedFacts(t *testing.T) {
	out, err := run(t, stubTarget{archErr: platformservice.ErrInvalidData}, config.FormatText, "arch", "username")

	assert.ErrorIs(t, err, platformservice.ErrInvalidData)
	assert.ErrorContains(t, err, "arch:")
	assert.Equal(t, "jdoe\n", out)
}

func TestGetRequiresFact(t *testing.T) {
	_, err := run(t, stubTarget{}, config.FormatText)
	assert.Error(t, err)
}
