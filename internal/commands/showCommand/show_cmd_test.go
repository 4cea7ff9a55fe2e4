package showCommand

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/redjax/whoami/internal/app"
	"github.com/redjax/whoami/internal/config"
	"github.com/redjax/whoami/internal/logging"
	platformservice "github.com/redjax/whoami/internal/services/platformService"
	"github.com/redjax/whoami/internal/utils/render"
)

type stubTarget struct {
	userErr error
}

func (s stubTarget) RealName() (string, error) { return "Jane Doe", s.userErr }
func (s stubTarget) Username() (string, error) { return "jdoe", s.userErr }
func (stubTarget) DeviceName() (string, error) { return "Workstation", nil }
func (stubTarget) Hostname() (string, error)   { return "build-01", nil }
func (stubTarget) Distro() (string, error)     { return "Fedora Linux 40", nil }
func (stubTarget) Langs() []string             { return []string{"de", "de-DE"} }

func (stubTarget) DesktopEnv() platformservice.DesktopEnv {
	return platformservice.ClassifyDesktopEnv("sway")
}

func (stubTarget) Platform() platformservice.Platform {
	return platformservice.PlatformFor("linux")
}

func (stubTarget) Arch() (platformservice.Arch, error) {
	return platformservice.ClassifyArch("aarch64"), nil
}

func (stubTarget) Release() (platformservice.ReleaseInfo, error) {
	return platformservice.ParseRelease("ID=fedora\nVERSION_ID=40\n")
}

func run(t *testing.T, target platformservice.Target, format string, args ...string) (string, error) {
	t.Helper()

	a := &app.App{
		Config:  &config.Config{Root: "/", Format: format},
		Log:     logging.Discard(),
		Service: platformservice.New(platformservice.WithTarget(target)),
	}

	var out bytes.Buffer
	cmd := NewShowCmd()
	cmd.SetContext(app.WithApp(context.Background(), a))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestShowFactsText(t *testing.T) {
	out, err := run(t, stubTarget{}, config.FormatText, "facts")
	require.NoError(t, err)

	for _, want := range []string{"Device Name", "Workstation", "Unknown: sway", "ARM64", "de, de-DE"} {
		assert.Contains(t, out, want)
	}
}

func TestShowFactsYAML(t *testing.T) {
	out, err := run(t, stubTarget{userErr: platformservice.ErrNotFound}, config.FormatYAML, "facts")
	require.NoError(t, err)

	var got platformservice.Facts
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	assert.Equal(t, "build-01", got.Hostname)
	assert.Equal(t, []string{"de", "de-DE"}, got.Langs)
	assert.Empty(t, got.Username)
	assert.Contains(t, got.Errors["username"], "record not found")
}

func TestShowFactsProperty(t *testing.T) {
	out, err := run(t, stubTarget{}, config.FormatYAML, "facts", "--property", "hostname", "--property", "distro")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]string{"hostname": "build-01", "distro": "Fedora Linux 40"}, got)

	_, err = run(t, stubTarget{}, config.FormatText, "facts", "--property", "shoesize")
	assert.Error(t, err)
}

func TestShowRelease(t *testing.T) {
	out, err := run(t, stubTarget{}, config.FormatText, "release")
	require.NoError(t, err)

	assert.Contains(t, out, "RedHat")
	assert.Contains(t, out, "dnf")
}

func TestFactsDocumentRows(t *testing.T) {
	facts := &platformservice.Facts{
		Hostname: "build-01",
		Errors:   map[string]string{"username": "record not found"},
	}

	doc := factsDocument(facts, []platformservice.Fact{platformservice.FactUserName, platformservice.FactHostName})

	assert.Equal(t, []render.Row{
		{Label: "username", Err: "record not found"},
		{Label: "hostname", Value: "build-01"},
	}, doc.Rows)
}

func TestHostDocument(t *testing.T) {
	doc := hostDocument(&platformservice.HostDetails{
		KernelVersion: "6.8.0",
		Uptime:        90 * time.Minute,
		TotalRAM:      16 << 30,
		CPUCores:      8,
	})

	assert.Contains(t, doc.Rows, render.Row{Label: "kernel", Value: "6.8.0"})
	assert.Contains(t, doc.Rows, render.Row{Label: "uptime", Value: "1h30m0s"})
	assert.Contains(t, doc.Rows, render.Row{Label: "total ram", Value: "16.0 GB"})
	assert.Contains(t, doc.Rows, render.Row{Label: "virtualization", Value: "none"})
	assert.Contains(t, doc.Rows, render.Row{Label: "cpu cores", Value: "8"})
}

func TestNetDocument(t *testing.T) {
	doc := netDocument(&platformservice.NetworkInfo{
		Interfaces: []platformservice.NetworkInterface{
			{Name: "lo", IPAddresses: []string{"127.0.0.1/8"}},
			{Name: "eth0", HardwareAddress: "aa:bb:cc:dd:ee:ff"},
		},
	})

	assert.Equal(t, []render.Row{
		{Label: "lo", Value: "127.0.0.1/8"},
		{Label: "eth0", Value: "no addresses [aa:bb:cc:dd:ee:ff]"},
		{Label: "gateway", Value: "none"},
	}, doc.Rows)
}

func TestTimeDocument(t *testing.T) {
	doc := timeDocument(platformservice.TimeInfo{CurrentTime: "2024-06-01T12:00:00Z", Timezone: "UTC", TimezoneLong: "UTC"})

	assert.Contains(t, doc.Rows, render.Row{Label: "offset seconds", Value: "0"})
	assert.Equal(t, "Time", doc.Title)
}
