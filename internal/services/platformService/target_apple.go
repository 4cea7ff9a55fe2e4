package platformservice

import (
	"fmt"

	"github.com/redjax/whoami/internal/services/platformService/parsers"
)

// darwinTarget reads macOS facts: the SystemConfiguration computer name and
// the CoreServices version property lists.
type darwinTarget struct {
	unixTarget
}

func (t darwinTarget) DeviceName() (string, error) {
	name, err := t.sys.Native.ComputerName()
	if err != nil {
		return "", fmt.Errorf("computer name: %w", err)
	}

	if name == "" {
		return "", fmt.Errorf("%w: empty computer name", ErrInvalidData)
	}

	return name, nil
}

// Distro parses ServerVersion.plist, or SystemVersion.plist when the machine
// is not a server install.
func (t darwinTarget) Distro() (string, error) {
	for _, path := range []string{serverVersionPath, systemVersionPath} {
		data, err := t.sys.readRecord(path)
		if err != nil {
			continue
		}

		return parsers.ProductVersion(data)
	}

	return "", fmt.Errorf("%w: no /%s or /%s", ErrNotFound, serverVersionPath, systemVersionPath)
}

func (t darwinTarget) DesktopEnv() DesktopEnv {
	return ClassifyDesktopEnv("Aqua")
}
