package platformservice

import (
	"errors"
	"fmt"
)

// releaseNamer is implemented by natives that keep the OS product name in a
// configuration store instead of a release file.
type releaseNamer interface {
	ReleaseName() (string, error)
}

// windowsTarget reads the device name from the computer name store and the
// product name from the registry.
type windowsTarget struct {
	unixTarget
}

func (t windowsTarget) DeviceName() (string, error) {
	name, err := t.sys.Native.ComputerName()
	if err != nil {
		return "", fmt.Errorf("computer name: %w", err)
	}

	if name == "" {
		return "", fmt.Errorf("%w: empty computer name", ErrInvalidData)
	}

	return name, nil
}

func (t windowsTarget) Distro() (string, error) {
	rn, ok := t.sys.Native.(releaseNamer)
	if !ok {
		return "", fmt.Errorf("%w: %w", ErrNotFound, errors.ErrUnsupported)
	}

	name, err := rn.ReleaseName()
	if err != nil {
		return "", err
	}

	if name == "" {
		return "", fmt.Errorf("%w: empty product name", ErrInvalidData)
	}

	return name, nil
}

func (t windowsTarget) DesktopEnv() DesktopEnv {
	return ClassifyDesktopEnv("Windows")
}
