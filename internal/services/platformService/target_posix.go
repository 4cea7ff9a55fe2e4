package platformservice

import (
	"errors"
	"fmt"

	"github.com/redjax/whoami/internal/services/platformService/locale"
	"github.com/redjax/whoami/internal/services/platformService/parsers"
)

const (
	keyPrettyHostname = "PRETTY_HOSTNAME"
	keyPrettyName     = "PRETTY_NAME"
	keyName           = "NAME"
)

// unixTarget reads facts the way Linux and the BSDs expose them: the user
// database, uname(2), /etc/machine-info and /etc/os-release.
type unixTarget struct {
	sys      System
	platform Platform
}

func (t unixTarget) account() (Account, error) {
	acct, err := t.sys.Native.CurrentUser()
	if err != nil {
		return Account{}, fmt.Errorf("looking up effective user: %w", err)
	}

	return acct, nil
}

func (t unixTarget) RealName() (string, error) {
	acct, err := t.account()
	if err != nil {
		return "", err
	}

	return acct.Name, nil
}

func (t unixTarget) Username() (string, error) {
	acct, err := t.account()
	if err != nil {
		return "", err
	}

	return acct.Username, nil
}

func (t unixTarget) Hostname() (string, error) {
	buf, err := t.sys.Native.Hostname()
	if err != nil {
		return "", fmt.Errorf("gethostname: %w", err)
	}

	name, err := decodeCString(buf, HostNameMax)
	if err != nil {
		return "", fmt.Errorf("hostname: %w", err)
	}

	return name, nil
}

// DeviceName prefers PRETTY_HOSTNAME from /etc/machine-info and falls back
// to the uname node name.
func (t unixTarget) DeviceName() (string, error) {
	name, miErr := t.prettyHostname()
	if miErr == nil {
		return name, nil
	}

	name, unameErr := t.nodeName()
	if unameErr == nil {
		return name, nil
	}

	return "", &DeviceNameError{MachineInfo: miErr, Uname: unameErr}
}

func (t unixTarget) prettyHostname() (string, error) {
	data, err := t.sys.readRecord(machineInfoPath)
	if err != nil {
		return "", err
	}

	name, err := parsers.Field(data, keyPrettyHostname, "")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	if name == "" {
		return "", fmt.Errorf("%w: empty %s record", ErrNotFound, keyPrettyHostname)
	}

	return name, nil
}

func (t unixTarget) nodeName() (string, error) {
	uts, err := t.sys.Native.Uname()
	if err != nil {
		return "", err
	}

	return decodeCString(uts.Nodename, HostNameMax)
}

// Distro reads PRETTY_NAME, or NAME, from os-release.
func (t unixTarget) Distro() (string, error) {
	data, err := t.sys.readRecord(osReleasePath)
	if errors.Is(err, ErrNotFound) {
		if lib, libErr := t.sys.readRecord(osReleaseLibPath); libErr == nil {
			data, err = lib, nil
		}
	}
	if err != nil {
		return "", err
	}

	return parsers.Field(data, keyPrettyName, keyName)
}

func (t unixTarget) DesktopEnv() DesktopEnv {
	return desktopFromEnv(t.sys.env(EnvDesktopSession))
}

func (t unixTarget) Platform() Platform {
	return t.platform
}

func (t unixTarget) Arch() (Arch, error) {
	uts, err := t.sys.Native.Uname()
	if err != nil {
		return Arch{}, fmt.Errorf("uname: %w", err)
	}

	return ClassifyArch(decodeCStringLossy(uts.Machine)), nil
}

func (t unixTarget) Langs() []string {
	lang, _ := t.sys.env(EnvLang)

	return locale.Langs(lang)
}
