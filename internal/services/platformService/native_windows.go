package platformservice

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

type windowsNative struct{}

func newNative() Native {
	return windowsNative{}
}

func (windowsNative) CurrentUser() (Account, error) {
	u, err := user.Current()
	if err != nil {
		return Account{}, accountLookupError("the current user", err)
	}

	// Username is DOMAIN\user
	name := u.Username
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}

	return Account{Username: name, Name: u.Name}, nil
}

// computerName reads one of the GetComputerNameEx name formats into a fixed
// UTF-16 buffer.
func computerName(format uint32) (string, error) {
	buf := make([]uint16, HostNameMax+1)
	n := uint32(len(buf))

	if err := windows.GetComputerNameEx(format, &buf[0], &n); err != nil {
		return "", err
	}

	return windows.UTF16ToString(buf[:n]), nil
}

func (windowsNative) Hostname() ([]byte, error) {
	name, err := computerName(windows.ComputerNameDnsHostname)
	if err != nil {
		return nil, err
	}

	if len(name) > HostNameMax {
		return nil, fmt.Errorf("%w: host name exceeds %d bytes", ErrInvalidData, HostNameMax)
	}

	buf := make([]byte, HostNameMax+1)
	copy(buf, name)

	return buf, nil
}

func (windowsNative) Uname() (Utsname, error) {
	node, err := computerName(windows.ComputerNamePhysicalDnsHostname)
	if err != nil {
		return Utsname{}, err
	}

	// A 32-bit process on a 64-bit OS sees the native arch in PROCESSOR_ARCHITEW6432
	machine := os.Getenv("PROCESSOR_ARCHITEW6432")
	if machine == "" {
		machine = os.Getenv("PROCESSOR_ARCHITECTURE")
	}

	return Utsname{
		Nodename: append([]byte(node), 0),
		Machine:  []byte(strings.ToLower(machine)),
	}, nil
}

func (windowsNative) ComputerName() (string, error) {
	return computerName(windows.ComputerNamePhysicalDnsHostname)
}

// ReleaseName reads the product name, e.g. "Windows 10 Pro", from the registry.
func (windowsNative) ReleaseName() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("opening HKLM\\%s: %w", currentVersionKey, err)
	}
	defer k.Close()

	name, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return "", fmt.Errorf("reading ProductName: %w", err)
	}

	return name, nil
}
