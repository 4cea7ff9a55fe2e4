package platformservice

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// HostNameMax is the number of usable bytes in a host name buffer. Buffers
// handed to the OS hold one more byte for the terminating NUL.
const HostNameMax = 255

// Environment variables the adapters read.
const (
	EnvLang           = "LANG"
	EnvDesktopSession = "DESKTOP_SESSION"
)

// Files the adapters read, relative to System.FS.
const (
	osReleasePath     = "etc/os-release"
	osReleaseLibPath  = "usr/lib/os-release"
	machineInfoPath   = "etc/machine-info"
	nodeNamePath      = "etc/nodename"
	serverVersionPath = "System/Library/CoreServices/ServerVersion.plist"
	systemVersionPath = "System/Library/CoreServices/SystemVersion.plist"
)

// Account is the effective user's record from the user database.
type Account struct {
	Username string
	// Name is the gecos "full name" field.
	Name string
}

// Utsname holds the raw, NUL padded fields returned by uname(2).
type Utsname struct {
	Nodename []byte
	Machine  []byte
}

// Native wraps the operating system calls facts are read from. Methods
// return raw buffers; decoding and validation happen in the adapters.
type Native interface {
	// CurrentUser looks up the effective user. It returns ErrNotFound when
	// the user database has no record for the effective uid.
	CurrentUser() (Account, error)
	// Hostname returns a NUL terminated buffer of at most HostNameMax+1 bytes.
	Hostname() ([]byte, error)
	Uname() (Utsname, error)
	// ComputerName returns the user-facing machine name from the platform's
	// configuration store, or errors.ErrUnsupported.
	ComputerName() (string, error)
}

// System is everything a target reads facts from.
type System struct {
	// FS is the machine root. Paths are relative, e.g. "etc/os-release".
	FS     fs.FS
	Getenv func(key string) (string, bool)
	Native Native
}

// DefaultSystem reads from the live machine, with files resolved under root.
func DefaultSystem(root string) System {
	if root == "" {
		root = "/"
	}

	return System{
		FS:     os.DirFS(root),
		Getenv: os.LookupEnv,
		Native: newNative(),
	}
}

// readRecord reads a file from the system root. A missing file is reported
// as ErrNotFound.
func (s System) readRecord(name string) (string, error) {
	data, err := fs.ReadFile(s.FS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: /%s: %w", ErrNotFound, name, err)
		}

		return "", fmt.Errorf("reading /%s: %w", name, err)
	}

	return string(data), nil
}

func (s System) env(key string) (string, bool) {
	if s.Getenv == nil {
		return "", false
	}

	return s.Getenv(key)
}

// decodeCString decodes a NUL terminated buffer of at most limit usable bytes.
// A buffer without a terminator did not fit and is rejected rather than
// truncated.
func decodeCString(buf []byte, limit int) (string, error) {
	if len(buf) > limit+1 {
		buf = buf[:limit+1]
	}

	n := bytes.IndexByte(buf, 0)
	if n < 0 {
		return "", fmt.Errorf("%w: value exceeds %d bytes", ErrInvalidData, limit)
	}

	if !utf8.Valid(buf[:n]) {
		return "", fmt.Errorf("%w: value is not valid UTF-8", ErrInvalidData)
	}

	return string(buf[:n]), nil
}

// decodeCStringLossy decodes a NUL padded buffer, replacing invalid UTF-8.
// A buffer without a terminator is used whole.
func decodeCStringLossy(buf []byte) string {
	if n := bytes.IndexByte(buf, 0); n >= 0 {
		buf = buf[:n]
	}

	return strings.ToValidUTF8(string(buf), string(utf8.RuneError))
}
