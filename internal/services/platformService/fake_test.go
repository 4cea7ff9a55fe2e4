package platformservice

import (
	"errors"
	"testing/fstest"
)

// fakeNative returns canned native results.
type fakeNative struct {
	account      Account
	accountErr   error
	hostname     []byte
	hostnameErr  error
	uname        Utsname
	unameErr     error
	computerName string
	computerErr  error
	release      string
	releaseErr   error

	unameCalls int
}

func (f *fakeNative) CurrentUser() (Account, error) { return f.account, f.accountErr }
func (f *fakeNative) Hostname() ([]byte, error)     { return f.hostname, f.hostnameErr }
func (f *fakeNative) ComputerName() (string, error) { return f.computerName, f.computerErr }

func (f *fakeNative) Uname() (Utsname, error) {
	f.unameCalls++
	return f.uname, f.unameErr
}

// fakeWindowsNative also answers ReleaseName, like the registry-backed native.
type fakeWindowsNative struct {
	*fakeNative
}

func (f fakeWindowsNative) ReleaseName() (string, error) { return f.release, f.releaseErr }

var errUname = errors.New("uname: operation not permitted")

// cString pads s with a NUL into a buffer of size bytes.
func cString(s string, size int) []byte {
	buf := make([]byte, size)
	copy(buf, s)
	return buf
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		account:  Account{Username: "jdoe", Name: "Jane Doe"},
		hostname: cString("build-01", HostNameMax+1),
		uname: Utsname{
			Nodename: cString("build-01", 65),
			Machine:  cString("x86_64", 65),
		},
	}
}

func newSystem(files fstest.MapFS, env map[string]string, native Native) System {
	return System{
		FS: files,
		Getenv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		Native: native,
	}
}
