//go:build !unix && !windows

package platformservice

import (
	"errors"
	"os"
	"runtime"
)

// otherNative covers targets without a user database or uname(2), e.g. wasm and plan9.
type otherNative struct{}

func newNative() Native {
	return otherNative{}
}

func (otherNative) CurrentUser() (Account, error) {
	return Account{}, errors.ErrUnsupported
}

func (otherNative) Hostname() ([]byte, error) {
	name, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, HostNameMax+1)
	copy(buf, name)

	return buf, nil
}

func (n otherNative) Uname() (Utsname, error) {
	node, err := n.Hostname()
	if err != nil {
		return Utsname{}, err
	}

	return Utsname{Nodename: node, Machine: []byte(runtime.GOARCH)}, nil
}

func (otherNative) ComputerName() (string, error) {
	return "", errors.ErrUnsupported
}
