//go:build unix

package platformservice

import (
	"fmt"
	"os"
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

// unixNative answers Native calls with getpwuid-style lookups and uname(2).
type unixNative struct{}

func newNative() Native {
	return unixNative{}
}

func (unixNative) CurrentUser() (Account, error) {
	uid := os.Geteuid()

	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return Account{}, accountLookupError(fmt.Sprintf("uid %d", uid), err)
	}

	return Account{Username: u.Username, Name: u.Name}, nil
}

// Hostname copies the uname node name into a HostNameMax+1 byte buffer, the
// same source gethostname(3) reads on Linux.
func (unixNative) Hostname() ([]byte, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil, err
	}

	buf := make([]byte, HostNameMax+1)
	copy(buf, uts.Nodename[:])

	return buf, nil
}

func (unixNative) Uname() (Utsname, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Utsname{}, err
	}

	return Utsname{
		Nodename: uts.Nodename[:],
		Machine:  uts.Machine[:],
	}, nil
}
