package platformservice

import (
	"errors"
	"fmt"

	"github.com/redjax/whoami/internal/services/platformService/parsers"
)

var (
	// ErrNotFound is returned when an expected record or file does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidData is returned when a record exists but is empty or not valid text.
	ErrInvalidData = errors.New("invalid data")
	// ErrParse is returned when structured text lacks the required keys.
	ErrParse = parsers.ErrParse
)

// DeviceNameError is returned when every device name source failed.
type DeviceNameError struct {
	MachineInfo error
	Uname       error
}

func (e *DeviceNameError) Error() string {
	return fmt.Sprintf(
		"failed to obtain device name: reading from /%s failed with %q, and uname() failed with %q",
		machineInfoPath, e.MachineInfo, e.Uname,
	)
}

func (e *DeviceNameError) Unwrap() []error {
	return []error{e.MachineInfo, e.Uname}
}
