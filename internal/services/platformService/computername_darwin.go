package platformservice

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/redjax/whoami/internal/services/platformService/capabilities"
)

// ComputerName asks SystemConfiguration for the user-facing computer name.
func (unixNative) ComputerName() (string, error) {
	if !capabilities.IsCommandAvailable("scutil") {
		return "", fmt.Errorf("%w: scutil not found in PATH", ErrNotFound)
	}

	out, err := exec.Command("scutil", "--get", "ComputerName").Output()
	if err != nil {
		return "", fmt.Errorf("scutil --get ComputerName: %w", err)
	}

	return strings.TrimRight(string(out), "\r\n"), nil
}
