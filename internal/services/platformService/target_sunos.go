package platformservice

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// illumosTarget reads the device name from /etc/nodename.
type illumosTarget struct {
	unixTarget
}

func (t illumosTarget) DeviceName() (string, error) {
	data, err := t.sys.readRecord(nodeNamePath)
	if err != nil {
		return "", err
	}

	name, _, _ := strings.Cut(data, "\n")
	if name == "" {
		return "", fmt.Errorf("%w: empty /%s", ErrInvalidData, nodeNamePath)
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("%w: /%s is not valid UTF-8", ErrInvalidData, nodeNamePath)
	}

	return name, nil
}
