//go:build unix && !darwin

package platformservice

import "errors"

func (unixNative) ComputerName() (string, error) {
	return "", errors.ErrUnsupported
}
