package platformservice

import (
	"errors"
	"fmt"
	"os/user"
)

// accountLookupError maps a user database failure for who (a uid or user
// name) to ErrNotFound when no record exists. Other OS failures are returned
// unchanged.
func accountLookupError(who string, err error) error {
	var (
		unknownID   user.UnknownUserIdError
		unknownName user.UnknownUserError
	)

	if errors.As(err, &unknownID) || errors.As(err, &unknownName) {
		return fmt.Errorf("%w: no user record for %s", ErrNotFound, who)
	}

	return err
}
