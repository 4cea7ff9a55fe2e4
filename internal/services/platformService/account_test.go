package platformservice

import (
	"errors"
	"fmt"
	"os/user"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountLookupError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantNotFound bool
	}{
		{"unknown uid", user.UnknownUserIdError(1001), true},
		{"unknown user name", user.UnknownUserError("jdoe"), true},
		{"wrapped unknown uid", fmt.Errorf("lookup: %w", user.UnknownUserIdError(1001)), true},
		{"os failure", syscall.EACCES, false},
		{"other error", errors.New("token query failed"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accountLookupError("uid 1001", tt.err)

			if tt.wantNotFound {
				assert.ErrorIs(t, got, ErrNotFound)
				assert.Contains(t, got.Error(), "uid 1001")
				return
			}

			assert.NotErrorIs(t, got, ErrNotFound)
			assert.Equal(t, tt.err, got)
		})
	}
}
