// errors_test.go
package hostprep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	withPkg := &Error{Op: "install", Package: "ncurses", Err: errors.New("exit status 1")}
	require.Equal(t, "install ncurses: exit status 1", withPkg.Error())

	withoutPkg := &Error{Op: "verify", Err: ErrNotReady}
	require.Equal(t, "verify: host is not ready", withoutPkg.Error())
}

func TestErrorUnwrap(t *testing.T) {
	err := &Error{Op: "prepare", Err: ErrNotReady}
	require.ErrorIs(t, err, ErrNotReady)
}
