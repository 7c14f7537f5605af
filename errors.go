// errors.go
package hostprep

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady indicates required tools or libraries are still missing
	// after all best-effort install steps
	ErrNotReady = errors.New("host is not ready")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
