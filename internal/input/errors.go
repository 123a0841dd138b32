package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fucaluca/torrentui/internal/input/mode"
)

// ErrModeNotFound is matched by errors from SetMode and Replace when the
// binding table has no tree for the requested mode.
var ErrModeNotFound = errors.New("key mode not found")

// ModeNotFoundError names the missing mode and the modes that exist.
type ModeNotFoundError struct {
	Requested mode.Mode
	Available []mode.Mode
}

// Error implements the error interface.
func (e *ModeNotFoundError) Error() string {
	names := make([]string, len(e.Available))
	for i, m := range e.Available {
		names[i] = m.String()
	}
	return fmt.Sprintf("key mode %s not found; available key modes: [%s]",
		e.Requested, strings.Join(names, ", "))
}

// Unwrap returns ErrModeNotFound.
func (e *ModeNotFoundError) Unwrap() error {
	return ErrModeNotFound
}
