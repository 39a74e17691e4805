package menu

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references an id
// that is not present in the store.
var ErrNotFound = errors.New("menu item not found")

// PersistenceError wraps a failure to read or write the backing medium.
// Reads degrade to an empty collection instead of returning this; writes
// surface it so a user-initiated edit is never dropped silently.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("menu persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
