// Package keys sends the platform "copy" chord to whichever application
// currently has keyboard focus.
package keys

import "errors"

var (
	// ErrUnavailable is returned when no input-injection handle can be obtained.
	ErrUnavailable = errors.New("input injection unavailable")
	// ErrPost is returned when a synthetic event could not be posted.
	ErrPost = errors.New("failed to post input event")
)

// Trigger asks the focused application to copy its selection. The copied
// payload reaches the clipboard asynchronously.
type Trigger interface {
	Copy() error
}

// Copy sends the copy chord using the platform's trigger. It is meant for
// callers that do their own clipboard save and restore.
func Copy() error {
	t, err := NewSystemTrigger()
	if err != nil {
		return err
	}
	return t.Copy()
}
