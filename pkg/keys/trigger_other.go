//go:build !darwin

package keys

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-vgo/robotgo"
)

// robotKeyboard implements Keyboard using robotgo.
type robotKeyboard struct{}

func (robotKeyboard) Press(key string) error {
	return robotgo.KeyToggle(key, "down")
}

func (robotKeyboard) Tap(key string) error {
	return robotgo.KeyTap(key)
}

func (robotKeyboard) Release(key string) error {
	return robotgo.KeyToggle(key, "up")
}

// NewSystemTrigger returns the generic key simulation trigger.
func NewSystemTrigger() (Trigger, error) {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return nil, fmt.Errorf("%w: no graphical session", ErrUnavailable)
	}
	return NewKeyedTrigger(robotKeyboard{}), nil
}
