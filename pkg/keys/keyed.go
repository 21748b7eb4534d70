package keys

import "fmt"

// Keyboard is a generic key simulation capability. Key names follow robotgo
// conventions ("ctrl", "cmd", "c").
type Keyboard interface {
	Press(key string) error
	Tap(key string) error
	Release(key string) error
}

// KeyedTrigger holds Modifier, taps "c", then releases Modifier.
type KeyedTrigger struct {
	Keyboard Keyboard
	Modifier string
}

func NewKeyedTrigger(kb Keyboard) *KeyedTrigger {
	return &KeyedTrigger{Keyboard: kb, Modifier: Modifier}
}

func (t *KeyedTrigger) Copy() error {
	mod := t.Modifier
	if mod == "" {
		mod = Modifier
	}
	if err := t.Keyboard.Press(mod); err != nil {
		return fmt.Errorf("%w: press %s: %v", ErrPost, mod, err)
	}
	if err := t.Keyboard.Tap("c"); err != nil {
		// Don't leave the modifier stuck down.
		_ = t.Keyboard.Release(mod)
		return fmt.Errorf("%w: tap c: %v", ErrPost, err)
	}
	if err := t.Keyboard.Release(mod); err != nil {
		return fmt.Errorf("%w: release %s: %v", ErrPost, mod, err)
	}
	return nil
}
