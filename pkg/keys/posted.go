package keys

import "fmt"

// macOS virtual key codes and event flags.
const (
	keyCodeC       uint16 = 8
	keyCodeCommand uint16 = 55

	flagCommand uint64 = 0x00100000 // kCGEventFlagMaskCommand
)

// EventPoster posts one low-level keyboard event to the OS event stream,
// carrying exactly the given modifier flags.
type EventPoster interface {
	Post(keyCode uint16, down bool, flags uint64) error
}

// PostedTrigger builds the copy chord from raw keyboard events instead of a
// key simulation library. The modifier is expressed as an event flag on the
// "c" key-down and cleared on the key-up, so real keys the user is holding
// or pressing at the same time can't bleed into the chord.
type PostedTrigger struct {
	Poster EventPoster
}

func NewPostedTrigger(p EventPoster) *PostedTrigger {
	return &PostedTrigger{Poster: p}
}

func (t *PostedTrigger) Copy() error {
	steps := []struct {
		key   uint16
		down  bool
		flags uint64
	}{
		{keyCodeC, true, flagCommand},
		{keyCodeC, false, 0},
		// Possibly redundant, kept so Command never stays logically down.
		{keyCodeCommand, false, 0},
	}
	for _, s := range steps {
		if err := t.Poster.Post(s.key, s.down, s.flags); err != nil {
			return fmt.Errorf("post key %d (down=%t): %w", s.key, s.down, err)
		}
	}
	return nil
}
