package monitor

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	hook "github.com/robotn/gohook"
)

// Modifier masks for gohook
const (
	maskShift = 0x0001 | 0x0010
	maskCtrl  = 0x0002 | 0x0020
	maskMeta  = 0x0004 | 0x0040 // Cmd on macOS
	maskAlt   = 0x0008 | 0x0080 // Option on macOS
)

var modifierMasks = map[string]uint16{
	"shift":   maskShift,
	"ctrl":    maskCtrl,
	"control": maskCtrl,
	"cmd":     maskMeta,
	"command": maskMeta,
	"meta":    maskMeta,
	"super":   maskMeta,
	"alt":     maskAlt,
	"option":  maskAlt,
}

// Hotkey is a key plus the modifier groups that must be held with it.
type Hotkey struct {
	Key       uint16
	Modifiers []uint16
	name      string
}

func (h Hotkey) String() string {
	return h.name
}

// ParseHotkey parses a chord such as "ctrl+shift+x". The last element is
// the key, everything before it a modifier.
func ParseHotkey(s string) (Hotkey, error) {
	parts := strings.Split(strings.ToLower(strings.ReplaceAll(s, " ", "")), "+")
	keyName := parts[len(parts)-1]
	if keyName == "" {
		return Hotkey{}, fmt.Errorf("hotkey %q has no key", s)
	}
	code, ok := hook.Keycode[keyName]
	if !ok {
		return Hotkey{}, fmt.Errorf("hotkey %q: unknown key %q", s, keyName)
	}

	h := Hotkey{Key: code, name: s}
	for _, mod := range parts[:len(parts)-1] {
		mask, ok := modifierMasks[mod]
		if !ok {
			return Hotkey{}, fmt.Errorf("hotkey %q: unknown modifier %q", s, mod)
		}
		h.Modifiers = append(h.Modifiers, mask)
	}
	return h, nil
}

// Matches reports whether ev is a key press of h with all its modifiers held.
func (h Hotkey) Matches(ev hook.Event) bool {
	// gohook reports physical presses as KeyHold; KeyDown is the typed
	// character and carries no key code.
	if ev.Kind != hook.KeyHold || ev.Keycode != h.Key {
		return false
	}
	for _, mask := range h.Modifiers {
		if ev.Mask&mask == 0 {
			return false
		}
	}
	return true
}

// Monitor runs a capture every time its hotkey is pressed. Presses that
// arrive while a capture is running are dropped, so captures never overlap.
type Monitor struct {
	hotkey  Hotkey
	settle  time.Duration
	capture func() (string, error)
	out     io.Writer

	mu   sync.Mutex
	busy bool
	wg   sync.WaitGroup
}

func New(h Hotkey, settle time.Duration, capture func() (string, error), out io.Writer) *Monitor {
	return &Monitor{
		hotkey:  h,
		settle:  settle,
		capture: capture,
		out:     out,
	}
}

// Handle starts a capture for a matching event. It returns false when the
// event doesn't match or a capture is already running.
func (m *Monitor) Handle(ev hook.Event) bool {
	if !m.hotkey.Matches(ev) {
		return false
	}

	m.mu.Lock()
	if m.busy {
		m.mu.Unlock()
		return false
	}
	m.busy = true
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer func() {
			m.mu.Lock()
			m.busy = false
			m.mu.Unlock()
		}()

		// Let the user release the hotkey so its modifiers don't mix into the copy chord.
		time.Sleep(m.settle)

		text, err := m.capture()
		if err != nil {
			log.Printf("Capture failed: %v", err)
			return
		}
		if text == "" {
			log.Println("No selection")
			return
		}
		fmt.Fprintln(m.out, text)
	}()
	return true
}

// Wait blocks until any running capture finishes.
func (m *Monitor) Wait() {
	m.wg.Wait()
}

// Run listens for global key events until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	evChan := hook.Start()
	defer hook.End()

	log.Printf("Watching for %s", m.hotkey)
	for {
		select {
		case <-ctx.Done():
			m.Wait()
			return
		case ev, ok := <-evChan:
			if !ok {
				m.Wait()
				return
			}
			m.Handle(ev)
		}
	}
}
