// Package selection reads the text currently selected in the focused
// application by sending it the copy chord and watching the clipboard.
//
// The clipboard and keyboard focus are shared by the whole desktop.
// Overlapping captures, from this process or any other, can corrupt each
// other; callers must run at most one capture at a time.
package selection

import (
	"log"
	"os"
	"time"

	"github.com/vibe-coding/getsel/pkg/clipboard"
	"github.com/vibe-coding/getsel/pkg/keys"
)

const (
	// DefaultTimeout bounds how long a capture waits for the copy to land.
	DefaultTimeout = 50 * time.Millisecond
	// DefaultPollInterval is the pause between clipboard reads.
	DefaultPollInterval = time.Millisecond
)

// Config tunes a single capture.
type Config struct {
	// Timeout bounds how long to poll. Nil selects DefaultTimeout; any other
	// value is used as given, so zero means a single read.
	Timeout *time.Duration
	// PollInterval is the pause between reads. Zero selects DefaultPollInterval.
	PollInterval time.Duration
	// PrintTiming logs one line with the time spent polling.
	PrintTiming bool
	// Backend picks the clipboard implementation for GetSelectionText.
	Backend clipboard.Backend
}

// TimeoutOf returns d in the form Config.Timeout expects.
func TimeoutOf(d time.Duration) *time.Duration {
	return &d
}

func (c Config) timeout() time.Duration {
	if c.Timeout == nil {
		return DefaultTimeout
	}
	return *c.Timeout
}

func (c Config) pollInterval() time.Duration {
	if c.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return c.PollInterval
}

// Clipboard interface allows mocking the system clipboard for tests.
type Clipboard interface {
	Text() (string, error)
	SetText(text string) error
	Image() (clipboard.Image, error)
	SetImage(img clipboard.Image) error
	Clear() error
}

// Capturer runs the save, clear, copy, poll, restore sequence.
type Capturer struct {
	clipboard Clipboard
	trigger   keys.Trigger
	clock     Clock
	logger    *log.Logger
}

func NewCapturer(c Clipboard, t keys.Trigger) *Capturer {
	return &Capturer{
		clipboard: c,
		trigger:   t,
		clock:     SystemClock{},
		logger:    log.New(os.Stderr, "", 0),
	}
}

// SetLogger sets where timing diagnostics are written.
func (c *Capturer) SetLogger(l *log.Logger) {
	c.logger = l
}

// snapshot is the clipboard content at the start of a capture.
type snapshot struct {
	text  string
	image clipboard.Image
}

// save reads the current clipboard. Read failures count as absent content.
func (c *Capturer) save() snapshot {
	var s snapshot
	if text, err := c.clipboard.Text(); err == nil {
		s.text = text
	}
	if img, err := c.clipboard.Image(); err == nil {
		s.image = img
	}
	return s
}

// restore writes the snapshot back, text first. An empty snapshot writes
// nothing.
func (c *Capturer) restore(s snapshot) {
	switch {
	case s.text != "":
		_ = c.clipboard.SetText(s.text)
	case !s.image.Empty():
		_ = c.clipboard.SetImage(s.image)
	}
}

// poll reads the clipboard until it holds text or the timeout elapses.
func (c *Capturer) poll(cfg Config) (string, time.Duration) {
	timeout, interval := cfg.timeout(), cfg.pollInterval()
	start := c.clock.Now()
	for {
		text, err := c.clipboard.Text()
		elapsed := c.clock.Now().Sub(start)
		if err == nil && text != "" {
			return text, elapsed
		}
		if elapsed >= timeout {
			return "", elapsed
		}
		c.clock.Sleep(interval)
	}
}

// Capture returns the selected text, or "" when nothing was copied before
// the timeout. The clipboard is returned to its previous text or image.
// Only a failed copy trigger is reported as an error.
func (c *Capturer) Capture(cfg Config) (string, error) {
	saved := c.save()

	// Clear so polling can tell a fresh copy from stale content.
	_ = c.clipboard.Clear()

	if err := c.trigger.Copy(); err != nil {
		c.restore(saved)
		return "", err
	}

	text, elapsed := c.poll(cfg)
	if cfg.PrintTiming {
		if text != "" {
			c.logger.Printf("selection: copied after %d ms", elapsed.Milliseconds())
		} else {
			c.logger.Printf("selection: nothing copied after %d ms", elapsed.Milliseconds())
		}
	}

	c.restore(saved)
	return text, nil
}

// Replaced in tests to simulate hosts without clipboard or input access.
var (
	openClipboard = clipboard.Open
	newTrigger    = keys.NewSystemTrigger
)

// GetSelectionText opens the system clipboard and copy trigger and runs one
// capture. Failing to open either is returned as an error.
func GetSelectionText(cfg Config) (string, error) {
	cb, err := openClipboard(cfg.Backend)
	if err != nil {
		return "", err
	}
	tr, err := newTrigger()
	if err != nil {
		return "", err
	}
	return NewCapturer(cb, tr).Capture(cfg)
}
