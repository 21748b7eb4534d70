//go:build darwin

package keys

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
)

const (
	eventSourceStateCombinedSession int32  = 0 // kCGEventSourceStateCombinedSessionState
	hidEventTap                     uint32 = 0 // kCGHIDEventTap
)

var (
	quartzOnce   sync.Once
	quartzErr    error
	quartzSource uintptr

	cgEventSourceCreate        func(int32) uintptr
	cgEventCreateKeyboardEvent func(uintptr, uint16, bool) uintptr
	cgEventSetFlags            func(uintptr, uint64)
	cgEventPost                func(uint32, uintptr)
	cfRelease                  func(uintptr)
)

func loadQuartz() error {
	quartzOnce.Do(func() {
		cg, err := purego.Dlopen("/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics", purego.RTLD_GLOBAL)
		if err != nil {
			quartzErr = fmt.Errorf("%w: load CoreGraphics: %v", ErrUnavailable, err)
			return
		}
		cf, err := purego.Dlopen("/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation", purego.RTLD_GLOBAL)
		if err != nil {
			quartzErr = fmt.Errorf("%w: load CoreFoundation: %v", ErrUnavailable, err)
			return
		}
		purego.RegisterLibFunc(&cgEventSourceCreate, cg, "CGEventSourceCreate")
		purego.RegisterLibFunc(&cgEventCreateKeyboardEvent, cg, "CGEventCreateKeyboardEvent")
		purego.RegisterLibFunc(&cgEventSetFlags, cg, "CGEventSetFlags")
		purego.RegisterLibFunc(&cgEventPost, cg, "CGEventPost")
		purego.RegisterLibFunc(&cfRelease, cf, "CFRelease")

		quartzSource = cgEventSourceCreate(eventSourceStateCombinedSession)
		if quartzSource == 0 {
			quartzErr = fmt.Errorf("%w: CGEventSourceCreate returned NULL", ErrUnavailable)
		}
	})
	return quartzErr
}

// quartzPoster implements EventPoster with CGEventPost.
type quartzPoster struct {
	source uintptr
}

func (p quartzPoster) Post(keyCode uint16, down bool, flags uint64) error {
	ev := cgEventCreateKeyboardEvent(p.source, keyCode, down)
	if ev == 0 {
		return ErrPost
	}
	defer cfRelease(ev)
	cgEventSetFlags(ev, flags)
	cgEventPost(hidEventTap, ev)
	return nil
}

// NewSystemTrigger returns a trigger that posts Quartz keyboard events.
func NewSystemTrigger() (Trigger, error) {
	if err := loadQuartz(); err != nil {
		return nil, err
	}
	return NewPostedTrigger(quartzPoster{source: quartzSource}), nil
}
