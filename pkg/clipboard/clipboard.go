// Package clipboard adapts the system clipboard to the small set of
// operations a selection capture needs: read and write plain text, read and
// write a single raster image, and clear.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"strings"
)

// ErrUnavailable is returned when no handle to the system clipboard can be
// obtained (headless session, missing helper tools, denied permissions).
var ErrUnavailable = errors.New("clipboard unavailable")

// Image is a raster image held on the clipboard. Data is PNG encoded.
type Image struct {
	Width  int
	Height int
	Data   []byte
}

// Empty reports whether the image is the zero-dimension placeholder.
func (i Image) Empty() bool {
	return i.Width <= 0
}

// ImageFromPNG builds an Image from PNG bytes, reading only the header for
// its dimensions. Unreadable data yields the empty placeholder.
func ImageFromPNG(data []byte) Image {
	if len(data) == 0 {
		return Image{}
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}
	}
	return Image{Width: cfg.Width, Height: cfg.Height, Data: data}
}

// Backend names a clipboard implementation.
type Backend string

const (
	// BackendAuto leaves the choice to the caller; Open treats it as native.
	BackendAuto Backend = ""
	// BackendNative talks to the OS clipboard directly and supports images.
	BackendNative Backend = "native"
	// BackendText shells out to the platform clipboard tools, text only.
	BackendText Backend = "text"
)

// ParseBackend accepts a backend name, case-insensitively. An empty name
// yields BackendAuto.
func ParseBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case BackendAuto:
		return BackendAuto, nil
	case BackendNative:
		return BackendNative, nil
	case BackendText:
		return BackendText, nil
	}
	return "", fmt.Errorf("unknown clipboard backend %q", name)
}

// Open returns a handle to the system clipboard using the given backend.
func Open(b Backend) (Clipboard, error) {
	switch b {
	case BackendAuto, BackendNative:
		n, err := OpenNative()
		if err != nil {
			return nil, err
		}
		return n, nil
	case BackendText:
		t, err := OpenText()
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("unknown clipboard backend %q", b)
}

// Clipboard is the capability every backend provides.
type Clipboard interface {
	Text() (string, error)
	SetText(text string) error
	Image() (Image, error)
	SetImage(img Image) error
	Clear() error
}
