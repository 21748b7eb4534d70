package clipboard

import (
	"fmt"

	"golang.design/x/clipboard"
)

// NativeClipboard implements Clipboard using the golang.design/x/clipboard package.
type NativeClipboard struct{}

// OpenNative initializes the OS clipboard.
func OpenNative() (*NativeClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &NativeClipboard{}, nil
}

func (n *NativeClipboard) Text() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (n *NativeClipboard) SetText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (n *NativeClipboard) Image() (Image, error) {
	return ImageFromPNG(clipboard.Read(clipboard.FmtImage)), nil
}

func (n *NativeClipboard) SetImage(img Image) error {
	if img.Empty() {
		return nil
	}
	clipboard.Write(clipboard.FmtImage, img.Data)
	return nil
}

// Clear replaces the clipboard content with an empty text payload, which
// every reader here sees as "no text".
func (n *NativeClipboard) Clear() error {
	clipboard.Write(clipboard.FmtText, []byte{})
	return nil
}
