package clipboard

import (
	"github.com/atotto/clipboard"
)

// TextClipboard implements Clipboard using the atotto/clipboard package.
// It only knows about plain text: images always read as empty.
type TextClipboard struct{}

// OpenText checks that a clipboard tool is installed.
func OpenText() (*TextClipboard, error) {
	if clipboard.Unsupported {
		return nil, ErrUnavailable
	}
	return &TextClipboard{}, nil
}

func (t *TextClipboard) Text() (string, error) {
	return clipboard.ReadAll()
}

func (t *TextClipboard) SetText(text string) error {
	return clipboard.WriteAll(text)
}

func (t *TextClipboard) Image() (Image, error) {
	return Image{}, nil
}

func (t *TextClipboard) SetImage(Image) error {
	return nil
}

func (t *TextClipboard) Clear() error {
	return clipboard.WriteAll("")
}
