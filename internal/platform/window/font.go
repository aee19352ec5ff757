package window

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ErrFont is returned when the banner font cannot be loaded.
var ErrFont = errors.New("font unavailable")

// LoadFont reads a TrueType/OpenType file and returns a face of the given size.
func LoadFont(path string, size float64) (*text.GoTextFace, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- font path comes from config
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFont, err)
	}
	return ParseFont(data, size)
}

// ParseFont builds a face from raw font data.
func ParseFont(data []byte, size float64) (*text.GoTextFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %v", ErrFont, size)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFont, err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}
