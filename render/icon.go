package render

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	"github.com/agiangrant/hashtags/internal/debug"
)

// MaxIconSize bounds remove icons in pixels per side.
const MaxIconSize = 512

// LoadIcon loads the remove button icon. A missing, undecodable or
// oversized file yields nil, and chips draw an "X" glyph instead.
func LoadIcon(path string) image.Image {
	if path == "" {
		return nil
	}
	img, err := loadImage(path)
	if err != nil {
		debug.Logf("render: remove icon unavailable, using glyph: %v", err)
		return nil
	}
	return img
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if b := img.Bounds(); b.Dx() > MaxIconSize || b.Dy() > MaxIconSize {
		return nil, fmt.Errorf("icon too large: %dx%d (max %dx%d)",
			b.Dx(), b.Dy(), MaxIconSize, MaxIconSize)
	}
	return img, nil
}
