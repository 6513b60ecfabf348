// Package render draws a laid out hashtags.View: as an image for previews
// and exports, and as text for terminals.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/agiangrant/hashtags"
	"github.com/agiangrant/hashtags/layout"
	"github.com/agiangrant/hashtags/measure"
)

// Image size limits to prevent memory exhaustion.
const (
	MaxImageWidth  = 4096
	MaxImageHeight = 4096
)

// Options control image rendering.
type Options struct {
	// Scale multiplies every coordinate, e.g. 2 for a retina preview.
	// Zero means 1.
	Scale float32

	// Background fills the container. Nil leaves it transparent.
	Background color.Color

	// Icon is drawn in the remove button. Nil draws an "X" glyph.
	Icon image.Image

	// Face draws the text. Nil uses a private clone of measure.DefaultFace.
	// A Face must not be shared by goroutines drawing at the same time.
	Face *measure.Face
}

// Image draws v at its preferred size.
func Image(v *hashtags.View, opts Options) (*image.RGBA, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	face := opts.Face
	if face == nil {
		face = measure.DefaultFace().Clone()
	}

	size := v.PreferredSize()
	w := int(math.Ceil(float64(size.Width * scale)))
	h := int(math.Ceil(float64(size.Height * scale)))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: nothing to draw at %dx%d", w, h)
	}
	if w > MaxImageWidth || h > MaxImageHeight {
		return nil, fmt.Errorf("render: image too large: %dx%d (max %dx%d)",
			w, h, MaxImageWidth, MaxImageHeight)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		container := layout.Rect{Width: size.Width, Height: size.Height}
		fillRoundedRect(img, scaleRect(container, scale), v.Container().CornerRadius*scale, opts.Background)
	}

	for _, chip := range v.Chips() {
		drawChip(img, chip, face, opts.Icon, scale)
	}
	return img, nil
}

func drawChip(dst draw.Image, chip *hashtags.Chip, face *measure.Face, icon image.Image, scale float32) {
	a := chip.Appearance
	fillRoundedRect(dst, scaleRect(chip.Frame, scale), a.CornerRadius*scale, a.BackgroundColor)

	ft := a.Font
	ft.Size *= scale
	drawText(dst, face, ft, a.Text, scaleRect(chip.TextFrame, scale), a.TextColor)

	if chip.Kind != hashtags.KindRemovable {
		return
	}
	remove := scaleRect(chip.RemoveFrame, scale)
	if icon != nil {
		drawIcon(dst, icon, remove)
		return
	}
	drawText(dst, face, ft, "X", remove, a.TextColor)
}

// drawText wraps text to r and draws each line centered in r, the block
// centered vertically.
func drawText(dst draw.Image, face *measure.Face, ft measure.Font, text string, r layout.Rect, c color.Color) {
	ff := face.Face(ft)
	metrics := ff.Metrics()
	lineHeight := fixedToFloat(metrics.Height)
	ascent := fixedToFloat(metrics.Ascent)

	lines := face.WrapLines(text, ft, r.Width)
	y := r.Y + (r.Height-lineHeight*float32(len(lines)))/2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: ff,
	}
	for _, line := range lines {
		x := r.X + (r.Width-line.Width)/2
		d.Dot = fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y + ascent),
		}
		d.DrawString(line.Text)
		y += lineHeight
	}
}

// drawIcon scales icon to fit r, keeping its aspect ratio.
func drawIcon(dst draw.Image, icon image.Image, r layout.Rect) {
	b := icon.Bounds()
	if b.Empty() || r.Width <= 0 || r.Height <= 0 {
		return
	}
	s := min(r.Width/float32(b.Dx()), r.Height/float32(b.Dy()))
	w, h := float32(b.Dx())*s, float32(b.Dy())*s
	x := r.X + (r.Width-w)/2
	y := r.Y + (r.Height-h)/2
	target := image.Rect(int(x), int(y), int(math.Ceil(float64(x+w))), int(math.Ceil(float64(y+h))))
	xdraw.ApproxBiLinear.Scale(dst, target, icon, b, xdraw.Over, nil)
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WritePNG draws v and saves it to path.
func WritePNG(path string, v *hashtags.View, opts Options) error {
	img, err := Image(v, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
