package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/agiangrant/hashtags/layout"
)

// fillRoundedRect fills r with c. Edges are anti-aliased by pixel
// coverage of the rounded box.
func fillRoundedRect(dst draw.Image, r layout.Rect, radius float32, c color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	radius = min(max(radius, 0), r.Width/2, r.Height/2)

	bounds := image.Rect(
		int(math.Floor(float64(r.X))),
		int(math.Floor(float64(r.Y))),
		int(math.Ceil(float64(r.Right()))),
		int(math.Ceil(float64(r.Bottom()))),
	).Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}

	mask := image.NewAlpha(bounds)
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	hw, hh := r.Width/2-radius, r.Height/2-radius
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := roundedBoxDistance(float32(x)+0.5-cx, float32(y)+0.5-cy, hw, hh, radius)
			coverage := min(max(0.5-d, 0), 1)
			mask.SetAlpha(x, y, color.Alpha{A: uint8(coverage * 255)})
		}
	}

	draw.DrawMask(dst, bounds, image.NewUniform(c), image.Point{}, mask, bounds.Min, draw.Over)
}

// roundedBoxDistance is the signed distance from (px, py), relative to the
// box center, to a box with half extents (hw, hh) grown by radius.
func roundedBoxDistance(px, py, hw, hh, radius float32) float32 {
	qx := abs(px) - hw
	qy := abs(py) - hh
	outside := float32(math.Hypot(float64(max(qx, 0)), float64(max(qy, 0))))
	inside := min(max(qx, qy), 0)
	return outside + inside - radius
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func scaleRect(r layout.Rect, s float32) layout.Rect {
	return layout.Rect{X: r.X * s, Y: r.Y * s, Width: r.Width * s, Height: r.Height * s}
}
