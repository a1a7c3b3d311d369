// pkg/render/primitives.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FilledRect draws an axis-aligned rectangle centered at (cx, cy).
func FilledRect(dst *ebiten.Image, cx, cy, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), c, true)
}

// FilledCircle draws a circle centered at (cx, cy).
func FilledCircle(dst *ebiten.Image, cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), c, true)
}

// Ring draws a circle outline centered at (cx, cy).
func Ring(dst *ebiten.Image, cx, cy, r, strokeWidth float64, c color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(strokeWidth), c, true)
}

// Bar draws a horizontal progress bar anchored at its top-left corner. frac
// is clamped to [0, 1]; the background fills the whole width, the fill only
// the fraction.
func Bar(dst *ebiten.Image, x, y, w, h, frac float64, back, fill color.Color) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), back, true)
	if frac > 0 {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w*frac), float32(h), fill, true)
	}
}

// Sprite draws img centered at (cx, cy), optionally mirrored horizontally.
// Mirroring flips around the sprite's own vertical axis so the visual center
// stays put.
func Sprite(dst *ebiten.Image, img *ebiten.Image, cx, cy float64, flipX bool) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	if flipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(w), 0)
	}
	op.GeoM.Translate(cx-float64(w)/2, cy-float64(h)/2)
	dst.DrawImage(img, op)
}
