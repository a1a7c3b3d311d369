// pkg/geom/rect.go
package geom

import "math"

// Rect is an axis-aligned rectangle identified by its center point and size.
type Rect struct {
	CX, CY float64
	W, H   float64
}

// RectAt builds a square Rect of the given size centered at (cx, cy).
func RectAt(cx, cy, size float64) Rect {
	return Rect{CX: cx, CY: cy, W: size, H: size}
}

// Overlaps reports whether r and o intersect. Rectangles that only share an
// edge or a corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return math.Abs(r.CX-o.CX)*2 < r.W+o.W && math.Abs(r.CY-o.CY)*2 < r.H+o.H
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return math.Abs(x-r.CX)*2 <= r.W && math.Abs(y-r.CY)*2 <= r.H
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.CX - r.W/2 }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.CY - r.H/2 }
