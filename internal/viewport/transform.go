package viewport

import "fmt"

// Transform is the rendering contract of a viewport: scale by Scale about
// the image centre, then translate by (TranslateX, TranslateY) measured in
// pre-scale units.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Transform returns the current rendering transform.
func (v *Viewport) Transform() Transform {
	return Transform{
		Scale:      v.zoom,
		TranslateX: v.pan.X / v.zoom,
		TranslateY: v.pan.Y / v.zoom,
	}
}

// Apply maps an image point to the screen, for an image centred on c.
func (t Transform) Apply(p, c Point) Point {
	return Point{
		X: c.X + t.Scale*(p.X+t.TranslateX-c.X),
		Y: c.Y + t.Scale*(p.Y+t.TranslateY-c.Y),
	}
}

// Invert maps a screen point back to the image point drawn there.
func (t Transform) Invert(s, c Point) Point {
	return Point{
		X: c.X + (s.X-c.X)/t.Scale - t.TranslateX,
		Y: c.Y + (s.Y-c.Y)/t.Scale - t.TranslateY,
	}
}

// Scaled returns the transform expressed in a finer grid, e.g. braille
// micro-pixels that are sx by sy per screen cell.
func (t Transform) Scaled(sx, sy float64) Transform {
	return Transform{Scale: t.Scale, TranslateX: t.TranslateX * sx, TranslateY: t.TranslateY * sy}
}

// String renders the transform in CSS notation.
func (t Transform) String() string {
	return fmt.Sprintf("scale(%g) translate(%gpx, %gpx)", t.Scale, t.TranslateX, t.TranslateY)
}
