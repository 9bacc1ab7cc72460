// Package viewport implements the zoom and pan state of an image inspector
// and turns pointer and wheel input into new state.
//
// Zoom moves in fixed steps inside [MinZoom, MaxZoom]. Pan is expressed in
// screen units and is applied after zooming about the image centre, so a
// drag of one unit moves the image by one unit at every zoom level.
package viewport

import "math"

const (
	MinZoom  = 0.5
	MaxZoom  = 4.0
	ZoomStep = 0.5
	FitZoom  = 1.0
)

// Point is a position in screen units.
type Point struct {
	X, Y float64
}

// State is a snapshot of a viewport.
type State struct {
	Zoom     float64
	Pan      Point
	Dragging bool
}

// Viewport is owned by a single open viewer. The zero value is not ready;
// use New.
type Viewport struct {
	zoom float64
	pan  Point

	dragging bool
	anchor   Point
}

func New() *Viewport {
	return &Viewport{zoom: FitZoom}
}

func (v *Viewport) Zoom() float64 { return v.zoom }
func (v *Viewport) Pan() Point    { return v.pan }

// Dragging reports whether a drag is in progress.
func (v *Viewport) Dragging() bool { return v.dragging }

func (v *Viewport) State() State {
	return State{Zoom: v.zoom, Pan: v.pan, Dragging: v.dragging}
}

// Percent is the zoom level as shown to users (100 at fit).
func (v *Viewport) Percent() int {
	return int(math.Round(v.zoom * 100))
}

func (v *Viewport) CanZoomIn() bool  { return v.zoom < MaxZoom }
func (v *Viewport) CanZoomOut() bool { return v.zoom > MinZoom }

// Pannable reports whether the image is zoomed past fit and can be dragged.
func (v *Viewport) Pannable() bool { return v.zoom > FitZoom }

func (v *Viewport) ZoomIn() {
	v.zoom = math.Min(v.zoom+ZoomStep, MaxZoom)
}

// ZoomOut steps the zoom down. Reaching fit or below drops the pan and any
// drag, since the image has no pan range there.
func (v *Viewport) ZoomOut() {
	v.zoom = math.Max(v.zoom-ZoomStep, MinZoom)
	if !v.Pannable() {
		v.pan = Point{}
		v.dragging = false
	}
}

// OnWheel zooms in for negative deltaY (wheel up) and out otherwise. The
// caller owns the event and must not let it scroll anything else.
func (v *Viewport) OnWheel(deltaY float64) {
	if deltaY < 0 {
		v.ZoomIn()
		return
	}
	v.ZoomOut()
}

// Reset returns to fit: zoom 1 and no pan. Any drag is dropped.
func (v *Viewport) Reset() {
	v.zoom = FitZoom
	v.pan = Point{}
	v.dragging = false
	v.anchor = Point{}
}

// BeginDrag starts a drag at the pointer position. It does nothing at or
// below fit zoom.
func (v *Viewport) BeginDrag(x, y float64) {
	if !v.Pannable() {
		return
	}
	v.anchor = Point{X: x - v.pan.X, Y: y - v.pan.Y}
	v.dragging = true
}

// OnDrag moves the image so the point grabbed at BeginDrag stays under the
// pointer. Repeating the same coordinates yields the same pan.
func (v *Viewport) OnDrag(x, y float64) {
	if !v.dragging || !v.Pannable() {
		return
	}
	v.pan = Point{X: x - v.anchor.X, Y: y - v.anchor.Y}
}

// EndDrag stops dragging. Call it on button release and when the pointer
// leaves the viewer.
func (v *Viewport) EndDrag() {
	v.dragging = false
}
