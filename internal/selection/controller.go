// Package selection drives which lot is being looked at and which image
// viewer is open on top of it.
package selection

import (
	"errors"
	"fmt"

	"thaqu/internal/catalog"
	"thaqu/internal/contact"
	"thaqu/internal/viewport"
)

var (
	ErrNoLotSelected  = errors.New("selection: no lot selected")
	ErrLotUnavailable = errors.New("selection: lot is not available")
)

// ViewerKind identifies an image viewer.
type ViewerKind int

const (
	ViewerNone ViewerKind = iota
	ViewerPlan
	ViewerSatellite
)

func (k ViewerKind) String() string {
	switch k {
	case ViewerNone:
		return "none"
	case ViewerPlan:
		return "plan"
	case ViewerSatellite:
		return "satellite"
	default:
		return fmt.Sprintf("viewer(%d)", int(k))
	}
}

// Active names the topmost thing on screen.
type Active int

const (
	ActiveNone Active = iota
	ActiveLotDetail
	ActiveImagePlan
	ActiveImageSatellite
)

func (a Active) String() string {
	switch a {
	case ActiveNone:
		return "none"
	case ActiveLotDetail:
		return "lotDetail"
	case ActiveImagePlan:
		return "imagePlan"
	case ActiveImageSatellite:
		return "imageSatellite"
	default:
		return fmt.Sprintf("active(%d)", int(a))
	}
}

// State is a snapshot of the controller. The detail view and an image
// viewer can be open at the same time; the viewer sits on top.
type State struct {
	DetailOpen bool
	Lot        *catalog.Lot
	Viewer     ViewerKind
	// ViewerLot is the lot whose plan is shown, when the plan viewer was
	// opened for a specific lot.
	ViewerLot *catalog.Lot
}

// Closed reports whether nothing is open.
func (s State) Closed() bool {
	return !s.DetailOpen && s.Lot == nil && s.Viewer == ViewerNone
}

func (s State) Active() Active {
	switch s.Viewer {
	case ViewerPlan:
		return ActiveImagePlan
	case ViewerSatellite:
		return ActiveImageSatellite
	}
	if s.DetailOpen {
		return ActiveLotDetail
	}
	return ActiveNone
}

// Controller is the selection state machine. It is not safe for concurrent
// use; all calls come from the UI event loop.
type Controller struct {
	bridge contact.Bridge

	detailOpen bool
	lot        *catalog.Lot

	viewer    ViewerKind
	viewerLot *catalog.Lot
	vp        *viewport.Viewport
}

// New returns a closed controller. bridge may be nil.
func New(bridge contact.Bridge) *Controller {
	return &Controller{bridge: bridge}
}

func (c *Controller) State() State {
	return State{
		DetailOpen: c.detailOpen,
		Lot:        c.lot,
		Viewer:     c.viewer,
		ViewerLot:  c.viewerLot,
	}
}

// Lot returns the lot shown in the detail view.
func (c *Controller) Lot() (catalog.Lot, bool) {
	if c.lot == nil {
		return catalog.Lot{}, false
	}
	return *c.lot, true
}

// Viewport is the zoom/pan state of the open viewer, or nil.
func (c *Controller) Viewport() *viewport.Viewport { return c.vp }

// SelectLot opens the detail view for l. Lots that cannot be quoted still
// open; the view shows their status.
func (c *Controller) SelectLot(l catalog.Lot) {
	c.detailOpen = true
	c.lot = &l
}

// OpenThumbnail opens the plan viewer for l straight from a catalog card,
// without selecting the lot.
func (c *Controller) OpenThumbnail(l catalog.Lot) {
	c.openViewer(ViewerPlan, &l)
}

// OpenViewer opens an image viewer with a fresh viewport. A plan viewer
// opened from the detail view shows the detail lot.
func (c *Controller) OpenViewer(kind ViewerKind) {
	var l *catalog.Lot
	if kind == ViewerPlan && c.lot != nil {
		lot := *c.lot
		l = &lot
	}
	c.openViewer(kind, l)
}

func (c *Controller) openViewer(kind ViewerKind, l *catalog.Lot) {
	if kind == ViewerNone {
		c.CloseViewer()
		return
	}
	c.viewer = kind
	c.viewerLot = l
	c.vp = viewport.New()
}

// CloseViewer closes the image viewer and discards its viewport. The
// detail view, if open, stays.
func (c *Controller) CloseViewer() {
	c.viewer = ViewerNone
	c.viewerLot = nil
	c.vp = nil
}

// CloseDetail closes the detail view and forgets the lot. An open viewer is
// left alone.
func (c *Controller) CloseDetail() {
	c.detailOpen = false
	c.lot = nil
}

// QuoteAllowed reports whether RequestQuote would be accepted, and if not,
// why.
func (c *Controller) QuoteAllowed() error {
	if !c.detailOpen || c.lot == nil {
		return ErrNoLotSelected
	}
	if !c.lot.Available() {
		return fmt.Errorf("%w: %s is %s", ErrLotUnavailable, c.lot.ID, c.lot.Status)
	}
	return nil
}

// RequestQuote closes the detail view and asks the contact form to focus
// on the lot. It is refused, with state left untouched, unless the detail
// lot is available.
func (c *Controller) RequestQuote() (catalog.Lot, error) {
	if err := c.QuoteAllowed(); err != nil {
		return catalog.Lot{}, err
	}
	l := *c.lot
	c.CloseDetail()
	contact.Focus(c.bridge, l.ID)
	return l, nil
}
