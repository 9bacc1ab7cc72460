// Package catalog holds the read-only table of lots offered by the project
// and the formatting helpers used wherever a lot is shown.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

var (
	ErrInvalidLot    = errors.New("catalog: invalid lot")
	ErrDuplicateLot  = errors.New("catalog: duplicate lot id")
	ErrUnknownStatus = errors.New("catalog: unknown status")
	ErrEmptyCatalog  = errors.New("catalog: no lots")
)

const (
	DefaultPlanImage      = "A1-1.jpg"
	DefaultSatelliteImage = "Reserva Thaqu.jpg"
)

// Catalog is an ordered, immutable set of lots.
type Catalog struct {
	lots      []Lot
	index     map[string]int
	plans     map[string]string
	planImage string
	satellite string
}

type Option func(*Catalog)

// WithPlanImages maps lot ids to plan image paths. Lots without an entry
// resolve to fallback; an empty fallback keeps DefaultPlanImage.
func WithPlanImages(byID map[string]string, fallback string) Option {
	return func(c *Catalog) {
		for id, p := range byID {
			c.plans[id] = p
		}
		if fallback != "" {
			c.planImage = fallback
		}
	}
}

// WithSatelliteImage sets the project-wide satellite image path.
func WithSatelliteImage(path string) Option {
	return func(c *Catalog) {
		if path != "" {
			c.satellite = path
		}
	}
}

// New validates lots and builds a catalog preserving their order.
func New(lots []Lot, opts ...Option) (*Catalog, error) {
	if len(lots) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		lots:      make([]Lot, 0, len(lots)),
		index:     make(map[string]int, len(lots)),
		plans:     map[string]string{},
		planImage: DefaultPlanImage,
		satellite: DefaultSatelliteImage,
	}
	var errs []error
	for _, l := range lots {
		l.ID = strings.TrimSpace(l.ID)
		if err := l.validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := c.index[l.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateLot, l.ID))
			continue
		}
		c.index[l.ID] = len(c.lots)
		c.lots = append(c.lots, l)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Default returns the built-in lot table of the first sales phase.
func Default(opts ...Option) *Catalog {
	c, err := New(DefaultLots(), opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultLots is the first sales phase: blocks A1 and A2.
func DefaultLots() []Lot {
	return []Lot{
		{ID: "A1-1", Name: "Lote A1-1", AreaSquareMeters: 5096, PriceCLP: 25000000, Status: StatusAvailable},
		{ID: "A1-2", Name: "Lote A1-2", AreaSquareMeters: 5096, PriceCLP: 25000000, Status: StatusAvailable},
		{ID: "A1-3", Name: "Lote A1-3", AreaSquareMeters: 5390, PriceCLP: 27000000, Status: StatusAvailable},
		{ID: "A1-4", Name: "Lote A1-4", AreaSquareMeters: 5488, PriceCLP: 28000000, Status: StatusAvailable},
		{ID: "A2-1", Name: "Lote A2-1", AreaSquareMeters: 5096, PriceCLP: 27000000, Status: StatusAvailable},
		{ID: "A2-2", Name: "Lote A2-2", AreaSquareMeters: 5096, PriceCLP: 27000000, Status: StatusAvailable},
	}
}

// List returns the lots in insertion order. The slice is a copy.
func (c *Catalog) List() []Lot {
	out := make([]Lot, len(c.lots))
	copy(out, c.lots)
	return out
}

func (c *Catalog) Len() int { return len(c.lots) }

// At returns the i-th lot in catalog order.
func (c *Catalog) At(i int) (Lot, bool) {
	if i < 0 || i >= len(c.lots) {
		return Lot{}, false
	}
	return c.lots[i], true
}

func (c *Catalog) Find(id string) (Lot, bool) {
	i, ok := c.index[strings.TrimSpace(id)]
	if !ok {
		return Lot{}, false
	}
	return c.lots[i], true
}

// IndexOf returns the catalog position of id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.index[strings.TrimSpace(id)]; ok {
		return i
	}
	return -1
}

// PlanImage resolves the plan image for a lot id.
func (c *Catalog) PlanImage(id string) string {
	if p, ok := c.plans[id]; ok && p != "" {
		return p
	}
	return c.planImage
}

func (c *Catalog) SatelliteImage() string { return c.satellite }

// Match resolves free text typed by a user to a lot. An exact id (case
// insensitive) wins; otherwise the best fuzzy match over "id name" is used.
func (c *Catalog) Match(query string) (Lot, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Lot{}, false
	}
	for _, l := range c.lots {
		if strings.EqualFold(l.ID, q) || strings.EqualFold(l.Name, q) {
			return l, true
		}
	}
	keys := make([]string, len(c.lots))
	for i, l := range c.lots {
		keys[i] = l.ID + " " + l.Name
	}
	matches := fuzzy.Find(q, keys)
	if len(matches) == 0 {
		return Lot{}, false
	}
	return c.lots[matches[0].Index], true
}
