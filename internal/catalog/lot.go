package catalog

import (
	"fmt"
	"strings"
)

// Status is the sale state of a lot.
type Status int

const (
	StatusAvailable Status = iota
	StatusReserved
	StatusSold
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusReserved:
		return "reserved"
	case StatusSold:
		return "sold"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus accepts the English names and the Spanish labels used by the
// sales team ("disponible", "reservado", "vendido").
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available", "disponible":
		return StatusAvailable, nil
	case "reserved", "reservado":
		return StatusReserved, nil
	case "sold", "vendido":
		return StatusSold, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Lot is a sellable parcel. Values are copied out of the catalog and never
// mutated after the catalog is built.
type Lot struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	AreaSquareMeters float64 `yaml:"area"`
	PriceCLP         int64   `yaml:"price"`
	Status           Status  `yaml:"status"`
}

// Available reports whether a quote can be requested for the lot.
func (l Lot) Available() bool { return l.Status == StatusAvailable }

func (l Lot) validate() error {
	var problems []string
	if strings.TrimSpace(l.ID) == "" {
		problems = append(problems, "empty id")
	}
	if strings.TrimSpace(l.Name) == "" {
		problems = append(problems, "empty name")
	}
	if !(l.AreaSquareMeters > 0) {
		problems = append(problems, fmt.Sprintf("area %v must be positive", l.AreaSquareMeters))
	}
	if l.PriceCLP < 0 {
		problems = append(problems, fmt.Sprintf("price %d must not be negative", l.PriceCLP))
	}
	if l.Status < StatusAvailable || l.Status > StatusSold {
		problems = append(problems, "unknown status")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: lot %q: %s", ErrInvalidLot, l.ID, strings.Join(problems, ", "))
	}
	return nil
}
