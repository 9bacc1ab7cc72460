package catalog

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// es-CL grouping: "." for thousands, "," for decimals.
const (
	integerPattern    = "#.###,"
	fractionalPattern = "#.###,##"
)

// FormatPrice renders an amount of Chilean pesos: FormatPrice(25000000)
// returns "$25.000.000". Pesos have no minor unit.
func FormatPrice(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.FormatInteger(integerPattern, int(-amount))
	}
	return "$" + humanize.FormatInteger(integerPattern, int(amount))
}

// FormatArea renders a surface in square meters: FormatArea(5096) returns
// "5.096 m²".
func FormatArea(amount float64) string {
	if amount == math.Trunc(amount) {
		return humanize.FormatInteger(integerPattern, int(amount)) + " m²"
	}
	s := humanize.FormatFloat(fractionalPattern, amount)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ",")
	return s + " m²"
}

// Summary is the one-line description used by pickers and messages:
// "Lote A1-1 - 5.096 m² - $25.000.000".
func Summary(l Lot) string {
	return l.Name + " - " + FormatArea(l.AreaSquareMeters) + " - " + FormatPrice(l.PriceCLP)
}
