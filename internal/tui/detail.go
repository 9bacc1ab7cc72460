package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"thaqu/internal/catalog"
)

// detailLines is the body of the lot detail modal with the rows that react
// to clicks.
type detailLines struct {
	lines     []string
	planLine  int
	quoteLine int
	closeLine int
}

func (m Model) detailLines(l catalog.Lot) detailLines {
	d := detailLines{}
	add := func(s string) int {
		d.lines = append(d.lines, s)
		return len(d.lines) - 1
	}
	add(titleStyle.Render(l.Name))
	add("")
	add(dimStyle.Render(m.tr.T("detail.area")) + " " + catalog.FormatArea(l.AreaSquareMeters))
	add(dimStyle.Render(m.tr.T("detail.price")) + " " + catalog.FormatPrice(l.PriceCLP))
	add(dimStyle.Render(m.tr.T("detail.status")) + " " + badgeStyle(l.Status).Render(m.statusLabel(l.Status)))
	add("")
	add(dimStyle.Render(m.tr.T("detail.features")))
	for i := 1; i <= 4; i++ {
		add("• " + m.tr.T("detail.feature."+strconv.Itoa(i)))
	}
	add("")
	d.planLine = add(linkStyle.Render("[p] " + m.tr.T("detail.plan")))
	add("")
	if l.Available() {
		d.quoteLine = add(buttonStyle.Render("[r] " + m.tr.T("detail.quote")))
	} else {
		d.quoteLine = add(disabledStyle.Render(m.tr.Tf("detail.quote_unavailable", strings.ToLower(m.statusLabel(l.Status)))))
	}
	add("")
	d.closeLine = add(dimStyle.Render("[esc] " + m.tr.T("detail.close")))
	return d
}

// detailBox renders the modal and reports where it lands on screen. Line i
// of the body sits at rect.y+2+i (border and top padding).
func (m Model) detailBox(l catalog.Lot, lay layout) (string, rect, detailLines) {
	d := m.detailLines(l)
	w := 0
	for _, s := range d.lines {
		w = max(w, lipgloss.Width(s))
	}
	// horizontal padding is part of the style width
	w = min(w+4, max(10, lay.contentW-2))
	box := modalStyle.Width(w).Render(strings.Join(d.lines, "\n"))
	r := lay.centered(lipgloss.Width(box), lipgloss.Height(box))
	return box, r, d
}
