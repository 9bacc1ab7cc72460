package tui

import (
	"strings"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"thaqu/internal/catalog"
)

// column indexes of the lot table
const (
	colLot = iota
	colArea
	colPrice
	colStatus
	colPlan
)

func (m Model) statusLabel(s catalog.Status) string {
	switch s {
	case catalog.StatusAvailable:
		return m.tr.T("status.available")
	case catalog.StatusReserved:
		return m.tr.T("status.reserved")
	case catalog.StatusSold:
		return m.tr.T("status.sold")
	default:
		return m.tr.T("status.unknown")
	}
}

// refreshLots rebuilds the table from the catalog. Column widths follow the
// widest cell so translations never truncate.
func (m *Model) refreshLots() {
	titles := []string{
		m.tr.T("col.lot"),
		m.tr.T("col.area"),
		m.tr.T("col.price"),
		m.tr.T("col.status"),
		m.tr.T("col.plan"),
	}
	widths := make([]int, len(titles))
	for i, t := range titles {
		widths[i] = lipgloss.Width(t)
	}

	lots := m.cat.List()
	rows := make([]table.Row, 0, len(lots))
	for _, l := range lots {
		row := table.Row{
			l.Name,
			catalog.FormatArea(l.AreaSquareMeters),
			catalog.FormatPrice(l.PriceCLP),
			m.statusLabel(l.Status),
			m.tr.T("col.plan_cell"),
		}
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
		rows = append(rows, row)
	}

	cols := make([]table.Column, len(titles))
	for i, t := range titles {
		cols[i] = table.Column{Title: t, Width: widths[i]}
	}
	// clear rows first so SetColumns never renders rows of the old shape
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.tbl.SetWidth(m.tableWidth())
}

// tableWidth is the rendered width of the lot table; every cell carries one
// column of padding on each side.
func (m Model) tableWidth() int {
	w := 0
	for _, c := range m.tbl.Columns() {
		w += c.Width + 2
	}
	return w
}

// columnAt maps an x offset inside the table to a column index.
func (m Model) columnAt(x int) int {
	cursor := 0
	for i, c := range m.tbl.Columns() {
		cursor += c.Width + 2
		if x < cursor {
			return i
		}
	}
	return -1
}

func (m Model) selectedLot() (catalog.Lot, bool) {
	return m.cat.At(m.tbl.Cursor())
}

func (m Model) catalogPane(l layout, focused bool) string {
	lines := []string{
		titleStyle.Render(m.tr.T("section.catalog")),
		m.tbl.View(),
		"",
		linkStyle.Render("[s] " + m.tr.T("catalog.satellite")),
	}
	style := boxStyle
	if focused {
		style = focusBoxStyle
	}
	return style.Width(l.catalogW - 2).Height(l.contentH - 2).MaxHeight(l.contentH).Render(strings.Join(lines, "\n"))
}

// satelliteButtonWidth is the clickable width of the satellite button.
func (m Model) satelliteButtonWidth() int {
	return lipgloss.Width("[s] " + m.tr.T("catalog.satellite"))
}
