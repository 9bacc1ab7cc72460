package tui

import (
	"github.com/charmbracelet/lipgloss"

	"thaqu/internal/selection"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	header := titleStyle.Render(" " + m.tr.T("app.title") + " ")
	header = lipgloss.NewStyle().Width(l.contentW).MaxWidth(l.contentW).Render(header)

	var body string
	st := m.sel.State()
	switch {
	case st.Viewer != selection.ViewerNone:
		body = m.viewerView(l)
	case st.DetailOpen && st.Lot != nil:
		box, _, _ := m.detailBox(*st.Lot, l)
		body = lipgloss.Place(l.contentW, l.contentH, lipgloss.Center, lipgloss.Center, box,
			lipgloss.WithWhitespaceChars("░"),
			lipgloss.WithWhitespaceForeground(borderCol))
	default:
		body = m.panesView(l)
	}

	status := dimStyle.MaxWidth(l.contentW).Render(" " + m.status + " ")
	footer := lipgloss.JoinVertical(lipgloss.Left, status, m.renderHelp(l.contentW))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

func (m Model) panesView(l layout) string {
	if l.wide {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.catalogPane(l, m.section == sectionCatalog),
			m.contactPane(l, m.section == sectionContact))
	}
	if m.section == sectionContact {
		return m.contactPane(l, true)
	}
	return m.catalogPane(l, true)
}

func (m Model) contactPane(l layout, focused bool) string {
	style := boxStyle
	if focused {
		style = focusBoxStyle
	}
	return style.Width(l.contactW - 2).Height(l.contentH - 2).MaxHeight(l.contentH).
		Render(m.form.View(m.sink.WhatsApp))
}

func (m Model) renderHelp(width int) string {
	if !m.helpVisible {
		return ""
	}
	var k string
	switch m.sel.State().Active() {
	case selection.ActiveImagePlan, selection.ActiveImageSatellite:
		k = "help.viewer"
	case selection.ActiveLotDetail:
		k = "help.detail"
	default:
		k = "help.catalog"
		if m.section == sectionContact {
			k = "help.contact"
		}
	}
	return dimStyle.MaxWidth(width).Render("  " + m.tr.T(k))
}
