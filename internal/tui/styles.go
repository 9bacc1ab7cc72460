package tui

import (
	"github.com/charmbracelet/lipgloss"

	"thaqu/internal/catalog"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#34D399")
	borderCol = lipgloss.Color("#243141")
	modalBg   = lipgloss.Color("#1E293B")

	statusAvailable = lipgloss.Color("#22C55E")
	statusReserved  = lipgloss.Color("#EAB308")
	statusSold      = lipgloss.Color("#EF4444")
	statusUnknown   = lipgloss.Color("#6B7280")

	appStyle      = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	focusBoxStyle = boxStyle.BorderForeground(accentFg)
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentFg).Background(modalBg).Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(baseDimFg)
	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#059669")).Padding(0, 1)
	disabledStyle = lipgloss.NewStyle().Foreground(baseDimFg).Strikethrough(true)
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#93C5FD")).Underline(true)
	errorStyle    = lipgloss.NewStyle().Foreground(statusSold)
)

func statusColor(s catalog.Status) lipgloss.Color {
	switch s {
	case catalog.StatusAvailable:
		return statusAvailable
	case catalog.StatusReserved:
		return statusReserved
	case catalog.StatusSold:
		return statusSold
	default:
		return statusUnknown
	}
}

func badgeStyle(s catalog.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(statusColor(s)).Padding(0, 1)
}
