package view

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

const (
	defaultPointHex = "#9CA3AF"
	hoverHex        = "#FFA500"
	selectionHex    = "#FFD866"
)

// fgCache memoizes one foreground style per color so the render loop does
// not rebuild styles for every cell. Update and View run on a single
// goroutine, so the map needs no lock.
var fgCache = map[string]lipgloss.Style{}

func styleFor(hex string) lipgloss.Style {
	s, ok := fgCache[hex]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		fgCache[hex] = s
	}
	return s
}
