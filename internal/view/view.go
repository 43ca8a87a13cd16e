package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"goscatter/internal/scatter"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	sidebarWidth, canvasW, canvasH, _, _ := m.layout()
	contentWidth := max(10, m.width)

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(28-2, canvasH-2)
	}

	// Header
	header := titleStyle.Render(" goscatter ─ terminal reduction viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// Canvas column
	var canvas string
	switch {
	case m.showAttrs:
		maxW := min(canvasW, 72)
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(canvasH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		canvas = lipgloss.Place(canvasW, canvasH, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(canvasW)
		m.ta.SetHeight(min(canvasH, 12))
		canvas = lipgloss.NewStyle().Width(canvasW).Height(canvasH).Render(m.ta.View())
	case m.data.State == scatter.Loading:
		wait := m.sp.View() + " loading dataset"
		canvas = lipgloss.Place(canvasW, canvasH, lipgloss.Center, lipgloss.Center, wait)
	case m.data.State == scatter.NotLoaded:
		hint := dimStyle.Render("no dataset loaded ─ Tab to browse files, p to paste CSV")
		canvas = lipgloss.Place(canvasW, canvasH, lipgloss.Center, lipgloss.Center, hint)
	default:
		ascii := m.renderCanvas(canvasW, canvasH)
		canvas = lipgloss.NewStyle().Width(canvasW).Height(canvasH).Render(ascii)
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", canvas)
	} else {
		body = canvas
	}

	// Footer: legend line, then status/help with hover detail at the right
	legend := lipgloss.NewStyle().Width(contentWidth).Render(m.renderLegend(contentWidth))
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	hover := m.renderHoverInfo()
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(hover))
	right := lipgloss.Place(spacerW+lipgloss.Width(hover), 1, lipgloss.Right, lipgloss.Center, hover)
	statusLine := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))
	footer := lipgloss.JoinVertical(lipgloss.Left, legend, statusLine)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderHoverInfo formats the hovered point for the footer: id, world
// position, and the active column's value when coloring is on.
func (m Model) renderHoverInfo() string {
	if m.data.State != scatter.Loaded {
		return ""
	}
	id := m.in.Hovered()
	if !m.hovering {
		id = -1
	}
	if id < 0 {
		if m.selCount > 0 {
			return dimStyle.Render(fmt.Sprintf("  sel=%d  tool=%s  ", m.selCount, m.in.Tool()))
		}
		return dimStyle.Render(fmt.Sprintf("  tool=%s  ", m.in.Tool()))
	}
	x, y := m.in.Points().At(id)
	info := fmt.Sprintf("  #%d  x=%.4f y=%.4f", id, x, y)
	if m.coloring >= 0 && m.coloring < len(m.data.Data.Names) {
		name := m.data.Data.Names[m.coloring]
		if col, ok := m.data.Data.Column(name); ok {
			if lbl := col.Label(id); lbl != "" {
				info += "  " + name + "=" + lbl
			}
		}
	}
	return dimStyle.Render(info + fmt.Sprintf("  tool=%s  ", m.in.Tool()))
}

// renderLegend draws the coloring key: category swatches for categorical
// columns, a min..max intensity ramp for numeric and sparse ones.
func (m Model) renderLegend(width int) string {
	if m.data.State != scatter.Loaded || m.coloring < 0 || m.coloring >= len(m.data.Data.Names) {
		return ""
	}
	name := m.data.Data.Names[m.coloring]
	col, ok := m.data.Data.Column(name)
	if !ok {
		return ""
	}

	switch col.Kind {
	case scatter.Categorical:
		if len(m.pal) == 0 {
			return ""
		}
		parts := []string{dimStyle.Render(" " + name + ":")}
		for code, cat := range col.Categories {
			if code >= 8 {
				parts = append(parts, dimStyle.Render(fmt.Sprintf("(+%d more)", len(col.Categories)-code)))
				break
			}
			sw := styleFor(m.pal[code%len(m.pal)].Hex()).Render("■")
			parts = append(parts, sw+" "+cat)
		}
		return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, "  "))

	default:
		vals := col.Values
		if col.Kind == scatter.SparseNumeric {
			vals = col.Sparse
		}
		minV, maxV := scatter.SafeMinMax(vals)
		var bar strings.Builder
		const steps = 16
		low := colorful.Color{R: 0, G: 0, B: 0}
		high := colorful.Color{R: 1, G: 0, B: 0}
		for i := 0; i < steps; i++ {
			t := float64(i) / float64(steps-1)
			bar.WriteString(styleFor(low.BlendRgb(high, t).Hex()).Render("█"))
		}
		return dimStyle.Render(fmt.Sprintf(" %s: %.3g ", name, minV)) +
			bar.String() +
			dimStyle.Render(fmt.Sprintf(" %.3g", maxV))
	}
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"wheel zoom",
		"s select",
		"z zoom",
		"f fit",
		"c color",
		"Tab files",
		"Enter open",
		"p paste",
		"a attrs",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
