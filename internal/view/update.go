package view

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	spinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"goscatter/internal/scatter"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}

	case datasetLoadedMsg:
		if msg.err != nil {
			log.Printf("load %s: %v", msg.path, msg.err)
			m.status = "load error: " + msg.err.Error()
			if m.data.Data != nil {
				m.data.State = scatter.Loaded
			} else {
				m.data.State = scatter.NotLoaded
			}
			return m, nil
		}
		m.selPath = msg.path
		m.installDataset(msg.ds, filepath.Base(msg.path))
		return m, nil

	case spinner.TickMsg:
		if m.data.State == scatter.Loading {
			var cmd tea.Cmd
			m.sp, cmd = m.sp.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				ds, err := scatter.ParseCSVString(text)
				if err != nil {
					m.status = "csv error: " + err.Error()
					return m, nil
				}
				m.selPath = ""
				m.installDataset(ds, "pasted csv")
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s":
			m.applyEvents(m.in.SelectTool(scatter.ToolSelect))
			m.status = "select tool"
		case "z":
			m.applyEvents(m.in.SelectTool(scatter.ToolZoom))
			m.status = "zoom tool"
		case "f":
			m.applyEvents(m.in.SelectTool(scatter.ToolZoomAll))
			m.status = "zoomed to fit"
		case "c":
			m.cycleColoring()
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.data.State = scatter.Loading
					m.status = "loading " + it.title
					return m, tea.Batch(loadDatasetCmd(it.path), m.sp.Tick)
				}
			}
		case "up":
			m.in.Camera.Pan(0, 0.1)
		case "down":
			m.in.Camera.Pan(0, -0.1)
		case "left":
			m.in.Camera.Pan(0.1, 0)
		case "right":
			m.in.Camera.Pan(-0.1, 0)
		}

	case tea.MouseMsg:
		_, cw, ch, ox, oy := m.layout()
		cx, cy := msg.X-ox, msg.Y-oy
		inside := cx >= 0 && cx < cw && cy >= 0 && cy < ch
		m.hovering = inside
		// Clamp so a drag released outside the canvas still ends cleanly.
		dx, dy := cellToDevice(clamp(cx, 0, cw-1), clamp(cy, 0, ch-1), cw, ch)

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if inside {
				m.applyEvents(m.in.Wheel(30))
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if inside {
				m.applyEvents(m.in.Wheel(-30))
			}
			return m, nil
		}

		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft && inside {
				m.leftDown = true
				m.applyEvents(m.in.PointerDown(dx, dy))
			}
		case tea.MouseActionRelease:
			if m.leftDown {
				m.leftDown = false
				m.applyEvents(m.in.PointerUp(dx, dy))
			}
		case tea.MouseActionMotion:
			m.applyEvents(m.in.PointerMove(dx, dy, m.leftDown))
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyEvents folds one interaction outcome into the view state.
func (m *Model) applyEvents(ev scatter.Events) {
	if !ev.SelectionCommitted {
		return
	}
	log.Printf("selection committed: %d points", len(ev.Selection))
	m.selCount = len(ev.Selection)
	m.selected = make(map[int]bool, len(ev.Selection))
	for _, id := range ev.Selection {
		m.selected[id] = true
	}
	if m.selCount == 1 {
		m.status = fmt.Sprintf("selected point #%d", ev.Selection[0])
	} else {
		m.status = fmt.Sprintf("selected %d points", m.selCount)
	}
}

// installDataset swaps in a freshly loaded dataset and rebuilds everything
// derived from it.
func (m *Model) installDataset(ds *scatter.Dataset, origin string) {
	m.data = scatter.AsyncLoaded(ds)
	m.in.SetDataset(ds.Points)
	m.vertices = scatter.BuildVertexBuffer(ds.Points)
	m.coloring = -1
	m.recolor()
	m.selected = nil
	m.selCount = 0
	log.Printf("dataset %s: %d points, %d columns", origin, ds.Points.N, len(ds.Names))
	m.status = fmt.Sprintf("loaded %s  points=%d columns=%d", origin, ds.Points.N, len(ds.Names))
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// cycleColoring steps through the attribute columns: none, each column in
// name order, back to none.
func (m *Model) cycleColoring() {
	if m.data.State != scatter.Loaded || len(m.data.Data.Names) == 0 {
		m.status = "no attribute columns to color by"
		return
	}
	ds := m.data.Data
	m.coloring++
	if m.coloring >= len(ds.Names) {
		m.coloring = -1
	}
	m.recolor()
	if m.coloring >= 0 {
		m.status = "color by " + ds.Names[m.coloring]
	} else {
		m.status = "coloring off"
	}
}

// recolor re-encodes the vertex buffer colors for the active column and
// refreshes the per-point terminal colors derived from it.
func (m *Model) recolor() {
	var col *scatter.Column
	if m.data.State == scatter.Loaded && m.coloring >= 0 && m.coloring < len(m.data.Data.Names) {
		col, _ = m.data.Data.Column(m.data.Data.Names[m.coloring])
	}
	scatter.EncodeColors(m.vertices, col, m.pal)

	n := len(m.vertices) / scatter.VertexStride
	m.pointHex = make([]string, n)
	for i := 0; i < n; i++ {
		base := i * scatter.VertexStride
		r := float64(m.vertices[base+3])
		g := float64(m.vertices[base+4])
		b := float64(m.vertices[base+5])
		if r == 0 && g == 0 && b == 0 {
			// Uncolored points get a neutral gray; pure black would vanish
			// on the terminal background.
			m.pointHex[i] = defaultPointHex
			continue
		}
		m.pointHex[i] = scatter.RGB{R: r, G: g, B: b}.Hex()
	}
}
