package view

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	spinner "github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"goscatter/internal/scatter"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Interaction engine and loaded data
	in   *scatter.Interactor
	data scatter.Async[*scatter.Dataset]

	// Derived render state
	vertices []float32
	pointHex []string
	coloring int // index into data.Data.Names, -1 for none
	pal      scatter.Palette

	// Committed selection
	selected map[int]bool
	selCount int

	// Pointer state
	leftDown bool
	hovering bool

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// loading spinner
	sp spinner.Model

	// attributes table
	showAttrs bool
	tbl       table.Model

	// path queued for the initial async load
	pendingPath string
}

// New builds the model. path may be empty; pal falls back to the built-in
// palette when nil.
func New(path string, pal scatter.Palette) Model {
	if len(pal) == 0 {
		pal = scatter.DefaultPalette()
	}
	m := Model{
		helpVisible: true,
		status:      "goscatter ready",
		in:          scatter.NewInteractor(),
		coloring:    -1,
		pal:         pal,
		pendingPath: path,
	}
	if path != "" {
		m.selPath = path
		m.data.State = scatter.Loading
		m.status = "loading " + path
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste CSV here (x,y header plus attribute columns). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// spinner setup
	m.sp = spinner.New(spinner.WithSpinner(spinner.Dot))
	// attributes table setup (rows are rebuilt per dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.pendingPath == "" {
		return nil
	}
	return tea.Batch(loadDatasetCmd(m.pendingPath), m.sp.Tick)
}

// layout mirrors the sizes View uses so mouse hit-testing and rendering
// agree on where the canvas is.
func (m Model) layout() (sidebarWidth, canvasW, canvasH, originX, originY int) {
	if m.showSidebar {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	canvasW = contentWidth - sidebarWidth - 1
	if canvasW < 10 {
		canvasW = 10
	}
	canvasH = contentHeight
	originX = sidebarWidth
	if m.showSidebar {
		originX++
	}
	originY = headerHeight
	return
}
