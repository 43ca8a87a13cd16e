package view

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"goscatter/internal/scatter"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".json" || ext == ".csv" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no datasets in current directory"
	}
}

// datasetLoadedMsg delivers the result of an off-thread dataset load.
type datasetLoadedMsg struct {
	path string
	ds   *scatter.Dataset
	err  error
}

// loadDatasetCmd reads and parses a dataset file off the update loop so a
// large file never freezes the UI.
func loadDatasetCmd(path string) tea.Cmd {
	return func() tea.Msg {
		var (
			ds  *scatter.Dataset
			err error
		)
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".json":
			ds, err = scatter.LoadJSON(path)
		case ".csv":
			ds, err = scatter.LoadCSV(path)
		default:
			err = fmt.Errorf("unsupported file: %s", ext)
		}
		return datasetLoadedMsg{path: path, ds: ds, err: err}
	}
}
