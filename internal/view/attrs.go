package view

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"goscatter/internal/scatter"
)

// refreshAttrs rebuilds the attribute table with one summary row per
// column of the loaded dataset.
func (m *Model) refreshAttrs() {
	if m.data.State != scatter.Loaded {
		m.showAttrs = false
		m.status = "no dataset loaded"
		return
	}
	ds := m.data.Data
	if len(ds.Names) == 0 {
		m.showAttrs = false
		m.status = "no attribute columns in current dataset"
		return
	}

	tcols := []table.Column{
		{Title: "column", Width: 18},
		{Title: "kind", Width: 12},
		{Title: "entries", Width: 8},
		{Title: "range", Width: 24},
	}
	trows := make([]table.Row, 0, len(ds.Names))
	for _, name := range ds.Names {
		col, ok := ds.Column(name)
		if !ok {
			continue
		}
		trows = append(trows, table.Row{
			name,
			col.Kind.String(),
			fmt.Sprintf("%d", columnEntries(col)),
			columnRange(col),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

func columnEntries(c *scatter.Column) int {
	switch c.Kind {
	case scatter.Categorical:
		return len(c.Codes)
	case scatter.Numeric:
		return len(c.Values)
	case scatter.SparseNumeric:
		return len(c.Index)
	}
	return 0
}

func columnRange(c *scatter.Column) string {
	switch c.Kind {
	case scatter.Categorical:
		return fmt.Sprintf("%d categories", len(c.Categories))
	case scatter.Numeric:
		minV, maxV := scatter.SafeMinMax(c.Values)
		return fmt.Sprintf("%.4g .. %.4g", minV, maxV)
	case scatter.SparseNumeric:
		minV, maxV := scatter.SafeMinMax(c.Sparse)
		return fmt.Sprintf("%.4g .. %.4g (sparse)", minV, maxV)
	}
	return ""
}
