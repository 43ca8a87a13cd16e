package view

import (
	"strings"

	"goscatter/internal/scatter"
)

// renderCanvas rasterizes the loaded point set into a w x h cell braille
// canvas, then overlays the in-progress selection rectangle and the hover
// marker on top of the dots.
func (m Model) renderCanvas(w, h int) string {
	cv := newCanvas(w, h)
	if m.data.State != scatter.Loaded {
		return strings.Join(cv.toLines(), "\n")
	}

	ps := m.in.Points()
	for i := 0; i < ps.N; i++ {
		wx, wy := ps.At(i)
		dx, dy := m.in.Camera.WorldToDevice(wx, wy)
		mx, my, ok := deviceToMicro(dx, dy, w, h)
		if !ok {
			continue
		}
		hex := defaultPointHex
		if i < len(m.pointHex) {
			hex = m.pointHex[i]
		}
		if m.selected[i] {
			hex = selectionHex
		}
		cv.setPixel(mx, my, hex)
	}

	if r := m.in.Selection(); r != nil {
		ax, ay := m.in.Camera.WorldToDevice(r.X1, r.Y1)
		bx, by := m.in.Camera.WorldToDevice(r.X2, r.Y2)
		cx0, cy0 := deviceToCell(ax, ay, w, h)
		cx1, cy1 := deviceToCell(bx, by, w, h)
		cv.drawRect(cx0, cy0, cx1, cy1, selectionHex)
	}

	if id := m.in.Hovered(); id >= 0 && id < ps.N {
		wx, wy := ps.At(id)
		dx, dy := m.in.Camera.WorldToDevice(wx, wy)
		if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
			cx, cy := deviceToCell(dx, dy, w, h)
			cv.setCell(cx, cy, '◯', hoverHex)
		}
	}

	return strings.Join(cv.toLines(), "\n")
}
