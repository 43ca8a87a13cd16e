package view

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cellToDevice maps a terminal cell within the canvas to normalized device
// coordinates in [-1, 1], y growing downward. The cell center is used so a
// click lands in the middle of the glyph, not its top-left corner.
func cellToDevice(cx, cy, w, h int) (float64, float64) {
	dx := (float64(cx)+0.5)/float64(w)*2 - 1
	dy := (float64(cy)+0.5)/float64(h)*2 - 1
	return dx, dy
}

// deviceToMicro maps device coordinates into the 2x4-per-cell braille
// microgrid. Positions outside the viewport report false.
func deviceToMicro(dx, dy float64, w, h int) (int, int, bool) {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		return 0, 0, false
	}
	wMic := w * 2
	hMic := h * 4
	mx := int((dx + 1) / 2 * float64(wMic-1))
	my := int((dy + 1) / 2 * float64(hMic-1))
	return mx, my, true
}

// deviceToCell maps device coordinates to a cell, clamping into the canvas
// so overlays for partially off-screen shapes still draw at the edge.
func deviceToCell(dx, dy float64, w, h int) (int, int) {
	cx := int((dx + 1) / 2 * float64(w))
	cy := int((dy + 1) / 2 * float64(h))
	return clamp(cx, 0, w-1), clamp(cy, 0, h-1)
}
