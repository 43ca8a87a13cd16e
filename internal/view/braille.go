package view

import "strings"

// canvasBuf is a braille microgrid with a foreground color per cell plus a
// sparse glyph overlay for markers drawn on top of the dots (hover ring,
// selection rectangle borders). Colors are #RRGGBB strings; within a cell
// the last writer wins.
type canvasBuf struct {
	w, h    int       // in cells
	mask    [][]uint8 // per-cell 8-bit dot mask
	col     [][]string
	over    [][]rune
	overCol [][]string
}

func newCanvas(w, h int) *canvasBuf {
	b := &canvasBuf{w: w, h: h}
	b.mask = make([][]uint8, h)
	b.col = make([][]string, h)
	b.over = make([][]rune, h)
	b.overCol = make([][]string, h)
	for i := 0; i < h; i++ {
		b.mask[i] = make([]uint8, w)
		b.col[i] = make([]string, w)
		b.over[i] = make([]rune, w)
		b.overCol[i] = make([]string, w)
	}
	return b
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *canvasBuf) setPixel(mx, my int, hex string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.mask[cy][cx] |= bit
	b.col[cy][cx] = hex
}

// setCell places an overlay glyph at cell coords, covering any dots there.
func (b *canvasBuf) setCell(cx, cy int, r rune, hex string) {
	if cx < 0 || cx >= b.w || cy < 0 || cy >= b.h {
		return
	}
	b.over[cy][cx] = r
	b.overCol[cy][cx] = hex
}

// drawRect draws a box-drawing border between two cell corners, any order.
func (b *canvasBuf) drawRect(x0, y0, x1, y1 int, hex string) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for x := x0 + 1; x < x1; x++ {
		b.setCell(x, y0, '─', hex)
		b.setCell(x, y1, '─', hex)
	}
	for y := y0 + 1; y < y1; y++ {
		b.setCell(x0, y, '│', hex)
		b.setCell(x1, y, '│', hex)
	}
	if x0 == x1 && y0 == y1 {
		b.setCell(x0, y0, '┼', hex)
		return
	}
	b.setCell(x0, y0, '┌', hex)
	b.setCell(x1, y0, '┐', hex)
	b.setCell(x0, y1, '└', hex)
	b.setCell(x1, y1, '┘', hex)
}

func (b *canvasBuf) toLines() []string {
	out := make([]string, b.h)
	var sb strings.Builder
	for y := 0; y < b.h; y++ {
		sb.Reset()
		for x := 0; x < b.w; x++ {
			if r := b.over[y][x]; r != 0 {
				sb.WriteString(styleFor(b.overCol[y][x]).Render(string(r)))
				continue
			}
			mask := b.mask[y][x]
			if mask == 0 {
				sb.WriteByte(' ')
				continue
			}
			ch := string(rune(0x2800 + int(mask)))
			if c := b.col[y][x]; c != "" {
				ch = styleFor(c).Render(ch)
			}
			sb.WriteString(ch)
		}
		out[y] = sb.String()
	}
	return out
}
