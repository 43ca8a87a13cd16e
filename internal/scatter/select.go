package scatter

// Rectangle is a drag-defined, axis-aligned selection rectangle in world
// space. The corners are unordered; either one may be the drag anchor.
type Rectangle struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// RangeX returns the x extent in (min, max) order.
func (r Rectangle) RangeX() (float64, float64) {
	if r.X1 > r.X2 {
		return r.X2, r.X1
	}
	return r.X1, r.X2
}

// RangeY returns the y extent in (min, max) order.
func (r Rectangle) RangeY() (float64, float64) {
	if r.Y1 > r.Y2 {
		return r.Y2, r.Y1
	}
	return r.Y1, r.Y2
}

// IsClick reports whether the gesture never left its anchor: both
// normalized ranges are zero-width, so this is a click, not a rectangle.
func (r Rectangle) IsClick() bool {
	return r.X1 == r.X2 && r.Y1 == r.Y2
}

// SelectWithin scans every point and returns the ids strictly inside the
// rectangle, in ascending id order. Points exactly on an edge are excluded.
// Selection is a one-shot, user-paced gesture, so a full linear scan is
// fine and the spatial index stays out of it.
func (p PointSet) SelectWithin(r Rectangle) []int {
	x1, x2 := r.RangeX()
	y1, y2 := r.RangeY()
	var ids []int
	for i := 0; i < p.N; i++ {
		px, py := p.At(i)
		if px > x1 && px < x2 && py > y1 && py < y2 {
			ids = append(ids, i)
		}
	}
	return ids
}
