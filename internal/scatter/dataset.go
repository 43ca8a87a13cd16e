package scatter

import "math"

// BBox is an axis-aligned bounding box in world coordinates.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBBox returns the sentinel bounds carried by a dataset with no finite
// points. The box is inverted (min > max) so Valid reports false and a
// camera fit never runs against it.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Valid reports whether the box covers at least one point.
func (b BBox) Valid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// Extend grows the box to include (x, y). Non-finite coordinates are
// ignored so one bad point cannot poison the bounds.
func (b *BBox) Extend(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Width returns the x extent, zero for an invalid box.
func (b BBox) Width() float64 {
	if !b.Valid() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the y extent, zero for an invalid box.
func (b BBox) Height() float64 {
	if !b.Valid() {
		return 0
	}
	return b.MaxY - b.MinY
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PointSet is one loaded reduction: N points stored as an interleaved
// x,y buffer plus the exact bounds over all finite points. Point ids are
// the indices 0..N-1 and stay stable for the lifetime of the dataset.
// The buffer is immutable once built.
type PointSet struct {
	N      int
	Coords []float64 // length 2N, x then y per point
	BBox   BBox
}

// At returns the world position of point i.
func (p PointSet) At(i int) (x, y float64) {
	return p.Coords[2*i], p.Coords[2*i+1]
}

// Convert interleaves the parallel x/y arrays of a reduction response and
// computes their bounds in one pass. Mismatched lengths are clipped to the
// shorter array. Non-finite coordinates stay in the buffer so ids remain
// aligned with the response, but they never contribute to the bounds; an
// empty response yields the sentinel bounds.
func Convert(xs, ys []float64) PointSet {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	bbox := EmptyBBox()
	coords := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		coords[2*i] = xs[i]
		coords[2*i+1] = ys[i]
		bbox.Extend(xs[i], ys[i])
	}
	return PointSet{N: n, Coords: coords, BBox: bbox}
}
