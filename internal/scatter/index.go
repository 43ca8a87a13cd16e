package scatter

import "math"

// maxRadiusFrac bounds nearest queries to a fraction of the dataset
// bounding-box diagonal so hover does not snap to a point across the whole
// canvas from empty space.
const maxRadiusFrac = 0.05

// maxGridSide caps the grid resolution; beyond this the per-cell lists
// just get shorter with no practical win for hover queries.
const maxGridSide = 256

// ClosestPointIndex answers nearest-point queries over one immutable point
// set with a uniform cell grid. It is built once per dataset and never
// mutated afterwards; pan, zoom, and coloring changes do not invalidate it.
type ClosestPointIndex struct {
	points  PointSet
	cols    int
	rows    int
	cellW   float64
	cellH   float64
	originX float64
	originY float64
	cells   [][]int32 // point ids per cell; ids ascend within a cell
	maxD2   float64   // squared search radius cap
	count   int       // indexed (finite) points
}

// BuildIndex partitions the point set into a grid of roughly one point per
// cell. Points with non-finite coordinates are left out of the grid and can
// never be returned by Nearest.
func BuildIndex(ps PointSet) *ClosestPointIndex {
	ix := &ClosestPointIndex{points: ps}
	if ps.N == 0 || !ps.BBox.Valid() {
		return ix
	}

	side := int(math.Ceil(math.Sqrt(float64(ps.N))))
	if side < 1 {
		side = 1
	}
	if side > maxGridSide {
		side = maxGridSide
	}
	w := ps.BBox.Width()
	h := ps.BBox.Height()
	if w < minFitExtent {
		w = minFitExtent
	}
	if h < minFitExtent {
		h = minFitExtent
	}

	ix.cols = side
	ix.rows = side
	ix.cellW = w / float64(side)
	ix.cellH = h / float64(side)
	ix.originX = ps.BBox.MinX
	ix.originY = ps.BBox.MinY
	ix.cells = make([][]int32, side*side)

	maxDist := maxRadiusFrac * math.Hypot(w, h)
	ix.maxD2 = maxDist * maxDist

	for i := 0; i < ps.N; i++ {
		x, y := ps.At(i)
		if !isFinite(x) || !isFinite(y) {
			continue
		}
		cx := ix.clampCol(int((x - ix.originX) / ix.cellW))
		cy := ix.clampRow(int((y - ix.originY) / ix.cellH))
		cell := cy*ix.cols + cx
		ix.cells[cell] = append(ix.cells[cell], int32(i))
		ix.count++
	}
	return ix
}

func (ix *ClosestPointIndex) clampCol(c int) int {
	if c < 0 {
		return 0
	}
	if c >= ix.cols {
		return ix.cols - 1
	}
	return c
}

func (ix *ClosestPointIndex) clampRow(r int) int {
	if r < 0 {
		return 0
	}
	if r >= ix.rows {
		return ix.rows - 1
	}
	return r
}

// Nearest returns the id of the indexed point closest to the world
// coordinate (wx, wy). The second return is false when the index is empty,
// the query is not finite, or every candidate lies beyond the maximum
// search radius. Equidistant candidates resolve to the lowest id.
func (ix *ClosestPointIndex) Nearest(wx, wy float64) (int, bool) {
	if ix.count == 0 || !isFinite(wx) || !isFinite(wy) {
		return -1, false
	}

	cx := ix.clampCol(int(math.Floor((wx - ix.originX) / ix.cellW)))
	cy := ix.clampRow(int(math.Floor((wy - ix.originY) / ix.cellH)))

	minCell := ix.cellW
	if ix.cellH < minCell {
		minCell = ix.cellH
	}

	bestID := -1
	bestD2 := math.Inf(1)

	maxRing := ix.cols
	if ix.rows > maxRing {
		maxRing = ix.rows
	}
	for ring := 0; ring <= maxRing; ring++ {
		// Any cell on this ring is at least (ring-1) cells away from the
		// query cell, so once that lower bound passes the current best (or
		// the radius cap) no farther ring can improve the answer.
		if ring > 1 {
			lower := float64(ring-1) * minCell
			bound := ix.maxD2
			if bestID >= 0 && bestD2 < bound {
				bound = bestD2
			}
			if lower*lower > bound {
				break
			}
		}
		ix.scanRing(cx, cy, ring, wx, wy, &bestID, &bestD2)
	}

	if bestID < 0 || bestD2 > ix.maxD2 {
		return -1, false
	}
	return bestID, true
}

// scanRing visits the square ring of cells at Chebyshev distance ring from
// (cx, cy) and folds their points into the current best candidate.
func (ix *ClosestPointIndex) scanRing(cx, cy, ring int, wx, wy float64, bestID *int, bestD2 *float64) {
	scan := func(col, row int) {
		if col < 0 || col >= ix.cols || row < 0 || row >= ix.rows {
			return
		}
		for _, id := range ix.cells[row*ix.cols+col] {
			x, y := ix.points.At(int(id))
			dx := x - wx
			dy := y - wy
			d2 := dx*dx + dy*dy
			if d2 < *bestD2 || (d2 == *bestD2 && int(id) < *bestID) {
				*bestD2 = d2
				*bestID = int(id)
			}
		}
	}
	if ring == 0 {
		scan(cx, cy)
		return
	}
	for col := cx - ring; col <= cx+ring; col++ {
		scan(col, cy-ring)
		scan(col, cy+ring)
	}
	for row := cy - ring + 1; row <= cy+ring-1; row++ {
		scan(cx-ring, row)
		scan(cx+ring, row)
	}
}
