package scatter

import "math"

// VertexStride is the float count per point in the render buffer:
// position x, y, z (always 0 for 2D reductions) then color r, g, b.
const VertexStride = 6

// safeMaxEpsilon is the floor applied to an observed maximum before it is
// used as a normalization divisor.
const safeMaxEpsilon = 1e-12

// SafeMinMax returns the finite minimum and maximum of values with the
// maximum floored so it is always a safe divisor: when the column is
// empty, all-zero, or non-positive, the maximum falls back to 1 and
// normalized output stays bounded in [0,1] with no NaN reaching the
// render buffer.
func SafeMinMax(values []float64) (float64, float64) {
	minV := math.Inf(1)
	maxV := math.Inf(-1)
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if minV > maxV { // nothing finite observed
		return 0, 1
	}
	if maxV <= 0 {
		return minV, 1
	}
	if maxV < safeMaxEpsilon {
		maxV = safeMaxEpsilon
	}
	return minV, maxV
}

// BuildVertexBuffer lays out the render buffer for a point set: VertexStride
// float32 per point with positions filled and colors zeroed. The buffer is
// fully derived; it is rebuilt whenever the point set changes and recolored
// in place whenever the active coloring changes.
func BuildVertexBuffer(ps PointSet) []float32 {
	buf := make([]float32, ps.N*VertexStride)
	for i := 0; i < ps.N; i++ {
		x, y := ps.At(i)
		base := i * VertexStride
		buf[base+0] = float32(x)
		buf[base+1] = float32(y)
		// base+2 stays 0: z is unused for 2D reductions
	}
	return buf
}

// EncodeColors writes the color component of the render buffer from one
// attribute column, leaving positions untouched. All colors are reset
// first, so switching columns never leaves stale channels behind and a nil
// column is the "no coloring" pass with every point at (0,0,0).
func EncodeColors(buf []float32, col *Column, pal Palette) {
	n := len(buf) / VertexStride
	for i := 0; i < n; i++ {
		base := i * VertexStride
		buf[base+3] = 0
		buf[base+4] = 0
		buf[base+5] = 0
	}
	if col == nil {
		return
	}

	switch col.Kind {
	case Categorical:
		if len(pal) == 0 {
			return
		}
		for i, code := range col.Codes {
			if i >= n || code < 0 {
				continue
			}
			// The palette wraps rather than erroring when categories
			// outnumber colors.
			c := pal[code%len(pal)]
			base := i * VertexStride
			buf[base+3] = float32(c.R)
			buf[base+4] = float32(c.G)
			buf[base+5] = float32(c.B)
		}

	case Numeric:
		_, maxV := SafeMinMax(col.Values)
		for i, v := range col.Values {
			if i >= n || !isFinite(v) {
				continue
			}
			// Single-channel heat encoding: the hue ramp belongs to the
			// legend, not the buffer.
			buf[i*VertexStride+3] = float32(v / maxV)
		}

	case SparseNumeric:
		_, maxV := SafeMinMax(col.Sparse)
		for j, idx := range col.Index {
			if idx < 0 || idx >= n {
				continue
			}
			v := col.Sparse[j]
			if !isFinite(v) {
				continue
			}
			buf[idx*VertexStride+3] = float32(v / maxV)
		}
	}
}
