package scatter

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointSet(coords ...float64) PointSet {
	n := len(coords) / 2
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = coords[2*i]
		ys[i] = coords[2*i+1]
	}
	return Convert(xs, ys)
}

func TestNearestEmpty(t *testing.T) {
	ix := BuildIndex(pointSet())
	_, ok := ix.Nearest(0, 0)
	assert.False(t, ok)
}

func TestNearestSimple(t *testing.T) {
	ix := BuildIndex(pointSet(0, 0, 10, 0, 10, 10, 0, 10))
	tests := []struct {
		name   string
		qx, qy float64
		want   int
	}{
		{"near origin", 0.3, 0.2, 0},
		{"near second", 9.7, 0.2, 1},
		{"near third", 10.2, 9.9, 2},
		{"near fourth", -0.3, 10.1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ix.Nearest(tt.qx, tt.qy)
			require.True(t, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestNearestMaxRadius(t *testing.T) {
	// Diagonal is ~14.14, so the search radius caps out well below the
	// distance from (100,100) to any point.
	ix := BuildIndex(pointSet(0, 0, 10, 10))
	_, ok := ix.Nearest(100, 100)
	assert.False(t, ok)

	// Right on top of a point it always hits.
	id, ok := ix.Nearest(10, 10)
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestNearestTieBreaksLowestID(t *testing.T) {
	// Three points at the exact same position: lowest id wins.
	ix := BuildIndex(pointSet(5, 5, 5, 5, 5, 5))
	id, ok := ix.Nearest(5, 5)
	require.True(t, ok)
	assert.Equal(t, 0, id)

	// Two points symmetric about the query are equidistant.
	ix = BuildIndex(pointSet(4, 5, 6, 5))
	id, ok = ix.Nearest(5, 5)
	require.True(t, ok)
	assert.Equal(t, 0, id)
}

func TestNearestIgnoresNonFinite(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	ix := BuildIndex(pointSet(nan, 0, 1, 1, inf, inf))
	id, ok := ix.Nearest(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = ix.Nearest(nan, 0)
	assert.False(t, ok)
}

func TestNearestMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 2000
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64()*200 - 100
		ys[i] = rng.Float64()*200 - 100
	}
	ps := Convert(xs, ys)
	ix := BuildIndex(ps)

	brute := func(qx, qy float64) (int, float64) {
		best, bestD2 := -1, math.Inf(1)
		for i := 0; i < ps.N; i++ {
			px, py := ps.At(i)
			d2 := (px-qx)*(px-qx) + (py-qy)*(py-qy)
			if d2 < bestD2 {
				best, bestD2 = i, d2
			}
		}
		return best, bestD2
	}

	for q := 0; q < 500; q++ {
		qx := rng.Float64()*240 - 120
		qy := rng.Float64()*240 - 120
		wantID, wantD2 := brute(qx, qy)
		gotID, ok := ix.Nearest(qx, qy)
		if wantD2 > ix.maxD2 {
			assert.False(t, ok, "query (%v,%v) beyond radius", qx, qy)
			continue
		}
		require.True(t, ok, "query (%v,%v)", qx, qy)
		assert.Equal(t, wantID, gotID, "query (%v,%v)", qx, qy)
	}
}

func TestNearestDegenerateExtent(t *testing.T) {
	// All points on one vertical line: zero-width bbox must not break the
	// grid math.
	ix := BuildIndex(pointSet(3, 0, 3, 1, 3, 2))
	id, ok := ix.Nearest(3, 1.04)
	require.True(t, ok)
	assert.Equal(t, 1, id)
}
