package scatter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorOf(buf []float32, i int) [3]float32 {
	base := i * VertexStride
	return [3]float32{buf[base+3], buf[base+4], buf[base+5]}
}

func TestBuildVertexBufferLayout(t *testing.T) {
	ps := pointSet(1, 4, 2, 5, 3, 6)
	buf := BuildVertexBuffer(ps)
	require.Len(t, buf, 3*VertexStride)
	for i := 0; i < 3; i++ {
		base := i * VertexStride
		x, y := ps.At(i)
		assert.Equal(t, float32(x), buf[base+0])
		assert.Equal(t, float32(y), buf[base+1])
		assert.Equal(t, float32(0), buf[base+2], "z stays zero for 2D")
		assert.Equal(t, [3]float32{0, 0, 0}, colorOf(buf, i), "colors start black")
	}
}

func TestEncodeCategoricalWraps(t *testing.T) {
	pal := Palette{{R: 1}, {G: 1}}
	buf := BuildVertexBuffer(pointSet(0, 0, 1, 1, 2, 2))
	EncodeColors(buf, &Column{Kind: Categorical, Codes: []int{0, 1, 2}}, pal)

	assert.Equal(t, [3]float32{1, 0, 0}, colorOf(buf, 0))
	assert.Equal(t, [3]float32{0, 1, 0}, colorOf(buf, 1))
	assert.Equal(t, [3]float32{1, 0, 0}, colorOf(buf, 2), "code 2 wraps onto palette[0]")
}

func TestEncodeNumericRedChannel(t *testing.T) {
	buf := BuildVertexBuffer(pointSet(0, 0, 1, 1, 2, 2))
	EncodeColors(buf, &Column{Kind: Numeric, Values: []float64{0, 5, 10}}, nil)

	assert.Equal(t, [3]float32{0, 0, 0}, colorOf(buf, 0))
	assert.Equal(t, [3]float32{0.5, 0, 0}, colorOf(buf, 1))
	assert.Equal(t, [3]float32{1, 0, 0}, colorOf(buf, 2))
}

func TestEncodeSparseBackgroundStaysBlack(t *testing.T) {
	buf := BuildVertexBuffer(pointSet(0, 0, 1, 1, 2, 2, 3, 3))
	col := &Column{Kind: SparseNumeric, Index: []int{1, 3}, Sparse: []float64{2, 4}}
	EncodeColors(buf, col, nil)

	assert.Equal(t, [3]float32{0, 0, 0}, colorOf(buf, 0))
	assert.Equal(t, [3]float32{0.5, 0, 0}, colorOf(buf, 1))
	assert.Equal(t, [3]float32{0, 0, 0}, colorOf(buf, 2))
	assert.Equal(t, [3]float32{1, 0, 0}, colorOf(buf, 3))
}

func TestEncodeNilColumnClears(t *testing.T) {
	buf := BuildVertexBuffer(pointSet(0, 0, 1, 1))
	EncodeColors(buf, &Column{Kind: Numeric, Values: []float64{1, 2}}, nil)
	require.NotEqual(t, [3]float32{0, 0, 0}, colorOf(buf, 1))

	EncodeColors(buf, nil, nil)
	assert.Equal(t, [3]float32{0, 0, 0}, colorOf(buf, 0))
	assert.Equal(t, [3]float32{0, 0, 0}, colorOf(buf, 1))
}

func TestEncodeSwitchingColumnsClearsStaleColors(t *testing.T) {
	buf := BuildVertexBuffer(pointSet(0, 0, 1, 1, 2, 2))
	EncodeColors(buf, &Column{Kind: Numeric, Values: []float64{1, 1, 1}}, nil)
	// Switch to a sparse column that only touches point 0: points 1 and 2
	// must fall back to background, not keep the numeric red.
	EncodeColors(buf, &Column{Kind: SparseNumeric, Index: []int{0}, Sparse: []float64{3}}, nil)

	assert.Equal(t, [3]float32{1, 0, 0}, colorOf(buf, 0))
	assert.Equal(t, [3]float32{0, 0, 0}, colorOf(buf, 1))
	assert.Equal(t, [3]float32{0, 0, 0}, colorOf(buf, 2))
}

func TestEncodeNeverEmitsNaN(t *testing.T) {
	buf := BuildVertexBuffer(pointSet(0, 0, 1, 1, 2, 2))
	col := &Column{Kind: Numeric, Values: []float64{math.NaN(), 0, math.Inf(1)}}
	EncodeColors(buf, col, nil)
	for i := range buf {
		assert.False(t, math.IsNaN(float64(buf[i])), "buf[%d] is NaN", i)
		assert.False(t, math.IsInf(float64(buf[i]), 0), "buf[%d] is Inf", i)
	}
}

func TestSafeMinMax(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantMin float64
		wantMax float64
	}{
		{"normal", []float64{2, 8, 5}, 2, 8},
		{"empty", nil, 0, 1},
		{"all zero", []float64{0, 0, 0}, 0, 1},
		{"all negative", []float64{-3, -1}, -3, 1},
		{"nan ignored", []float64{math.NaN(), 4}, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minV, maxV := SafeMinMax(tt.values)
			assert.Equal(t, tt.wantMin, minV)
			assert.Equal(t, tt.wantMax, maxV)
		})
	}
}
