package scatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// device projects a world position through the interactor's camera so a
// test can aim pointer events at known points.
func device(in *Interactor, wx, wy float64) (float64, float64) {
	return in.Camera.WorldToDevice(wx, wy)
}

func TestRectangleSelectEndToEnd(t *testing.T) {
	// Points 0 and 2 sit close together, point 1 far away.
	in := NewInteractor()
	in.SetDataset(pointSet(0, 0, 10, 10, 1, 1))
	require.Equal(t, ToolSelect, in.Tool())

	// Drag a rectangle around (0,0) and (1,1) without touching (10,10).
	dx, dy := device(in, -0.5, -0.5)
	in.PointerDown(dx, dy)
	dx, dy = device(in, 1.5, 1.5)
	in.PointerMove(dx, dy, true)
	ev := in.PointerUp(dx, dy)

	require.True(t, ev.SelectionCommitted)
	assert.Equal(t, []int{0, 2}, ev.Selection)
	assert.Nil(t, in.Selection(), "rectangle is consumed on pointer-up")
}

func TestClickReemitsHover(t *testing.T) {
	in := NewInteractor()
	in.SetDataset(pointSet(0, 0, 10, 10))

	// Hover right next to point 0, then click without moving.
	dx, dy := device(in, 0.01, 0.01)
	ev := in.PointerMove(dx, dy, false)
	require.True(t, ev.HoverChanged)
	require.Equal(t, 0, ev.Hovered)

	in.PointerDown(dx, dy)
	ev = in.PointerUp(dx, dy)
	require.True(t, ev.SelectionCommitted)
	assert.Equal(t, []int{0}, ev.Selection)
}

func TestClickOverEmptySpaceEmitsNothing(t *testing.T) {
	in := NewInteractor()
	in.SetDataset(pointSet(0, 0, 10, 10))

	// The center of the view is far from both points relative to the
	// search radius, so there is no hover to re-emit.
	dx, dy := device(in, 5, 5)
	ev := in.PointerMove(dx, dy, false)
	require.Equal(t, -1, ev.Hovered)

	in.PointerDown(dx, dy)
	ev = in.PointerUp(dx, dy)
	assert.False(t, ev.SelectionCommitted)
}

func TestHoverIsEdgeTriggered(t *testing.T) {
	in := NewInteractor()
	in.SetDataset(pointSet(0, 0, 10, 10))

	dx, dy := device(in, 0.01, 0.01)
	ev := in.PointerMove(dx, dy, false)
	require.True(t, ev.HoverChanged)

	dx, dy = device(in, 0.02, 0.02)
	ev = in.PointerMove(dx, dy, false)
	assert.False(t, ev.HoverChanged, "same nearest point must not re-report")
	assert.Equal(t, 0, ev.Hovered)

	dx, dy = device(in, 9.99, 9.99)
	ev = in.PointerMove(dx, dy, false)
	assert.True(t, ev.HoverChanged)
	assert.Equal(t, 1, ev.Hovered)
}

func TestSelectionWithoutDataEmitsNothing(t *testing.T) {
	in := NewInteractor()
	in.PointerDown(-0.5, -0.5)
	in.PointerMove(0.5, 0.5, true)
	ev := in.PointerUp(0.5, 0.5)
	assert.False(t, ev.SelectionCommitted)
	assert.Equal(t, -1, ev.Hovered)
}

func TestPanKeepsPointUnderCursor(t *testing.T) {
	in := NewInteractor()
	in.SetDataset(pointSet(0, 0, 10, 10))
	in.SelectTool(ToolZoom)

	start := [2]float64{-0.2, -0.3}
	wx, wy := in.Camera.DeviceToWorld(start[0], start[1])

	in.PointerDown(start[0], start[1])
	in.PointerMove(0.4, 0.1, true)
	gotX, gotY := in.Camera.DeviceToWorld(0.4, 0.1)
	assert.InDelta(t, wx, gotX, tol)
	assert.InDelta(t, wy, gotY, tol)
}

func TestWheelKeepsGestureAndZooms(t *testing.T) {
	in := NewInteractor()
	in.SetDataset(pointSet(0, 0, 10, 10))

	in.PointerMove(0.5, 0.5, false)
	wx, wy := in.Camera.DeviceToWorld(0.5, 0.5)

	zoomBefore := in.Camera.ZoomX
	ev := in.Wheel(100)
	assert.True(t, ev.Redraw)
	assert.InDelta(t, zoomBefore*10, in.Camera.ZoomX, tol)

	// The world point under the pointer stays put.
	dx, dy := in.Camera.WorldToDevice(wx, wy)
	assert.InDelta(t, 0.5, dx, tol)
	assert.InDelta(t, 0.5, dy, tol)
}

func TestZoomAllIsOneShot(t *testing.T) {
	in := NewInteractor()
	in.SetDataset(pointSet(0, 0, 10, 10))
	in.SelectTool(ToolZoom)

	// Wander off, then fit back.
	in.Camera.Pan(5, 5)
	in.Camera.ZoomAround(0, 0, 4)
	in.SelectTool(ToolZoomAll)

	assert.Equal(t, ToolZoom, in.Tool(), "zoom-all leaves the tool unchanged")
	dx, dy := in.Camera.WorldToDevice(0, 0)
	assert.InDelta(t, -1.0, dx, tol)
	assert.InDelta(t, -1.0, dy, tol)
}

func TestSetDatasetResetsHover(t *testing.T) {
	in := NewInteractor()
	in.SetDataset(pointSet(0, 0, 10, 10))
	dx, dy := device(in, 0.01, 0.01)
	ev := in.PointerMove(dx, dy, false)
	require.Equal(t, 0, ev.Hovered)

	// ids from the old dataset mean nothing after a reload
	in.SetDataset(pointSet(5, 5))
	assert.Equal(t, -1, in.Hovered())
}
