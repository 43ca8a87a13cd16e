package scatter

import "math"

// minFitExtent substitutes for a degenerate bounding-box extent so a fit
// never divides by zero.
const minFitExtent = 1e-9

// Camera maps between world (data) coordinates and normalized device
// coordinates in [-1,1] on both axes. Device y grows downward, matching
// the pointer-event convention of the frontend. Zoom factors are the
// world-to-device scale per axis and stay strictly positive.
type Camera struct {
	X     float64 // world-space center
	Y     float64
	ZoomX float64
	ZoomY float64
}

func NewCamera() Camera {
	return Camera{ZoomX: 1, ZoomY: 1}
}

// WorldToDevice projects a world point into device space.
func (c Camera) WorldToDevice(wx, wy float64) (float64, float64) {
	return (wx - c.X) * c.ZoomX, (wy - c.Y) * c.ZoomY
}

// DeviceToWorld is the exact inverse of WorldToDevice.
func (c Camera) DeviceToWorld(dx, dy float64) (float64, float64) {
	return dx/c.ZoomX + c.X, dy/c.ZoomY + c.Y
}

// Pan shifts the center by a device-space delta, scaled by the inverse
// zoom, so the world point under the cursor tracks the drag exactly.
func (c *Camera) Pan(ddx, ddy float64) {
	c.X -= ddx / c.ZoomX
	c.Y -= ddy / c.ZoomY
}

// ZoomAround rescales both axes by scale while keeping the world point
// (wx, wy) at its current device position. Non-positive or non-finite
// scales are ignored.
func (c *Camera) ZoomAround(wx, wy, scale float64) {
	if !(scale > 0) || !isFinite(scale) {
		return
	}
	// Keeping (wx,wy)*zoom' relative to the new center equal to its old
	// device position pins the point under the cursor.
	c.X = wx - (wx-c.X)/scale
	c.Y = wy - (wy-c.Y)/scale
	c.ZoomX *= scale
	c.ZoomY *= scale
}

// WheelScale converts a wheel delta into a multiplicative zoom factor.
// Opposite deltas compound to exactly 1, so zoom in and out are inverses.
func WheelScale(delta float64) float64 {
	return math.Pow(10, delta/100)
}

// FitBounds centers the camera on the box and scales each axis
// independently so the box exactly fills the [-1,1] viewport. Degenerate
// extents fall back to a minimum; an invalid box leaves the camera alone.
func (c *Camera) FitBounds(b BBox) {
	if !b.Valid() {
		return
	}
	w := b.MaxX - b.MinX
	h := b.MaxY - b.MinY
	if w < minFitExtent {
		w = minFitExtent
	}
	if h < minFitExtent {
		h = minFitExtent
	}
	c.X = (b.MinX + b.MaxX) / 2
	c.Y = (b.MinY + b.MaxY) / 2
	c.ZoomX = 2 / w
	c.ZoomY = 2 / h
}
