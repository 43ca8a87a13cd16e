package scatter

// Tool selects how pointer gestures are interpreted.
type Tool int

const (
	// ToolSelect draws a selection rectangle on drag and emits clicks.
	ToolSelect Tool = iota
	// ToolZoom pans the camera while the primary button is held.
	ToolZoom
	// ToolZoomAll is a one-shot camera fit to the dataset bounds; it never
	// becomes the active tool.
	ToolZoomAll
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolZoom:
		return "zoom"
	case ToolZoomAll:
		return "zoom-all"
	}
	return "unknown"
}

// gesture is the pointer gesture state, orthogonal to the tool mode.
type gesture int

const (
	gestureIdle gesture = iota
	gesturePanning
	gestureSelecting
)

// Events carries the outcomes of one interaction step back to the caller.
// Returning them from the transition keeps the engine decoupled from any
// event-loop or UI binding. Hover reporting is edge-triggered: HoverChanged
// is set only when the nearest point differs from the last reported one.
type Events struct {
	HoverChanged bool
	Hovered      int // -1 when nothing is hovered; valid whenever set

	SelectionCommitted bool
	Selection          []int // ascending point ids

	Redraw bool
}

// Interactor owns the camera, the current tool, the active selection
// rectangle, and the hover state. It consumes pointer and wheel events in
// normalized device coordinates and runs entirely on the caller's event
// thread; nothing here blocks or spawns goroutines.
type Interactor struct {
	Camera Camera

	tool  Tool
	state gesture

	points PointSet
	index  *ClosestPointIndex
	loaded bool

	sel            *Rectangle
	lastDX, lastDY float64
	hovered        int
}

func NewInteractor() *Interactor {
	return &Interactor{
		Camera:  NewCamera(),
		tool:    ToolSelect,
		hovered: -1,
	}
}

// SetDataset installs a new point set, rebuilds the spatial index, and
// fits the camera to the data. Hover and any in-flight gesture are reset
// because point ids from the previous dataset are meaningless now.
func (in *Interactor) SetDataset(ps PointSet) {
	in.points = ps
	in.index = BuildIndex(ps)
	in.loaded = true
	in.hovered = -1
	in.sel = nil
	in.state = gestureIdle
	in.Camera.FitBounds(ps.BBox)
}

// Loaded reports whether a dataset has been installed.
func (in *Interactor) Loaded() bool { return in.loaded }

// Points returns the current point set.
func (in *Interactor) Points() PointSet { return in.points }

// Tool returns the active pointer tool.
func (in *Interactor) Tool() Tool { return in.tool }

// Hovered returns the currently hovered point id, -1 for none.
func (in *Interactor) Hovered() int { return in.hovered }

// Selection returns the in-progress selection rectangle, nil outside a
// select drag.
func (in *Interactor) Selection() *Rectangle { return in.sel }

// SelectTool switches the pointer tool. ToolZoomAll fires a one-shot
// camera fit and leaves the previous tool active.
func (in *Interactor) SelectTool(t Tool) Events {
	if t == ToolZoomAll {
		if in.loaded {
			in.Camera.FitBounds(in.points.BBox)
		}
		return Events{Hovered: in.hovered, Redraw: true}
	}
	in.tool = t
	return Events{Hovered: in.hovered, Redraw: true}
}

// PointerDown begins a gesture at the given device position.
func (in *Interactor) PointerDown(dx, dy float64) Events {
	in.lastDX, in.lastDY = dx, dy
	switch in.tool {
	case ToolSelect:
		wx, wy := in.Camera.DeviceToWorld(dx, dy)
		in.state = gestureSelecting
		in.sel = &Rectangle{X1: wx, Y1: wy, X2: wx, Y2: wy}
		return Events{Hovered: in.hovered, Redraw: true}
	case ToolZoom:
		in.state = gesturePanning
	}
	return Events{Hovered: in.hovered}
}

// PointerMove updates hover, the active rectangle, and panning. primary
// reports whether the primary button is currently held.
func (in *Interactor) PointerMove(dx, dy float64, primary bool) Events {
	lastX, lastY := in.lastDX, in.lastDY
	in.lastDX, in.lastDY = dx, dy

	wx, wy := in.Camera.DeviceToWorld(dx, dy)

	ev := Events{}

	hov := -1
	if in.index != nil {
		if id, ok := in.index.Nearest(wx, wy); ok {
			hov = id
		}
	}
	if hov != in.hovered {
		in.hovered = hov
		ev.HoverChanged = true
		ev.Redraw = true
	}
	ev.Hovered = in.hovered

	switch in.state {
	case gestureSelecting:
		if in.sel != nil {
			in.sel.X2, in.sel.Y2 = wx, wy
			ev.Redraw = true
		}
	case gesturePanning:
		if primary {
			in.Camera.Pan(dx-lastX, dy-lastY)
			ev.Redraw = true
		} else {
			// The release happened outside our surface; fold back to idle.
			in.state = gestureIdle
		}
	}
	return ev
}

// PointerUp ends the active gesture. A zero-area select gesture is a
// click and re-emits the hovered point as a one-element selection; any
// other select gesture scans the rectangle. Without a loaded dataset the
// gesture is tracked but emits nothing.
func (in *Interactor) PointerUp(dx, dy float64) Events {
	ev := Events{Hovered: in.hovered}
	switch in.state {
	case gesturePanning:
		in.state = gestureIdle

	case gestureSelecting:
		in.state = gestureIdle
		if in.sel == nil {
			return ev
		}
		wx, wy := in.Camera.DeviceToWorld(dx, dy)
		in.sel.X2, in.sel.Y2 = wx, wy
		rect := *in.sel
		in.sel = nil
		ev.Redraw = true
		if !in.loaded {
			return ev
		}
		if rect.IsClick() {
			if in.hovered >= 0 {
				ev.SelectionCommitted = true
				ev.Selection = []int{in.hovered}
			}
		} else {
			ev.SelectionCommitted = true
			ev.Selection = in.points.SelectWithin(rect)
		}
	}
	return ev
}

// Wheel zooms around the current pointer position. It never changes the
// gesture state, so zooming mid-drag keeps the drag alive.
func (in *Interactor) Wheel(delta float64) Events {
	wx, wy := in.Camera.DeviceToWorld(in.lastDX, in.lastDY)
	in.Camera.ZoomAround(wx, wy, WheelScale(delta))
	return Events{Hovered: in.hovered, Redraw: true}
}
