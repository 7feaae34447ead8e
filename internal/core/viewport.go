package core

import "math"

// Viewport maps world coordinates (origin bottom-left, y up) onto a device
// grid (origin top-left, y down) of the given size.
type Viewport struct {
	WorldW, WorldH   float64
	DeviceW, DeviceH float64
}

// NewViewport creates a viewport scaling world onto device.
func NewViewport(worldW, worldH, deviceW, deviceH float64) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, DeviceW: deviceW, DeviceH: deviceH}
}

// ScaleX returns device units per world unit horizontally.
func (v Viewport) ScaleX() float64 {
	if v.WorldW == 0 {
		return 0
	}
	return v.DeviceW / v.WorldW
}

// ScaleY returns device units per world unit vertically.
func (v Viewport) ScaleY() float64 {
	if v.WorldH == 0 {
		return 0
	}
	return v.DeviceH / v.WorldH
}

// Point maps a world point to device coordinates.
func (v Viewport) Point(x, y float64) (float64, float64) {
	return x * v.ScaleX(), (v.WorldH - y) * v.ScaleY()
}

// Box maps a world shape to its device top-left corner and size.
func (v Viewport) Box(s Shape) (x, y, w, h float64) {
	x, y = v.Point(s.Left(), s.Top())
	return x, y, s.W * v.ScaleX(), s.H * v.ScaleY()
}

// Cells maps a world shape onto whole device cells. Any shape with a
// non-zero extent covers at least one cell.
func (v Viewport) Cells(s Shape) Rect {
	x, y, w, h := v.Box(s)
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x + w))
	y1 := int(math.Ceil(y + h))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}
