package jamjar

// Camera maps window pixels into the world. The window center looks at
// (X, Y); Zoom > 1 magnifies, Rotation is in radians (clockwise).
type Camera struct {
	X, Y     float64
	Zoom     float64
	Rotation float64

	matrix    [6]float64
	invMatrix [6]float64
	dirty     bool
}

// NewCamera creates a camera centered on the world origin with zoom 1.
func NewCamera() *Camera {
	return &Camera{Zoom: 1, dirty: true}
}

// SetPosition moves the camera and marks its matrix dirty.
func (c *Camera) SetPosition(x, y float64) {
	c.X, c.Y = x, y
	c.dirty = true
}

// SetZoom sets the zoom factor. Non-positive values are ignored.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.Zoom = z
	c.dirty = true
}

// SetRotation sets the camera rotation in radians.
func (c *Camera) SetRotation(r float64) {
	c.Rotation = r
	c.dirty = true
}

// MarkDirty forces a recomputation of the transform matrix. Call it after
// writing X, Y, Zoom or Rotation directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// Transform returns the camera's world transform:
//
//	Translate(X, Y) * Rotate(Rotation) * Scale(1/Zoom)
//
// It maps a window-centered point (origin at the window center) into world space.
func (c *Camera) Transform() [6]float64 {
	c.computeMatrix()
	return c.matrix
}

func (c *Camera) computeMatrix() {
	if !c.dirty {
		return
	}
	c.dirty = false
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	c.matrix = composeTransform(c.X, c.Y, c.Rotation, 1/z, 1/z)
	c.invMatrix = invertAffine(c.matrix)
}

// ScreenToWorld converts window pixel coordinates to world coordinates for a
// window of size (winW, winH): the point is recentered on the window middle,
// then the camera transform is applied.
func (c *Camera) ScreenToWorld(sx, sy, winW, winH float64) (wx, wy float64) {
	c.computeMatrix()
	return transformPoint(c.matrix, sx-winW/2, sy-winH/2)
}

// WorldToScreen converts world coordinates back to window pixels.
func (c *Camera) WorldToScreen(wx, wy, winW, winH float64) (sx, sy float64) {
	c.computeMatrix()
	x, y := transformPoint(c.invMatrix, wx, wy)
	return x + winW/2, y + winH/2
}

// ViewMatrix returns the world-to-window affine matrix for a window of size
// (winW, winH). Used by the renderer.
func (c *Camera) ViewMatrix(winW, winH float64) [6]float64 {
	c.computeMatrix()
	return multiplyAffine([6]float64{1, 0, 0, 1, winW / 2, winH / 2}, c.invMatrix)
}

// VisibleBounds returns the axis-aligned world rectangle visible through a
// window of the given size.
func (c *Camera) VisibleBounds(winW, winH float64) Rect {
	x0, y0 := c.ScreenToWorld(0, 0, winW, winH)
	x1, y1 := c.ScreenToWorld(winW, 0, winW, winH)
	x2, y2 := c.ScreenToWorld(winW, winH, winW, winH)
	x3, y3 := c.ScreenToWorld(0, winH, winW, winH)

	minX := min(x0, x1, x2, x3)
	minY := min(y0, y1, y2, y3)
	maxX := max(x0, x1, x2, x3)
	maxY := max(y0, y1, y2, y3)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
