package jamjar

// CursorState is the engine's single view of the pointer. It is written only
// by the CursorTracker; every other system reads the copy carried by Frame.
type CursorState struct {
	// Screen is the last reported window position, in pixels.
	Screen Vec2
	// World is Screen mapped through the camera.
	World Vec2
	// Moved reports whether a pointer-moved event was consumed this frame.
	Moved bool
}

// At returns the cursor position in the given coordinate space.
func (c CursorState) At(space Space) Vec2 {
	if space == SpaceScreen {
		return c.Screen
	}
	return c.World
}

// CursorTracker converts raw pointer samples into CursorState. It holds the
// only writable reference to the engine's cursor.
type CursorTracker struct {
	state *CursorState
}

// Update consumes the first pointer-moved event of the sample, if any, and
// maps it into world space through cam for a window of size (winW, winH).
// A nil camera is a configuration error.
func (t *CursorTracker) Update(sample PointerSample, cam *Camera, winW, winH float64) error {
	if cam == nil {
		return ErrNoCamera
	}
	if t.state == nil {
		return ErrNoCursor
	}
	if len(sample.Moves) == 0 {
		t.state.Moved = false
		return nil
	}
	p := sample.Moves[0]
	wx, wy := cam.ScreenToWorld(p.X, p.Y, winW, winH)
	t.state.Screen = p
	t.state.World = Vec2{wx, wy}
	t.state.Moved = true
	return nil
}
