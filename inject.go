package jamjar

// syntheticFrame is one queued frame of injected pointer input.
// Screen coordinates are used and converted to world coordinates via the
// camera, identical to real mouse input.
type syntheticFrame struct {
	moves    []Vec2
	pressed  bool
	released bool
}

// ScriptedInput is an InputSource fed by queued synthetic frames. Each Poll
// consumes one frame. When the queue is empty it falls back to Fallback, or
// reports an idle frame if Fallback is nil.
type ScriptedInput struct {
	Fallback InputSource

	queue []syntheticFrame
	held  bool
	moves []Vec2
}

// NewScriptedInput creates a scripted source. fallback may be nil.
func NewScriptedInput(fallback InputSource) *ScriptedInput {
	return &ScriptedInput{Fallback: fallback}
}

// Pending returns the number of queued frames not yet consumed.
func (in *ScriptedInput) Pending() int {
	return len(in.queue)
}

// Held reports whether the synthetic button is currently down.
func (in *ScriptedInput) Held() bool {
	return in.held
}

// InjectMove queues a frame with a single pointer move to (x, y).
func (in *ScriptedInput) InjectMove(x, y float64) {
	in.queue = append(in.queue, syntheticFrame{moves: []Vec2{{x, y}}})
}

// InjectMoves queues one frame carrying several pointer-moved events, in order.
func (in *ScriptedInput) InjectMoves(points ...Vec2) {
	in.queue = append(in.queue, syntheticFrame{moves: append([]Vec2(nil), points...)})
}

// InjectIdle queues n frames with no movement and no button edges.
func (in *ScriptedInput) InjectIdle(n int) {
	for i := 0; i < n; i++ {
		in.queue = append(in.queue, syntheticFrame{})
	}
}

// InjectPress queues a frame that moves to (x, y) and presses the button.
func (in *ScriptedInput) InjectPress(x, y float64) {
	in.queue = append(in.queue, syntheticFrame{moves: []Vec2{{x, y}}, pressed: true})
}

// InjectPressInPlace queues a press without a pointer-moved event.
func (in *ScriptedInput) InjectPressInPlace() {
	in.queue = append(in.queue, syntheticFrame{pressed: true})
}

// InjectRelease queues a frame that moves to (x, y) and releases the button.
func (in *ScriptedInput) InjectRelease(x, y float64) {
	in.queue = append(in.queue, syntheticFrame{moves: []Vec2{{x, y}}, released: true})
}

// InjectReleaseInPlace queues a release without a pointer-moved event.
func (in *ScriptedInput) InjectReleaseInPlace() {
	in.queue = append(in.queue, syntheticFrame{released: true})
}

// InjectTap queues a single frame that moves to (x, y) and both presses and
// releases the button.
func (in *ScriptedInput) InjectTap(x, y float64) {
	in.queue = append(in.queue, syntheticFrame{moves: []Vec2{{x, y}}, pressed: true, released: true})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (in *ScriptedInput) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (in *ScriptedInput) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// Poll pops one queued frame.
func (in *ScriptedInput) Poll() PointerSample {
	if len(in.queue) == 0 {
		if in.Fallback != nil {
			return in.Fallback.Poll()
		}
		return PointerSample{Held: in.held}
	}
	f := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]

	if f.pressed {
		in.held = true
	}
	if f.released {
		in.held = false
	}
	in.moves = append(in.moves[:0], f.moves...)
	return PointerSample{
		Moves:        in.moves,
		JustPressed:  f.pressed,
		JustReleased: f.released,
		Held:         in.held,
	}
}
