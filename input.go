package jamjar

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample is one frame of raw pointer input.
type PointerSample struct {
	// Moves holds the screen positions reported by pointer-moved events this
	// frame, oldest first. Empty when the pointer did not move.
	Moves []Vec2
	// JustPressed and JustReleased are the primary button edges of this frame.
	JustPressed  bool
	JustReleased bool
	// Held reports whether the primary button is down at the end of the frame.
	Held bool
}

// InputSource supplies one PointerSample per frame. The returned Moves slice
// is only valid until the next Poll.
type InputSource interface {
	Poll() PointerSample
}

// EbitenInput reads the mouse through ebiten. Ebiten exposes a polled cursor
// rather than an event stream, so a move is reported whenever the cursor
// position differs from the previous frame.
type EbitenInput struct {
	Button ebiten.MouseButton

	last  Vec2
	seen  bool
	moves []Vec2
}

// NewEbitenInput creates an input source for the left mouse button.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{Button: ebiten.MouseButtonLeft, moves: make([]Vec2, 0, 1)}
}

// Poll samples the cursor and the button edges for the current tick.
func (in *EbitenInput) Poll() PointerSample {
	x, y := ebiten.CursorPosition()
	p := Vec2{float64(x), float64(y)}

	in.moves = in.moves[:0]
	if !in.seen || p != in.last {
		in.moves = append(in.moves, p)
		in.last = p
		in.seen = true
	}

	return PointerSample{
		Moves:        in.moves,
		JustPressed:  inpututil.IsMouseButtonJustPressed(in.Button),
		JustReleased: inpututil.IsMouseButtonJustReleased(in.Button),
		Held:         ebiten.IsMouseButtonPressed(in.Button),
	}
}
