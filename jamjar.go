package jamjar

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Lerp returns the color t of the way from c to other.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Mul multiplies two colors component-wise.
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// RGBA converts the color to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Max(0, math.Min(1, v))*255 + 0.5)
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. Y increases downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Box is an axis-aligned bounding box defined by its center and half extent.
// Every hit test in the engine (hover, pick-up, drop, buttons) goes through
// Box.Contains.
type Box struct {
	Center     Vec2
	HalfExtent Vec2
}

// BoxFromSize builds a box centered on (cx, cy) with the given full size.
func BoxFromSize(cx, cy, w, h float64) Box {
	return Box{Center: Vec2{cx, cy}, HalfExtent: Vec2{w / 2, h / 2}}
}

// Min returns the top-left corner.
func (b Box) Min() Vec2 { return b.Center.Sub(b.HalfExtent) }

// Max returns the bottom-right corner.
func (b Box) Max() Vec2 { return b.Center.Add(b.HalfExtent) }

// Area returns the box area.
func (b Box) Area() float64 { return 4 * b.HalfExtent.X * b.HalfExtent.Y }

// Contains reports whether p lies strictly inside the box on both axes.
// Points exactly on an edge are outside.
func (b Box) Contains(p Vec2) bool {
	minX, maxX := b.Center.X-b.HalfExtent.X, b.Center.X+b.HalfExtent.X
	minY, maxY := b.Center.Y-b.HalfExtent.Y, b.Center.Y+b.HalfExtent.Y
	return minX < p.X && p.X < maxX &&
		minY < p.Y && p.Y < maxY
}

// Rect is an axis-aligned rectangle with its origin at the top-left, used for
// viewports and window-space layout.
type Rect struct {
	X, Y, Width, Height float64
}

// Capability is a bitmask of what the pointer may do with an entity. It is
// declared at spawn time and never changed by the engine.
type Capability uint8

const (
	Hoverable  Capability = 1 << iota // highlights under the pointer
	Draggable                         // can be picked up
	DropTarget                        // can receive a dropped entity
)

// Has reports whether all bits of o are set.
func (c Capability) Has(o Capability) bool { return c&o == o }

// Any reports whether any bit of o is set.
func (c Capability) Any(o Capability) bool { return c&o != 0 }

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var s string
	for _, f := range []struct {
		bit  Capability
		name string
	}{{Hoverable, "hoverable"}, {Draggable, "draggable"}, {DropTarget, "droptarget"}} {
		if c&f.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += f.name
		}
	}
	return s
}

// StateFlags is the bitmask of transient interaction states the engine writes
// each frame.
type StateFlags uint8

const (
	Hovered StateFlags = 1 << iota // pointer is over the entity
	Dragged                        // entity follows the pointer
	Dropped                        // released this frame, awaiting drop resolution
)

// Has reports whether all bits of o are set.
func (s StateFlags) Has(o StateFlags) bool { return s&o == o }

// ButtonState is the press state of a button entity.
type ButtonState uint8

const (
	Released ButtonState = iota // initial state
	Pressed                     // pressed down over the button, not yet committed
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// Signal is the per-frame interaction signal a button derives from the pointer.
type Signal uint8

const (
	SignalNone    Signal = iota // pointer is elsewhere
	SignalHovered               // pointer is over the button, not pressing it
	SignalClicked               // button was pressed down over the button and is held
)

func (s Signal) String() string {
	switch s {
	case SignalHovered:
		return "hovered"
	case SignalClicked:
		return "clicked"
	default:
		return "none"
	}
}

// Space selects which cursor coordinates a body is tested against.
type Space uint8

const (
	SpaceWorld  Space = iota // camera-transformed world coordinates
	SpaceScreen              // raw window coordinates, unaffected by the camera
)
