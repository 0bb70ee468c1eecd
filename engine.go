package jamjar

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	// ErrNoCamera is returned by Engine.Update when no camera is set.
	ErrNoCamera = errors.New("no camera")
	// ErrNoCursor is returned when a CursorTracker has no cursor to write.
	ErrNoCursor = errors.New("no cursor state")
	// ErrInvalidWindow is returned by NewEngine for a non-positive window size.
	ErrInvalidWindow = errors.New("invalid window size")
)

// Config configures an Engine.
type Config struct {
	WindowWidth  float64 `yaml:"window_width"`
	WindowHeight float64 `yaml:"window_height"`
	// TintDuration is the hover/drag tint transition time in seconds.
	TintDuration float32 `yaml:"tint_duration"`
	Debug        bool    `yaml:"debug"`
	// Palette overrides DefaultPalette when non-nil.
	Palette *Palette `yaml:"-"`
}

// Frame is the per-frame context handed to every system. Cursor is a copy;
// systems cannot write the engine's cursor through it.
type Frame struct {
	World  donburi.World
	Cursor CursorState
	Input  PointerSample
	// DT is the frame duration in seconds.
	DT float64

	events *FrameEvents
	debug  bool
}

func (f *Frame) logf(format string, args ...any) {
	if !f.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[jamjar] "+format+"\n", args...)
}

// EntityDef describes an entity to spawn.
type EntityDef struct {
	Name  string
	Value int

	Box   Box
	Z     int
	Space Space

	// Caps adds an Interaction component when non-zero.
	Caps Capability
	// Button adds a Button component.
	Button   bool
	Disabled bool

	Color Color
	Label string
	Image *ebiten.Image
}

var tagQuery = donburi.NewQuery(filter.Contains(Tag))

// Engine owns the world, the camera, the cursor and the interaction systems,
// and runs them in a fixed order once per frame.
type Engine struct {
	world  donburi.World
	camera *Camera
	input  InputSource
	winW   float64
	winH   float64

	cursor   CursorState
	tracker  CursorTracker
	hover    HoverDetector
	drag     DragController
	drop     DropResolver
	buttons  ButtonMachine
	feedback VisualFeedback

	events   FrameEvents
	handlers handlerRegistry
	commands []RenderCommand
	stats    debugStats

	runner  *TestRunner
	shots   []string
	shotDir string

	seq      uint64
	tick     uint64
	updating bool
	doomed   []donburi.Entity
	debug    bool
}

// NewEngine creates an engine with an empty world, a camera centered on the
// world origin and ebiten mouse input.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return nil, fmt.Errorf("jamjar: new engine %gx%g: %w", cfg.WindowWidth, cfg.WindowHeight, ErrInvalidWindow)
	}
	e := &Engine{
		world:  donburi.NewWorld(),
		camera: NewCamera(),
		input:  NewEbitenInput(),
		winW:   cfg.WindowWidth,
		winH:   cfg.WindowHeight,
		debug:  cfg.Debug,
	}
	e.tracker.state = &e.cursor
	e.feedback = VisualFeedback{Palette: DefaultPalette, Duration: cfg.TintDuration}
	if cfg.Palette != nil {
		e.feedback.Palette = *cfg.Palette
	}
	return e, nil
}

// World returns the ECS world holding every entity.
func (e *Engine) World() donburi.World { return e.world }

// Camera returns the active camera, which may be nil.
func (e *Engine) Camera() *Camera { return e.camera }

// SetCamera replaces the camera. A nil camera makes Update fail.
func (e *Engine) SetCamera(c *Camera) { e.camera = c }

// SetInput replaces the pointer source. An attached TestRunner stops
// advancing unless src is a *ScriptedInput.
func (e *Engine) SetInput(src InputSource) { e.input = src }

// Input returns the pointer source.
func (e *Engine) Input() InputSource { return e.input }

// SetWindowSize updates the window size used to map the cursor. Non-positive
// sizes are ignored.
func (e *Engine) SetWindowSize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	e.winW, e.winH = w, h
}

// WindowSize returns the current window size.
func (e *Engine) WindowSize() (w, h float64) { return e.winW, e.winH }

// SetPickPolicy sets the tie-break used for both pick-up and drop.
func (e *Engine) SetPickPolicy(p PickPolicy) {
	e.drag.Pick = p
	e.drop.Pick = p
}

// SetDebugMode enables per-interaction logging to stderr.
func (e *Engine) SetDebugMode(enabled bool) { e.debug = enabled }

// SetPalette replaces the feedback tints.
func (e *Engine) SetPalette(p Palette) { e.feedback.Palette = p }

// Cursor returns a copy of the cursor state.
func (e *Engine) Cursor() CursorState { return e.cursor }

// Dragging returns the entity being dragged.
func (e *Engine) Dragging() (donburi.Entity, bool) { return e.drag.Active() }

// Events returns the events of the last Update. They stay valid until the
// next Update.
func (e *Engine) Events() *FrameEvents { return &e.events }

// Tick returns the number of completed updates.
func (e *Engine) Tick() uint64 { return e.tick }

// Spawn creates an entity from def and returns it.
func (e *Engine) Spawn(def EntityDef) donburi.Entity {
	comps := []donburi.IComponentType{Body, Appearance, Tag}
	if def.Caps != 0 {
		comps = append(comps, Interaction)
	}
	if def.Button {
		comps = append(comps, Button)
	}
	ent := e.world.Create(comps...)
	entry := e.world.Entry(ent)

	e.seq++
	Body.SetValue(entry, BodyData{Box: def.Box, Z: def.Z, Space: def.Space, seq: e.seq})
	col := def.Color
	if col == (Color{}) {
		col = ColorWhite
	}
	Appearance.SetValue(entry, AppearanceData{Color: col, Tint: ColorWhite, Label: def.Label, Image: def.Image})
	Tag.SetValue(entry, TagData{Name: def.Name, Value: def.Value})
	if def.Caps != 0 {
		Interaction.SetValue(entry, InteractionData{Caps: def.Caps})
	}
	if def.Button {
		Button.SetValue(entry, ButtonData{Disabled: def.Disabled})
	}
	return ent
}

// Despawn removes an entity. During Update, including inside event
// callbacks, removal is deferred to the end of the frame.
func (e *Engine) Despawn(ent donburi.Entity) {
	if e.updating {
		e.doomed = append(e.doomed, ent)
		return
	}
	if e.debugCheckEntity(ent, "despawn") {
		e.world.Remove(ent)
	}
}

// Clear despawns every entity and ends any drag without events.
func (e *Engine) Clear() {
	var all []donburi.Entity
	tagQuery.Each(e.world, func(entry *donburi.Entry) {
		all = append(all, entry.Entity())
	})
	for _, ent := range all {
		e.Despawn(ent)
	}
	if !e.updating {
		e.drag.cancel()
	}
}

// Find returns the first entity tagged name.
func (e *Engine) Find(name string) (donburi.Entity, bool) {
	found := donburi.Null
	ok := false
	tagQuery.Each(e.world, func(entry *donburi.Entry) {
		if !ok && Tag.Get(entry).Name == name {
			found, ok = entry.Entity(), true
		}
	})
	return found, ok
}

// FindAll returns every entity tagged name, in storage order.
func (e *Engine) FindAll(name string) []donburi.Entity {
	var out []donburi.Entity
	tagQuery.Each(e.world, func(entry *donburi.Entry) {
		if Tag.Get(entry).Name == name {
			out = append(out, entry.Entity())
		}
	})
	return out
}

// Entry returns the entry of a live entity, or nil.
func (e *Engine) Entry(ent donburi.Entity) *donburi.Entry {
	if !e.world.Valid(ent) {
		return nil
	}
	return e.world.Entry(ent)
}

// Update runs one frame: the cursor is tracked, hover is recomputed, a press
// picks up an entity, buttons are evaluated, the dragged entity follows the
// cursor, a release drops it, drops are resolved, tints are eased, callbacks
// run and deferred despawns apply.
// Events from the previous frame are discarded first.
func (e *Engine) Update(dt float64) error {
	var start time.Time
	if e.debug {
		start = time.Now()
	}
	e.events.reset()
	if e.runner != nil {
		if in, ok := e.input.(*ScriptedInput); ok {
			e.runner.step(e, in)
		}
	}
	sample := e.input.Poll()
	if err := e.tracker.Update(sample, e.camera, e.winW, e.winH); err != nil {
		return fmt.Errorf("jamjar: update cursor: %w", err)
	}

	f := &Frame{
		World:  e.world,
		Cursor: e.cursor,
		Input:  sample,
		DT:     dt,
		events: &e.events,
		debug:  e.debug,
	}

	e.updating = true
	e.hover.Update(f)
	e.drag.Press(f)
	e.buttons.Update(f)
	e.drag.Follow(f)
	e.drag.Release(f)
	e.drop.Update(f)
	e.feedback.Update(f)
	e.handlers.dispatch(&e.events)
	e.events.publish(e.world)
	e.updating = false

	for _, ent := range e.doomed {
		if e.world.Valid(ent) {
			e.world.Remove(ent)
		}
	}
	e.doomed = e.doomed[:0]
	e.tick++

	if e.debug {
		e.collectStats(time.Since(start))
		e.debugLog()
	}
	return nil
}
