package jamjar

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BodyData places an entity in space. Box.HalfExtent is fixed at spawn;
// Box.Center is the entity's position and moves while the entity is dragged.
type BodyData struct {
	Box Box
	// Z orders entities for drawing and for pick/drop tie-breaks. Higher is on top.
	Z     int
	Space Space

	// seq is the spawn order, the last-resort tie-break for drawing and picking.
	seq uint64
}

// InteractionData carries an entity's capabilities and the transient states
// the engine writes each frame.
type InteractionData struct {
	Caps  Capability
	State StateFlags
}

// ButtonData is the press state machine of a UI button.
type ButtonData struct {
	State    ButtonState
	Disabled bool

	signal Signal
}

// Signal returns the interaction signal computed for the current frame.
func (b *ButtonData) Signal() Signal { return b.signal }

// AppearanceData describes how the renderer draws an entity.
type AppearanceData struct {
	Color Color
	// Tint is multiplied into Color. VisualFeedback animates it.
	Tint  Color
	Label string
	Image *ebiten.Image
	// Hidden entities are neither drawn nor hit-tested.
	Hidden bool

	tint tintTween
}

// TagData names an entity for scene code ("cauldron", "customer", ...).
// Value carries an optional scene-defined payload such as an ingredient id.
type TagData struct {
	Name  string
	Value int
}

// tintTween animates Tint toward a target color.
type tintTween struct {
	target Color
	from   Color
	tween  *gween.Tween
	active bool
}

var (
	// Body is the spatial component. Required for every interactive entity.
	Body = donburi.NewComponentType[BodyData]()
	// Interaction holds capabilities and interaction states.
	Interaction = donburi.NewComponentType[InteractionData]()
	// Button marks an entity as a UI button.
	Button = donburi.NewComponentType[ButtonData]()
	// Appearance is read by the renderer and written by VisualFeedback.
	Appearance = donburi.NewComponentType[AppearanceData]()
	// Tag names an entity for scene-level lookups.
	Tag = donburi.NewComponentType[TagData]()
)

// hidden reports whether entry carries an Appearance marked Hidden.
func hidden(entry *donburi.Entry) bool {
	return entry.HasComponent(Appearance) && Appearance.Get(entry).Hidden
}
