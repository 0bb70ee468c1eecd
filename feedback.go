package jamjar

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var appearanceQuery = donburi.NewQuery(filter.And(
	filter.Contains(Appearance),
	filter.Or(filter.Contains(Interaction), filter.Contains(Button)),
))

// Palette holds the tints VisualFeedback applies per state.
type Palette struct {
	Normal  Color
	Hovered Color
	Dragged Color

	ButtonNormal  Color
	ButtonHovered Color
	ButtonPressed Color
}

// DefaultPalette highlights hovered items in red and dragged items in green,
// and darkens pressed buttons.
var DefaultPalette = Palette{
	Normal:        ColorWhite,
	Hovered:       Color{1, 0.55, 0.55, 1},
	Dragged:       Color{0.55, 1, 0.55, 1},
	ButtonNormal:  Color{0.8, 0.8, 0.8, 1},
	ButtonHovered: Color{0.8, 0.8, 0.8, 1},
	ButtonPressed: Color{0.6, 0.6, 0.6, 1},
}

// VisualFeedback eases each entity's Appearance.Tint toward the palette color
// for its current state. It reads interaction states and never writes them.
type VisualFeedback struct {
	Palette Palette
	// Duration of a tint transition in seconds. Zero snaps immediately.
	Duration float32
	// Ease is the easing curve. Nil means ease.OutQuad.
	Ease ease.TweenFunc
}

// TintFor returns the palette color for an entity's current state. Button
// styling takes precedence over interaction styling.
func (v *VisualFeedback) TintFor(entry *donburi.Entry) Color {
	if entry.HasComponent(Button) {
		b := Button.Get(entry)
		switch {
		case b.State == Pressed:
			return v.Palette.ButtonPressed
		case b.signal == SignalHovered:
			return v.Palette.ButtonHovered
		default:
			return v.Palette.ButtonNormal
		}
	}
	st := Interaction.Get(entry).State
	switch {
	case st.Has(Dragged):
		return v.Palette.Dragged
	case st.Has(Hovered):
		return v.Palette.Hovered
	default:
		return v.Palette.Normal
	}
}

// Update retargets and advances every tint tween by f.DT.
func (v *VisualFeedback) Update(f *Frame) {
	fn := v.Ease
	if fn == nil {
		fn = ease.OutQuad
	}
	appearanceQuery.Each(f.World, func(entry *donburi.Entry) {
		a := Appearance.Get(entry)
		a.tint.retarget(a.Tint, v.TintFor(entry), v.Duration, fn)
		a.Tint = a.tint.step(a.Tint, float32(f.DT))
	})
}

// retarget starts a new transition from cur when target changes.
func (t *tintTween) retarget(cur, target Color, duration float32, fn ease.TweenFunc) {
	if t.target == target && (t.active || cur == target) {
		return
	}
	t.target = target
	t.from = cur
	if duration <= 0 {
		t.tween = nil
		t.active = true
		return
	}
	t.tween = gween.New(0, 1, duration, fn)
	t.active = true
}

// step advances the transition by dt and returns the tint to display.
func (t *tintTween) step(cur Color, dt float32) Color {
	if !t.active {
		return cur
	}
	if t.tween == nil {
		t.active = false
		return t.target
	}
	k, done := t.tween.Update(dt)
	if done {
		t.active = false
		return t.target
	}
	return t.from.Lerp(t.target, float64(k))
}
