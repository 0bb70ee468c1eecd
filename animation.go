package jamjar

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// TweenGroup animates up to 4 float64 fields of one entity simultaneously.
// Create one via TweenPosition or TweenColor and call Update(dt) each frame.
// If the target entity is removed, the group stops immediately.
//
// There is no global animation manager; scenes call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(entry *donburi.Entry, vals [4]float64)
	world  donburi.World
	target donburi.Entity
	Done   bool
}

// Target returns the animated entity.
func (g *TweenGroup) Target() donburi.Entity { return g.target }

// Update advances all tweens by dt seconds and writes the values to the
// target entity. If the entity no longer exists, Done is set and nothing is
// written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if !g.world.Valid(g.target) {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		v, finished := g.tweens[i].Update(dt)
		vals[i] = float64(v)
		if !finished {
			allDone = false
		}
	}
	g.apply(g.world.Entry(g.target), vals)
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that slides the entity's box center to
// (toX, toY). The entity must have a Body.
func TweenPosition(w donburi.World, e donburi.Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	c := Body.Get(w.Entry(e)).Box.Center
	g := &TweenGroup{count: 2, world: w, target: e}
	g.tweens[0] = gween.New(float32(c.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(c.Y), float32(toY), duration, fn)
	g.apply = func(entry *donburi.Entry, v [4]float64) {
		Body.Get(entry).Box.Center = Vec2{v[0], v[1]}
	}
	return g
}

// TweenColor creates a TweenGroup that fades the entity's base color to the
// given color. The entity must have an Appearance.
func TweenColor(w donburi.World, e donburi.Entity, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	c := Appearance.Get(w.Entry(e)).Color
	g := &TweenGroup{count: 4, world: w, target: e}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.apply = func(entry *donburi.Entry, v [4]float64) {
		Appearance.Get(entry).Color = Color{v[0], v[1], v[2], v[3]}
	}
	return g
}
