package jamjar

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPosition(t *testing.T) {
	e, _ := newTestEngine(t)
	jar := spawnItem(e, "jar", 0, 0, 10, 10, 0, Draggable)

	g := TweenPosition(e.World(), jar, 100, 50, 1, ease.Linear)
	g.Update(0.5)
	if got := centerOf(e, jar); !approxEqual(got.X, 50, 1e-4) || !approxEqual(got.Y, 25, 1e-4) {
		t.Errorf("halfway = %v, want (50,25)", got)
	}
	if g.Done {
		t.Error("Done before the end")
	}
	g.Update(0.6)
	if got := centerOf(e, jar); !approxEqual(got.X, 100, 1e-4) || !approxEqual(got.Y, 50, 1e-4) {
		t.Errorf("end = %v, want (100,50)", got)
	}
	if !g.Done {
		t.Error("not Done after the duration")
	}
}

func TestTweenColor(t *testing.T) {
	e, _ := newTestEngine(t)
	jar := e.Spawn(EntityDef{Name: "jar", Box: BoxFromSize(0, 0, 10, 10), Color: Color{0, 0, 0, 1}})

	g := TweenColor(e.World(), jar, Color{1, 1, 1, 1}, 2, ease.Linear)
	g.Update(1)
	got := Appearance.Get(e.World().Entry(jar)).Color
	if !approxEqual(got.R, 0.5, 1e-4) || !approxEqual(got.A, 1, 1e-4) {
		t.Errorf("halfway = %v", got)
	}
}

func TestTweenStopsOnRemovedEntity(t *testing.T) {
	e, _ := newTestEngine(t)
	jar := spawnItem(e, "jar", 0, 0, 10, 10, 0, Draggable)
	g := TweenPosition(e.World(), jar, 100, 0, 1, ease.Linear)

	e.Despawn(jar)
	g.Update(0.1)
	if !g.Done {
		t.Error("tween kept running for a removed entity")
	}
}
