package jamjar

import (
	"errors"
	"testing"

	"github.com/yohamta/donburi"
)

const testDT = 1.0 / 60

// newTestEngine returns an 800x600 engine whose camera looks at (400, 300),
// so world coordinates equal window coordinates.
func newTestEngine(t *testing.T) (*Engine, *ScriptedInput) {
	t.Helper()
	e, err := NewEngine(Config{WindowWidth: 800, WindowHeight: 600})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	e.Camera().SetPosition(400, 300)
	in := NewScriptedInput(nil)
	e.SetInput(in)
	return e, in
}

// run calls Update n times.
func run(t *testing.T, e *Engine, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := e.Update(testDT); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
}

// drain runs Update until the scripted input is empty.
func drain(t *testing.T, e *Engine, in *ScriptedInput) {
	t.Helper()
	for in.Pending() > 0 {
		run(t, e, 1)
	}
}

func stateOf(e *Engine, ent donburi.Entity) StateFlags {
	return Interaction.Get(e.World().Entry(ent)).State
}

func centerOf(e *Engine, ent donburi.Entity) Vec2 {
	return Body.Get(e.World().Entry(ent)).Box.Center
}

func spawnItem(e *Engine, name string, x, y, w, h float64, z int, caps Capability) donburi.Entity {
	return e.Spawn(EntityDef{Name: name, Box: BoxFromSize(x, y, w, h), Z: z, Caps: caps})
}

func TestNewEngineInvalidWindow(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 600},
		{"zero height", 800, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(Config{WindowWidth: tt.w, WindowHeight: tt.h})
			if !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("err = %v, want ErrInvalidWindow", err)
			}
		})
	}
}

func TestUpdateWithoutCamera(t *testing.T) {
	e, in := newTestEngine(t)
	e.SetCamera(nil)
	in.InjectMove(10, 10)
	if err := e.Update(testDT); !errors.Is(err, ErrNoCamera) {
		t.Fatalf("Update err = %v, want ErrNoCamera", err)
	}
}

func TestSpawnComponents(t *testing.T) {
	e, _ := newTestEngine(t)

	plain := e.Spawn(EntityDef{Name: "backdrop", Box: BoxFromSize(0, 0, 10, 10)})
	item := spawnItem(e, "jar", 0, 0, 10, 10, 0, Draggable)
	btn := e.Spawn(EntityDef{Name: "ok", Box: BoxFromSize(0, 0, 10, 10), Button: true})

	if e.World().Entry(plain).HasComponent(Interaction) {
		t.Error("entity without caps has Interaction")
	}
	if !e.World().Entry(item).HasComponent(Interaction) {
		t.Error("draggable entity lacks Interaction")
	}
	if !e.World().Entry(btn).HasComponent(Button) {
		t.Error("button entity lacks Button")
	}
	if got := Appearance.Get(e.World().Entry(plain)).Color; got != ColorWhite {
		t.Errorf("default color = %v, want white", got)
	}
	if Body.Get(e.World().Entry(btn)).seq <= Body.Get(e.World().Entry(item)).seq {
		t.Error("spawn sequence not increasing")
	}
}

func TestFind(t *testing.T) {
	e, _ := newTestEngine(t)
	a := spawnItem(e, "token", 0, 0, 10, 10, 0, Draggable)
	b := spawnItem(e, "token", 20, 0, 10, 10, 0, Draggable)
	c := spawnItem(e, "cauldron", 40, 0, 10, 10, 0, DropTarget)

	if got, ok := e.Find("cauldron"); !ok || got != c {
		t.Errorf("Find(cauldron) = %v, %v; want %v", got, ok, c)
	}
	if _, ok := e.Find("missing"); ok {
		t.Error("Find(missing) succeeded")
	}
	all := e.FindAll("token")
	if len(all) != 2 {
		t.Fatalf("FindAll(token) = %v, want 2 entities", all)
	}
	seen := map[donburi.Entity]bool{all[0]: true, all[1]: true}
	if !seen[a] || !seen[b] {
		t.Errorf("FindAll(token) = %v, want %v and %v", all, a, b)
	}
}

func TestDespawnInsideCallbackIsDeferred(t *testing.T) {
	e, in := newTestEngine(t)
	jar := spawnItem(e, "jar", 100, 100, 40, 40, 0, Hoverable|Draggable)

	var validInCallback bool
	e.OnDropped(func(ev DroppedEvent) {
		e.Despawn(ev.Entity)
		validInCallback = e.World().Valid(ev.Entity)
	})

	in.InjectPress(100, 100)
	in.InjectRelease(100, 100)
	drain(t, e, in)

	if !validInCallback {
		t.Error("entity removed while callbacks were running")
	}
	if e.World().Valid(jar) {
		t.Error("entity still alive after Update")
	}
}

func TestClear(t *testing.T) {
	e, in := newTestEngine(t)
	jar := spawnItem(e, "jar", 100, 100, 40, 40, 0, Hoverable|Draggable)
	spawnItem(e, "shelf", 300, 100, 40, 40, 0, DropTarget)

	in.InjectPress(100, 100)
	drain(t, e, in)
	if _, ok := e.Dragging(); !ok {
		t.Fatal("expected an active drag")
	}

	e.Clear()
	if e.World().Valid(jar) {
		t.Error("jar survived Clear")
	}
	if _, ok := e.Dragging(); ok {
		t.Error("drag survived Clear")
	}
	in.InjectRelease(200, 200)
	drain(t, e, in)
	if n := e.Events().Len(); n != 0 {
		t.Errorf("events after Clear = %d, want 0", n)
	}
}

func TestEventsResetEachUpdate(t *testing.T) {
	e, in := newTestEngine(t)
	spawnItem(e, "jar", 100, 100, 40, 40, 0, Hoverable|Draggable)

	in.InjectPress(100, 100)
	run(t, e, 1)
	if len(e.Events().Dragged) != 1 {
		t.Fatalf("Dragged = %d, want 1", len(e.Events().Dragged))
	}
	run(t, e, 1)
	if e.Events().Len() != 0 {
		t.Errorf("events carried over: %+v", e.Events())
	}
}

func TestTickCounts(t *testing.T) {
	e, _ := newTestEngine(t)
	run(t, e, 3)
	if e.Tick() != 3 {
		t.Errorf("Tick = %d, want 3", e.Tick())
	}
}
