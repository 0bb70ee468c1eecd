package jamjar

import "testing"

func TestHoverSetAndClear(t *testing.T) {
	e, in := newTestEngine(t)
	jar := spawnItem(e, "jar", 100, 100, 40, 40, 0, Hoverable)

	in.InjectMove(100, 100)
	run(t, e, 1)
	if !stateOf(e, jar).Has(Hovered) {
		t.Fatal("not hovered with cursor inside")
	}

	in.InjectMove(300, 300)
	run(t, e, 1)
	if stateOf(e, jar).Has(Hovered) {
		t.Error("still hovered after leaving")
	}
}

func TestHoverEdgeIsOutside(t *testing.T) {
	e, in := newTestEngine(t)
	jar := spawnItem(e, "jar", 100, 100, 40, 40, 0, Hoverable) // 80..120

	for _, p := range []Vec2{{80, 100}, {120, 100}, {100, 80}, {100, 120}} {
		in.InjectMove(p.X, p.Y)
		run(t, e, 1)
		if stateOf(e, jar).Has(Hovered) {
			t.Errorf("hovered at edge point %v", p)
		}
	}
}

func TestHoverKeepsFlagsWithoutMovement(t *testing.T) {
	e, in := newTestEngine(t)
	jar := spawnItem(e, "jar", 100, 100, 40, 40, 0, Hoverable)

	in.InjectMove(100, 100)
	run(t, e, 1)

	// Moving the entity away does not clear the flag until the cursor moves.
	Body.Get(e.World().Entry(jar)).Box.Center = Vec2{500, 500}
	in.InjectIdle(3)
	drain(t, e, in)
	if !stateOf(e, jar).Has(Hovered) {
		t.Error("flag cleared on frames without movement")
	}

	in.InjectMove(101, 101)
	run(t, e, 1)
	if stateOf(e, jar).Has(Hovered) {
		t.Error("flag kept after movement away")
	}
}

func TestHoverNonHoverableIgnored(t *testing.T) {
	e, in := newTestEngine(t)
	jar := spawnItem(e, "jar", 100, 100, 40, 40, 0, Draggable)

	in.InjectMove(100, 100)
	run(t, e, 1)
	if stateOf(e, jar).Has(Hovered) {
		t.Error("draggable-only entity became hovered")
	}
}

func TestHoverDropTargetOnlyWhileDragging(t *testing.T) {
	e, in := newTestEngine(t)
	token := spawnItem(e, "token", 100, 100, 20, 20, 1, Hoverable|Draggable)
	pot := spawnItem(e, "cauldron", 400, 300, 100, 100, 0, DropTarget)

	in.InjectMove(400, 300)
	run(t, e, 1)
	if stateOf(e, pot).Has(Hovered) {
		t.Fatal("drop target hovered with no drag in progress")
	}

	in.InjectPress(100, 100)
	in.InjectMove(390, 300)
	in.InjectMove(400, 300)
	drain(t, e, in)
	if !stateOf(e, token).Has(Dragged) {
		t.Fatal("token not dragged")
	}
	if !stateOf(e, pot).Has(Hovered) {
		t.Error("drop target not hovered during drag")
	}
}

func TestHoverSkipsDraggedEntity(t *testing.T) {
	e, in := newTestEngine(t)
	token := spawnItem(e, "token", 100, 100, 20, 20, 0, Hoverable|Draggable)

	in.InjectPress(100, 100)
	in.InjectMove(150, 150)
	drain(t, e, in)

	st := stateOf(e, token)
	if !st.Has(Dragged) || !st.Has(Hovered) {
		t.Errorf("state = %b, want Dragged|Hovered kept from pick-up", st)
	}
}

func TestHoverHiddenEntity(t *testing.T) {
	e, in := newTestEngine(t)
	jar := spawnItem(e, "jar", 100, 100, 40, 40, 0, Hoverable)
	Appearance.Get(e.World().Entry(jar)).Hidden = true

	in.InjectMove(100, 100)
	run(t, e, 1)
	if stateOf(e, jar).Has(Hovered) {
		t.Error("hidden entity hovered")
	}
}

func TestHoverScreenSpace(t *testing.T) {
	e, in := newTestEngine(t)
	e.Camera().SetPosition(5000, 5000)
	hud := e.Spawn(EntityDef{Name: "hud", Box: BoxFromSize(50, 50, 40, 40), Space: SpaceScreen, Caps: Hoverable})
	world := spawnItem(e, "jar", 50, 50, 40, 40, 0, Hoverable)

	in.InjectMove(50, 50)
	run(t, e, 1)
	if !stateOf(e, hud).Has(Hovered) {
		t.Error("screen-space entity not hovered")
	}
	if stateOf(e, world).Has(Hovered) {
		t.Error("world entity hovered although the camera looks elsewhere")
	}
}
