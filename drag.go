package jamjar

import "github.com/yohamta/donburi"

// DragController owns the Dragged flag and the grab offset. At most one entity
// is dragged at a time.
type DragController struct {
	// Pick chooses among overlapping draggable entities. Nil means TopmostFirst.
	Pick PickPolicy

	active   donburi.Entity
	dragging bool
	offset   Vec2
}

// Active returns the entity being dragged.
func (d *DragController) Active() (donburi.Entity, bool) {
	return d.active, d.dragging
}

// Press picks up the best hovered draggable entity on the button-down edge.
func (d *DragController) Press(f *Frame) {
	if f.Input.JustPressed && !d.dragging {
		d.pickUp(f)
	}
}

// Release marks the dragged entity Dropped on the button-up edge. It runs
// after Follow so the entity lands where the button was released. Press and
// Release may both act in the same frame.
func (d *DragController) Release(f *Frame) {
	if f.Input.JustReleased && d.dragging {
		d.release(f)
	}
}

func (d *DragController) pickUp(f *Frame) {
	var cands []Candidate
	interactiveQuery.Each(f.World, func(entry *donburi.Entry) {
		in := Interaction.Get(entry)
		if !in.Caps.Has(Draggable) || !in.State.Has(Hovered) || in.State.Has(Dragged) || hidden(entry) {
			return
		}
		// Hovered is stale when the entity moved under a still cursor.
		body := Body.Get(entry)
		if !body.Box.Contains(f.Cursor.At(body.Space)) {
			in.State &^= Hovered
			return
		}
		cands = append(cands, candidateOf(entry))
	})
	best, ok := pickBest(cands, d.Pick)
	if !ok {
		return
	}
	entry := f.World.Entry(best.Entity)
	body := Body.Get(entry)
	in := Interaction.Get(entry)

	d.offset = body.Box.Center.Sub(f.Cursor.At(body.Space))
	d.active = best.Entity
	d.dragging = true
	in.State |= Dragged
	in.State &^= Dropped
	f.events.emitDragged(best.Entity)
	f.logf("drag start %v (of %d candidates)", best.Entity, len(cands))
}

func (d *DragController) release(f *Frame) {
	d.dragging = false
	if !f.World.Valid(d.active) {
		f.logf("drag target %v vanished before release", d.active)
		return
	}
	entry := f.World.Entry(d.active)
	in := Interaction.Get(entry)
	in.State &^= Dragged
	in.State |= Dropped

	// Hover skipped the entity while it was carried.
	body := Body.Get(entry)
	if in.Caps.Has(Hoverable) && !hidden(entry) && body.Box.Contains(f.Cursor.At(body.Space)) {
		in.State |= Hovered
	} else {
		in.State &^= Hovered
	}
}

// Follow moves the dragged entity so that it keeps its grab offset from the
// cursor.
func (d *DragController) Follow(f *Frame) {
	if !d.dragging {
		return
	}
	if !f.World.Valid(d.active) {
		f.logf("drag target %v vanished", d.active)
		d.dragging = false
		return
	}
	body := Body.Get(f.World.Entry(d.active))
	body.Box.Center = f.Cursor.At(body.Space).Add(d.offset)
}

// cancel ends a drag without emitting events. Used when the world is cleared.
func (d *DragController) cancel() {
	d.dragging = false
	d.active = donburi.Null
}
