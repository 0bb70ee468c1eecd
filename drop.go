package jamjar

import "github.com/yohamta/donburi"

// DropResolver turns Dropped flags into events. Every dropped entity yields
// exactly one DroppedEvent, and at most one DroppedOntoEvent naming the best
// drop target under the cursor.
type DropResolver struct {
	// Pick chooses among overlapping drop targets. Nil means TopmostFirst.
	Pick PickPolicy
}

// Update resolves and clears every pending drop.
func (r *DropResolver) Update(f *Frame) {
	var dropped []donburi.Entity
	interactiveQuery.Each(f.World, func(entry *donburi.Entry) {
		if Interaction.Get(entry).State.Has(Dropped) {
			dropped = append(dropped, entry.Entity())
		}
	})

	for _, src := range dropped {
		var cands []Candidate
		interactiveQuery.Each(f.World, func(entry *donburi.Entry) {
			if entry.Entity() == src || hidden(entry) {
				return
			}
			in := Interaction.Get(entry)
			if !in.Caps.Has(DropTarget) || in.State.Has(Dragged) {
				return
			}
			body := Body.Get(entry)
			if body.Box.Contains(f.Cursor.At(body.Space)) {
				cands = append(cands, candidateOf(entry))
			}
		})
		if dst, ok := pickBest(cands, r.Pick); ok {
			f.events.emitDroppedOnto(src, dst.Entity)
			f.logf("drop %v onto %v (of %d targets)", src, dst.Entity, len(cands))
		} else {
			f.logf("drop %v onto nothing", src)
		}
		f.events.emitDropped(src)
		Interaction.Get(f.World.Entry(src)).State &^= Dropped
	}
}
