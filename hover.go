package jamjar

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var interactiveQuery = donburi.NewQuery(filter.Contains(Body, Interaction))

// HoverDetector sets and clears the Hovered flag. It only runs on frames in
// which the cursor moved; otherwise the flags keep their previous values.
type HoverDetector struct{}

// Update recomputes Hovered for every hoverable or drop-target entity that is
// not itself being dragged. A drop target that is not also Hoverable is only
// highlighted while some other entity is being dragged.
func (h *HoverDetector) Update(f *Frame) {
	if !f.Cursor.Moved {
		return
	}
	dragging := anyDragged(f.World)
	interactiveQuery.Each(f.World, func(entry *donburi.Entry) {
		in := Interaction.Get(entry)
		if !in.Caps.Any(Hoverable|DropTarget) || in.State.Has(Dragged) {
			return
		}
		if hidden(entry) || (!in.Caps.Has(Hoverable) && !dragging) {
			in.State &^= Hovered
			return
		}
		body := Body.Get(entry)
		if body.Box.Contains(f.Cursor.At(body.Space)) {
			in.State |= Hovered
		} else {
			in.State &^= Hovered
		}
	})
}

func anyDragged(w donburi.World) bool {
	found := false
	interactiveQuery.Each(w, func(entry *donburi.Entry) {
		if Interaction.Get(entry).State.Has(Dragged) {
			found = true
		}
	})
	return found
}
