package jamjar

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestCallbackRemove(t *testing.T) {
	e, in := newTestEngine(t)
	spawnItem(e, "jar", 100, 100, 40, 40, 0, Hoverable|Draggable)

	var calls int
	h := e.OnDragged(func(DraggedEvent) { calls++ })

	in.InjectClick(100, 100)
	drain(t, e, in)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	h.Remove()
	h.Remove()
	in.InjectClick(100, 100)
	drain(t, e, in)
	if calls != 1 {
		t.Errorf("calls = %d after Remove, want 1", calls)
	}
}

func TestCallbackRemoveDuringDispatch(t *testing.T) {
	e, in := newTestEngine(t)
	spawnItem(e, "jar", 100, 100, 40, 40, 0, Hoverable|Draggable)

	var first, second int
	var h CallbackHandle
	h = e.OnDropped(func(DroppedEvent) {
		first++
		h.Remove()
	})
	e.OnDropped(func(DroppedEvent) { second++ })

	for i := 0; i < 2; i++ {
		in.InjectClick(100, 100)
		drain(t, e, in)
	}
	if first != 1 || second != 2 {
		t.Errorf("first = %d, second = %d; want 1 and 2", first, second)
	}
}

func TestZeroCallbackHandle(t *testing.T) {
	var h CallbackHandle
	h.Remove() // must not panic
}

func TestDonburiEventsPublished(t *testing.T) {
	e, in := newTestEngine(t)
	token := spawnItem(e, "token", 100, 100, 20, 20, 1, Hoverable|Draggable)
	pot := spawnItem(e, "cauldron", 400, 300, 100, 100, 0, DropTarget)

	var got []DroppedOntoEvent
	DroppedOntoEventType.Subscribe(e.World(), func(_ donburi.World, ev DroppedOntoEvent) {
		got = append(got, ev)
	})

	in.InjectDrag(100, 100, 400, 300, 3)
	drain(t, e, in)

	if len(got) != 1 || got[0].Src != token || got[0].Dst != pot {
		t.Errorf("subscribed events = %v", got)
	}
}

func TestEventTypeString(t *testing.T) {
	for typ, want := range map[EventType]string{
		EventDragged:       "dragged",
		EventDropped:       "dropped",
		EventDroppedOnto:   "dropped-onto",
		EventButtonPressed: "button-pressed",
		EventType(99):      "unknown",
	} {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
