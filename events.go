package jamjar

import (
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType identifies an interaction event kind.
type EventType uint8

const (
	EventDragged       EventType = iota // an entity was picked up
	EventDropped                        // a dragged entity was released
	EventDroppedOnto                    // a released entity landed on a drop target
	EventButtonPressed                  // a button completed a press and release
)

func (t EventType) String() string {
	switch t {
	case EventDragged:
		return "dragged"
	case EventDropped:
		return "dropped"
	case EventDroppedOnto:
		return "dropped-onto"
	case EventButtonPressed:
		return "button-pressed"
	default:
		return "unknown"
	}
}

// DraggedEvent is emitted on the frame an entity is picked up.
type DraggedEvent struct {
	Entity donburi.Entity
}

// DroppedEvent is emitted on the frame a dragged entity is released,
// whether or not it landed on a target.
type DroppedEvent struct {
	Entity donburi.Entity
}

// DroppedOntoEvent is emitted when a released entity lands on a drop target.
// It is always accompanied by a DroppedEvent for Src in the same frame.
type DroppedOntoEvent struct {
	Src donburi.Entity
	Dst donburi.Entity
}

// ButtonPressedEvent is emitted once per completed press-and-release.
type ButtonPressedEvent struct {
	Entity donburi.Entity
}

// Donburi event types mirroring the callbacks. Engine.Update publishes every
// event to the world and processes them before returning, so ECS systems can
// subscribe to these types instead of registering callbacks.
var (
	DraggedEventType       = events.NewEventType[DraggedEvent]()
	DroppedEventType       = events.NewEventType[DroppedEvent]()
	DroppedOntoEventType   = events.NewEventType[DroppedOntoEvent]()
	ButtonPressedEventType = events.NewEventType[ButtonPressedEvent]()
)

type eventRef struct {
	kind EventType
	idx  int
}

// FrameEvents holds the events produced by one Engine.Update. The slices are
// valid until the next Update clears them.
type FrameEvents struct {
	Dragged       []DraggedEvent
	Dropped       []DroppedEvent
	DroppedOnto   []DroppedOntoEvent
	ButtonPressed []ButtonPressedEvent

	order []eventRef
}

// Len returns the total number of events recorded.
func (ev *FrameEvents) Len() int { return len(ev.order) }

// TargetOf returns the drop target src landed on this frame, if any.
func (ev *FrameEvents) TargetOf(src donburi.Entity) (donburi.Entity, bool) {
	for _, d := range ev.DroppedOnto {
		if d.Src == src {
			return d.Dst, true
		}
	}
	return donburi.Null, false
}

// Pressed reports whether e emitted a ButtonPressedEvent this frame.
func (ev *FrameEvents) Pressed(e donburi.Entity) bool {
	for _, p := range ev.ButtonPressed {
		if p.Entity == e {
			return true
		}
	}
	return false
}

func (ev *FrameEvents) reset() {
	ev.Dragged = ev.Dragged[:0]
	ev.Dropped = ev.Dropped[:0]
	ev.DroppedOnto = ev.DroppedOnto[:0]
	ev.ButtonPressed = ev.ButtonPressed[:0]
	ev.order = ev.order[:0]
}

func (ev *FrameEvents) emitDragged(e donburi.Entity) {
	ev.order = append(ev.order, eventRef{EventDragged, len(ev.Dragged)})
	ev.Dragged = append(ev.Dragged, DraggedEvent{Entity: e})
}

func (ev *FrameEvents) emitDropped(e donburi.Entity) {
	ev.order = append(ev.order, eventRef{EventDropped, len(ev.Dropped)})
	ev.Dropped = append(ev.Dropped, DroppedEvent{Entity: e})
}

func (ev *FrameEvents) emitDroppedOnto(src, dst donburi.Entity) {
	ev.order = append(ev.order, eventRef{EventDroppedOnto, len(ev.DroppedOnto)})
	ev.DroppedOnto = append(ev.DroppedOnto, DroppedOntoEvent{Src: src, Dst: dst})
}

func (ev *FrameEvents) emitButtonPressed(e donburi.Entity) {
	ev.order = append(ev.order, eventRef{EventButtonPressed, len(ev.ButtonPressed)})
	ev.ButtonPressed = append(ev.ButtonPressed, ButtonPressedEvent{Entity: e})
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	dragged       []handler[DraggedEvent]
	dropped       []handler[DroppedEvent]
	droppedOnto   []handler[DroppedOntoEvent]
	buttonPressed []handler[ButtonPressedEvent]
	nextID        uint32
}

// CallbackHandle allows removing a registered event callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice is
// harmless.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventDragged:
		h.reg.dragged = removeHandler(h.reg.dragged, h.id)
	case EventDropped:
		h.reg.dropped = removeHandler(h.reg.dropped, h.id)
	case EventDroppedOnto:
		h.reg.droppedOnto = removeHandler(h.reg.droppedOnto, h.id)
	case EventButtonPressed:
		h.reg.buttonPressed = removeHandler(h.reg.buttonPressed, h.id)
	}
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnDragged registers fn to run for every DraggedEvent.
func (e *Engine) OnDragged(fn func(DraggedEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.dragged = append(e.handlers.dragged, handler[DraggedEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventDragged}
}

// OnDropped registers fn to run for every DroppedEvent.
func (e *Engine) OnDropped(fn func(DroppedEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.dropped = append(e.handlers.dropped, handler[DroppedEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventDropped}
}

// OnDroppedOnto registers fn to run for every DroppedOntoEvent.
func (e *Engine) OnDroppedOnto(fn func(DroppedOntoEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.droppedOnto = append(e.handlers.droppedOnto, handler[DroppedOntoEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventDroppedOnto}
}

// OnButtonPressed registers fn to run for every ButtonPressedEvent.
func (e *Engine) OnButtonPressed(fn func(ButtonPressedEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.buttonPressed = append(e.handlers.buttonPressed, handler[ButtonPressedEvent]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventButtonPressed}
}

// dispatch runs the registered callbacks in event emission order. Handlers
// may register or remove callbacks while running; changes apply from the
// next event on.
func (r *handlerRegistry) dispatch(ev *FrameEvents) {
	for _, ref := range ev.order {
		switch ref.kind {
		case EventDragged:
			fire(slices.Clone(r.dragged), ev.Dragged[ref.idx])
		case EventDropped:
			fire(slices.Clone(r.dropped), ev.Dropped[ref.idx])
		case EventDroppedOnto:
			fire(slices.Clone(r.droppedOnto), ev.DroppedOnto[ref.idx])
		case EventButtonPressed:
			fire(slices.Clone(r.buttonPressed), ev.ButtonPressed[ref.idx])
		}
	}
}

func fire[T any](hs []handler[T], v T) {
	for _, h := range hs {
		h.fn(v)
	}
}

// publish forwards the frame's events to the world's donburi event queues in
// emission order and delivers them to subscribers, one event type at a time.
func (ev *FrameEvents) publish(w donburi.World) {
	if len(ev.order) == 0 {
		return
	}
	for _, ref := range ev.order {
		switch ref.kind {
		case EventDragged:
			DraggedEventType.Publish(w, ev.Dragged[ref.idx])
		case EventDropped:
			DroppedEventType.Publish(w, ev.Dropped[ref.idx])
		case EventDroppedOnto:
			DroppedOntoEventType.Publish(w, ev.DroppedOnto[ref.idx])
		case EventButtonPressed:
			ButtonPressedEventType.Publish(w, ev.ButtonPressed[ref.idx])
		}
	}
	DraggedEventType.ProcessEvents(w)
	DroppedEventType.ProcessEvents(w)
	DroppedOntoEventType.ProcessEvents(w)
	ButtonPressedEventType.ProcessEvents(w)
}
