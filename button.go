package jamjar

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var buttonQuery = donburi.NewQuery(filter.Contains(Body, Button))

// Feed advances the press state machine with the frame's signal and reports
// whether a press completed. The machine only reacts when the signal differs
// from the one fed last, so a held Clicked signal does not re-trigger:
//
//	Released + Clicked          -> Pressed
//	Pressed  + Hovered          -> Released, fires
//	Pressed  + None             -> Released, cancelled
//	anything else               -> unchanged
func (b *ButtonData) Feed(sig Signal) bool {
	if sig == b.signal {
		return false
	}
	b.signal = sig
	switch {
	case b.State == Released && sig == SignalClicked:
		b.State = Pressed
	case b.State == Pressed && sig == SignalHovered:
		b.State = Released
		return true
	case b.State == Pressed && sig == SignalNone:
		b.State = Released
	}
	return false
}

// nextSignal derives a button's signal from the previous signal, whether the
// cursor is over the button, and the frame's button edges. Clicked is only
// entered by pressing over the button and lasts until the release.
func nextSignal(prev Signal, over bool, in PointerSample) Signal {
	sig := prev
	if in.JustReleased && sig == SignalClicked {
		sig = SignalNone
	}
	if over {
		if in.JustPressed && !in.JustReleased {
			return SignalClicked
		}
		if sig != SignalClicked {
			return SignalHovered
		}
		return sig
	}
	if sig != SignalClicked {
		return SignalNone
	}
	return sig
}

// ButtonMachine drives every Button entity's press state machine and emits
// ButtonPressedEvent on completed presses.
type ButtonMachine struct{}

// Update derives each button's signal and feeds it to the state machine.
// Disabled and hidden buttons see SignalNone.
func (m *ButtonMachine) Update(f *Frame) {
	buttonQuery.Each(f.World, func(entry *donburi.Entry) {
		b := Button.Get(entry)
		sig := SignalNone
		if !b.Disabled && !hidden(entry) {
			body := Body.Get(entry)
			over := body.Box.Contains(f.Cursor.At(body.Space))
			sig = nextSignal(b.signal, over, f.Input)
		}
		prev := b.State
		if b.Feed(sig) {
			f.events.emitButtonPressed(entry.Entity())
			f.logf("button %v pressed", entry.Entity())
		} else if prev != b.State {
			f.logf("button %v %s -> %s (%s)", entry.Entity(), prev, b.State, sig)
		}
	})
}
