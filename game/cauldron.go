package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/phanxgames/jamjar"
	"github.com/phanxgames/jamjar/jam"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	tagShelf     = "shelf"
	tagToken     = "token"
	tagPot       = "pot"
	tagClearBtn  = "clear-button"
	tagBottleBtn = "bottle-button"
	tagReturnBtn = "return-button"

	potFadeTime = 0.4
)

var potEmpty = jamjar.Color{R: 0.3, G: 0.3, B: 0.33, A: 1}

// cauldronScene is the brewing room. Dragging an ingredient off the shelf
// leaves a fresh one behind; dropping it into the pot adds it to the brew
// and dropping it anywhere else throws it away.
type cauldronScene struct {
	g *Game

	pot       donburi.Entity
	clearBtn  donburi.Entity
	bottleBtn donburi.Entity
	returnBtn donburi.Entity
	status    string

	handles []jamjar.CallbackHandle
	fade    *jamjar.TweenGroup
	// stirred is set when the pot contents changed this frame.
	stirred bool
}

func (s *cauldronScene) Enter() {
	e := s.g.engine
	l := s.g.layout.Cauldron

	for _, ing := range jam.Ingredients() {
		s.spawnShelfToken(ing)
	}
	s.pot = e.Spawn(jamjar.EntityDef{Name: tagPot, Box: l.Pot.Box(), Caps: jamjar.DropTarget,
		Color: s.potColour()})
	s.clearBtn = e.Spawn(jamjar.EntityDef{Name: tagClearBtn, Box: l.ClearButton.Box(), Z: 10,
		Space: jamjar.SpaceScreen, Button: true, Color: buttonColor, Label: "Empty"})
	s.bottleBtn = e.Spawn(jamjar.EntityDef{Name: tagBottleBtn, Box: l.BottleButton.Box(), Z: 10,
		Space: jamjar.SpaceScreen, Button: true, Color: buttonColor, Label: "Bottle"})
	s.returnBtn = e.Spawn(jamjar.EntityDef{Name: tagReturnBtn, Box: l.ReturnButton.Box(), Z: 10,
		Space: jamjar.SpaceScreen, Button: true, Color: buttonColor, Label: "Back to shop"})
	s.status = ""
	s.refresh()

	s.handles = append(s.handles,
		e.OnDragged(s.onDragged),
		e.OnDroppedOnto(s.onDroppedOnto),
		e.OnDropped(s.onDropped),
		e.OnButtonPressed(s.onButton),
	)
}

func (s *cauldronScene) Exit() {
	for _, h := range s.handles {
		h.Remove()
	}
	s.handles = s.handles[:0]
	s.fade = nil
	s.stirred = false
	s.g.engine.Clear()
}

func (s *cauldronScene) Update(dt float64) error {
	if s.stirred {
		s.stirred = false
		s.fade = jamjar.TweenColor(s.g.engine.World(), s.pot, s.potColour(), potFadeTime, ease.Linear)
	}
	if s.fade != nil {
		s.fade.Update(float32(dt))
		if s.fade.Done {
			s.fade = nil
		}
	}
	s.refresh()
	return nil
}

func (s *cauldronScene) spawnShelfToken(ing jam.Ingredient) donburi.Entity {
	name := ing.Name()
	if len(name) > 7 {
		name = name[:7]
	}
	return s.g.engine.Spawn(jamjar.EntityDef{
		Name:  tagShelf,
		Value: int(ing),
		Box:   s.g.layout.Cauldron.Shelf.Slot(int(ing)),
		Z:     5,
		Caps:  jamjar.Hoverable | jamjar.Draggable,
		Color: ing.Colour(),
		Label: name,
	})
}

func (s *cauldronScene) potColour() jamjar.Color {
	if s.g.state.Cauldron.Len() == 0 {
		return potEmpty
	}
	return s.g.state.Cauldron.Colour()
}

func (s *cauldronScene) refresh() {
	entry := s.g.engine.Entry(s.pot)
	if entry == nil {
		return
	}
	label := fmt.Sprintf("Cauldron %d/%d", s.g.state.Cauldron.Len(), jam.MaxCauldron)
	if s.status != "" {
		label += "\n" + wrapText(s.status, columns(s.g.layout.Cauldron.Pot.W))
	}
	jamjar.Appearance.Get(entry).Label = label
}

// onDragged turns a shelf token into a loose token and restocks the shelf.
func (s *cauldronScene) onDragged(ev jamjar.DraggedEvent) {
	entry := s.g.engine.Entry(ev.Entity)
	if entry == nil {
		return
	}
	tag := jamjar.Tag.Get(entry)
	if tag.Name != tagShelf {
		return
	}
	tag.Name = tagToken
	s.spawnShelfToken(jam.Ingredient(tag.Value))
}

func (s *cauldronScene) onDroppedOnto(ev jamjar.DroppedOntoEvent) {
	if ev.Dst != s.pot {
		return
	}
	entry := s.g.engine.Entry(ev.Src)
	if entry == nil || jamjar.Tag.Get(entry).Name != tagToken {
		return
	}
	ing := jam.Ingredient(jamjar.Tag.Get(entry).Value)
	if !s.g.state.Cauldron.Add(ing) {
		s.status = "The cauldron is full"
		return
	}
	s.status = ""
	s.stirred = true
	s.g.logf("added %s to the cauldron", ing)
}

// onDropped discards every loose token. Tokens that reached the pot were
// already counted by onDroppedOnto.
func (s *cauldronScene) onDropped(ev jamjar.DroppedEvent) {
	entry := s.g.engine.Entry(ev.Entity)
	if entry == nil || jamjar.Tag.Get(entry).Name != tagToken {
		return
	}
	s.g.engine.Despawn(ev.Entity)
}

func (s *cauldronScene) onButton(ev jamjar.ButtonPressedEvent) {
	st := s.g.state
	switch ev.Entity {
	case s.clearBtn:
		st.Cauldron.Clear()
		s.status = "Emptied"
		s.stirred = true
	case s.bottleBtn:
		j, err := st.Bottle()
		switch {
		case errors.Is(err, jam.ErrEmptyCauldron):
			s.status = "Nothing to bottle"
		case errors.Is(err, ErrInventoryFull):
			s.status = "The counter is full"
		case err != nil:
			log.Printf("[Cauldron] Warning: %v", err)
		default:
			s.status = "Bottled: " + j.Label()
			s.stirred = true
			s.g.save()
		}
	case s.returnBtn:
		if err := s.g.scenes.Request(SceneShop); err != nil {
			log.Printf("[Cauldron] Warning: %v", err)
		}
	}
}
