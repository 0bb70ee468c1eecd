package game

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/phanxgames/jamjar"
	"github.com/phanxgames/jamjar/jam"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	tagJar      = "jar"
	tagCustomer = "customer"
	tagBook     = "book"
	tagBookBtn  = "book-button"
	tagPotBtn   = "cauldron-button"
	tagStory    = "story"
	tagCoins    = "coins"

	jarReturnTime = 0.25
)

var (
	panelColor    = jamjar.Color{R: 0.6, G: 0.8, B: 0.2, A: 1} // yellow green
	paperColor    = jamjar.Color{R: 0.93, G: 0.88, B: 0.76, A: 1}
	customerColor = jamjar.Color{R: 0.45, G: 0.4, B: 0.55, A: 1}
	buttonColor   = jamjar.Color{R: 0.7, G: 0.55, B: 0.35, A: 1}
)

// shopScene is the shop front. Jars on the counter are dragged onto the
// customer to sell them; the jam book lists discovered effects.
type shopScene struct {
	g *Game

	customer donburi.Entity
	story    donburi.Entity
	coins    donburi.Entity
	bookBtn  donburi.Entity
	potBtn   donburi.Entity
	book     donburi.Entity
	bookOpen bool

	handles []jamjar.CallbackHandle
	tweens  []*jamjar.TweenGroup
	// sold is the jar sold this frame; it is despawned, not sent home.
	sold donburi.Entity
	// restock is set when the counter must be respawned from inventory.
	restock bool
}

func (s *shopScene) Enter() {
	e := s.g.engine
	l := s.g.layout.Shop

	s.coins = e.Spawn(jamjar.EntityDef{Name: tagCoins, Box: l.Coins.Box(), Space: jamjar.SpaceScreen,
		Color: jamjar.Color{A: 0.4}})
	s.story = e.Spawn(jamjar.EntityDef{Name: tagStory, Box: l.Story.Box(), Color: paperColor})
	s.customer = e.Spawn(jamjar.EntityDef{Name: tagCustomer, Box: l.Customer.Box(),
		Caps: jamjar.DropTarget, Color: customerColor, Label: "Customer"})
	s.bookBtn = e.Spawn(jamjar.EntityDef{Name: tagBookBtn, Box: l.BookButton.Box(), Z: 10,
		Space: jamjar.SpaceScreen, Button: true, Color: buttonColor, Label: "Book"})
	s.potBtn = e.Spawn(jamjar.EntityDef{Name: tagPotBtn, Box: l.CauldronButton.Box(), Z: 10,
		Space: jamjar.SpaceScreen, Button: true, Color: buttonColor, Label: "Brew"})
	s.spawnJars()
	s.refresh()

	s.handles = append(s.handles,
		e.OnDragged(s.onDragged),
		e.OnDroppedOnto(s.onDroppedOnto),
		e.OnDropped(s.onDropped),
		e.OnButtonPressed(s.onButton),
	)
}

func (s *shopScene) Exit() {
	for _, h := range s.handles {
		h.Remove()
	}
	s.handles = s.handles[:0]
	s.tweens = s.tweens[:0]
	s.bookOpen = false
	s.sold = donburi.Null
	s.restock = false
	s.g.engine.Clear()
}

func (s *shopScene) Update(dt float64) error {
	s.tweens = slices.DeleteFunc(s.tweens, func(t *jamjar.TweenGroup) bool {
		t.Update(float32(dt))
		return t.Done
	})
	s.sold = donburi.Null
	if s.restock {
		s.restock = false
		for _, ent := range s.g.engine.FindAll(tagJar) {
			s.g.engine.Despawn(ent)
		}
		s.tweens = s.tweens[:0]
		s.spawnJars()
	}
	s.refresh()
	return nil
}

// spawnJars puts every inventory jar on the counter. A jar's tag value is
// its inventory index.
func (s *shopScene) spawnJars() {
	e := s.g.engine
	for i, j := range s.g.state.Inventory {
		e.Spawn(jamjar.EntityDef{
			Name:  tagJar,
			Value: i,
			Box:   s.g.layout.Shop.Jars.Slot(i),
			Z:     5,
			Caps:  jamjar.Hoverable | jamjar.Draggable,
			Color: j.Colour,
			Label: j.Short(),
		})
	}
}

// refresh rewrites the text labels from the shop state.
func (s *shopScene) refresh() {
	st := s.g.state
	l := s.g.layout.Shop
	if entry := s.g.engine.Entry(s.coins); entry != nil {
		jamjar.Appearance.Get(entry).Label = fmt.Sprintf("Coins: %d  Served: %d", st.Coins, st.Served)
	}
	if entry := s.g.engine.Entry(s.story); entry != nil {
		jamjar.Appearance.Get(entry).Label = wrapText(st.Customer.Text, columns(l.Story.W))
	}
}

// onDragged stops a jar sliding home once it is picked up again.
func (s *shopScene) onDragged(ev jamjar.DraggedEvent) {
	s.tweens = slices.DeleteFunc(s.tweens, func(t *jamjar.TweenGroup) bool {
		return t.Target() == ev.Entity
	})
}

// onDroppedOnto sells a jar dropped on the customer.
func (s *shopScene) onDroppedOnto(ev jamjar.DroppedOntoEvent) {
	e := s.g.engine
	entry := e.Entry(ev.Src)
	if ev.Dst != s.customer || entry == nil || jamjar.Tag.Get(entry).Name != tagJar {
		return
	}
	idx := jamjar.Tag.Get(entry).Value
	paid, err := s.g.state.Serve(idx)
	switch {
	case err == nil:
		s.g.logf("sold jar %d for %d coins", idx, paid)
		s.sold = ev.Src
		e.Despawn(ev.Src)
		s.restock = true
		s.g.save()
	case errors.Is(err, ErrRefused):
		s.g.logf("customer refused jar %d", idx)
	default:
		log.Printf("[Shop] Warning: %v", err)
	}
}

// onDropped sends every unsold jar back to its counter slot.
func (s *shopScene) onDropped(ev jamjar.DroppedEvent) {
	e := s.g.engine
	entry := e.Entry(ev.Entity)
	if ev.Entity == s.sold || entry == nil || jamjar.Tag.Get(entry).Name != tagJar {
		return
	}
	home := s.g.layout.Shop.Jars.Slot(jamjar.Tag.Get(entry).Value).Center
	s.tweens = append(s.tweens, jamjar.TweenPosition(e.World(), ev.Entity, home.X, home.Y, jarReturnTime, ease.OutQuad))
}

// onButton handles the shop buttons. Any press while the book is open
// closes it; the book button then does nothing more.
func (s *shopScene) onButton(ev jamjar.ButtonPressedEvent) {
	wasOpen := s.bookOpen
	if wasOpen {
		s.closeBook()
	}
	switch ev.Entity {
	case s.bookBtn:
		if !wasOpen {
			s.openBook()
		}
	case s.potBtn:
		if err := s.g.scenes.Request(SceneCauldron); err != nil {
			log.Printf("[Shop] Warning: %v", err)
		}
	}
}

func (s *shopScene) openBook() {
	s.book = s.g.engine.Spawn(jamjar.EntityDef{
		Name:  tagBook,
		Box:   s.g.layout.Shop.BookPanel.Box(),
		Z:     20,
		Space: jamjar.SpaceScreen,
		Color: panelColor,
		Label: s.bookText(),
	})
	s.bookOpen = true
}

func (s *shopScene) closeBook() {
	s.g.engine.Despawn(s.book)
	s.bookOpen = false
}

func (s *shopScene) bookText() string {
	var b strings.Builder
	b.WriteString("JAM BOOK\n\n")
	for _, eff := range jam.Effects() {
		if s.g.state.Knows(eff) {
			fmt.Fprintf(&b, "%s  %s: %s\n", eff.Short(), eff.Name(), eff.Description())
		} else {
			b.WriteString("??  ???\n")
		}
	}
	return b.String()
}
