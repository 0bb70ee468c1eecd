package game

import (
	"errors"
	"testing"

	"github.com/phanxgames/jamjar"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if l.Shop.Jars.Cols != 10 || l.Cauldron.Shelf.Cols != 8 {
		t.Errorf("grids = %+v / %+v", l.Shop.Jars, l.Cauldron.Shelf)
	}
	if got := l.Shop.BookButton.Center(); got != (jamjar.Vec2{X: 52, Y: 548}) {
		t.Errorf("book button center = %v", got)
	}
}

func TestGridSlot(t *testing.T) {
	g := Grid{X: 10, Y: 20, Size: 40, Gap: 10, Cols: 3}
	tests := []struct {
		i    int
		want jamjar.Vec2
	}{
		{0, jamjar.Vec2{X: 30, Y: 40}},
		{2, jamjar.Vec2{X: 130, Y: 40}},
		{3, jamjar.Vec2{X: 30, Y: 90}},
		{4, jamjar.Vec2{X: 80, Y: 90}},
	}
	for _, tt := range tests {
		b := g.Slot(tt.i)
		if b.Center != tt.want || b.HalfExtent != (jamjar.Vec2{X: 20, Y: 20}) {
			t.Errorf("Slot(%d) = %+v, want center %v", tt.i, b, tt.want)
		}
	}
}

func TestRectBox(t *testing.T) {
	b := Rect{X: 100, Y: 50, W: 40, H: 20}.Box()
	if b.Min() != (jamjar.Vec2{X: 100, Y: 50}) || b.Max() != (jamjar.Vec2{X: 140, Y: 70}) {
		t.Errorf("box = %+v", b)
	}
}

func TestParseLayoutRejectsEmpty(t *testing.T) {
	l := *DefaultLayout()
	l.Cauldron.Pot.W = 0
	data := mustMarshal(t, l)
	if _, err := ParseLayout(data); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}

	l = *DefaultLayout()
	l.Shop.Jars.Cols = 0
	if _, err := ParseLayout(mustMarshal(t, l)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
