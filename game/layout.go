package game

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/phanxgames/jamjar"
	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var builtinLayout []byte

// Rect is a window-space rectangle from its top-left corner.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Box returns the rect as a centered box.
func (r Rect) Box() jamjar.Box {
	return jamjar.BoxFromSize(r.X+r.W/2, r.Y+r.H/2, r.W, r.H)
}

// Center returns the middle of the rect.
func (r Rect) Center() jamjar.Vec2 { return jamjar.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2} }

func (r Rect) valid() bool { return r.W > 0 && r.H > 0 }

// Grid lays out square slots in rows of Cols.
type Grid struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
	Gap  float64 `yaml:"gap"`
	Cols int     `yaml:"cols"`
}

// Slot returns the box of slot i.
func (g Grid) Slot(i int) jamjar.Box {
	col, row := i%g.Cols, i/g.Cols
	step := g.Size + g.Gap
	return jamjar.BoxFromSize(
		g.X+float64(col)*step+g.Size/2,
		g.Y+float64(row)*step+g.Size/2,
		g.Size, g.Size)
}

func (g Grid) valid() bool { return g.Size > 0 && g.Cols > 0 && g.Gap >= 0 }

// ShopLayout places the shop front.
type ShopLayout struct {
	Coins          Rect `yaml:"coins"`
	Story          Rect `yaml:"story"`
	Customer       Rect `yaml:"customer"`
	Jars           Grid `yaml:"jars"`
	BookButton     Rect `yaml:"book_button"`
	CauldronButton Rect `yaml:"cauldron_button"`
	BookPanel      Rect `yaml:"book_panel"`
}

// CauldronLayout places the brewing room.
type CauldronLayout struct {
	Shelf        Grid `yaml:"shelf"`
	Pot          Rect `yaml:"pot"`
	ClearButton  Rect `yaml:"clear_button"`
	BottleButton Rect `yaml:"bottle_button"`
	ReturnButton Rect `yaml:"return_button"`
}

// Layout is the placement of every scene element.
type Layout struct {
	Shop     ShopLayout     `yaml:"shop"`
	Cauldron CauldronLayout `yaml:"cauldron"`
}

// ParseLayout decodes and validates a layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &l, nil
}

// LoadLayout reads a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	return ParseLayout(data)
}

// DefaultLayout returns the built-in layout.
func DefaultLayout() *Layout {
	l, err := ParseLayout(builtinLayout)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) validate() error {
	rects := []struct {
		name string
		r    Rect
	}{
		{"shop.coins", l.Shop.Coins},
		{"shop.story", l.Shop.Story},
		{"shop.customer", l.Shop.Customer},
		{"shop.book_button", l.Shop.BookButton},
		{"shop.cauldron_button", l.Shop.CauldronButton},
		{"shop.book_panel", l.Shop.BookPanel},
		{"cauldron.pot", l.Cauldron.Pot},
		{"cauldron.clear_button", l.Cauldron.ClearButton},
		{"cauldron.bottle_button", l.Cauldron.BottleButton},
		{"cauldron.return_button", l.Cauldron.ReturnButton},
	}
	for _, r := range rects {
		if !r.r.valid() {
			return fmt.Errorf("%s: empty rect %+v: %w", r.name, r.r, ErrInvalidConfig)
		}
	}
	if !l.Shop.Jars.valid() {
		return fmt.Errorf("shop.jars: bad grid %+v: %w", l.Shop.Jars, ErrInvalidConfig)
	}
	if !l.Cauldron.Shelf.valid() {
		return fmt.Errorf("cauldron.shelf: bad grid %+v: %w", l.Cauldron.Shelf, ErrInvalidConfig)
	}
	return nil
}
