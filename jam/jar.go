package jam

import (
	"errors"
	"slices"
	"strings"

	"github.com/phanxgames/jamjar"
)

// ErrEmptyCauldron is returned when bottling a cauldron with nothing in it.
var ErrEmptyCauldron = errors.New("jam: cauldron is empty")

// MaxCauldron is the number of ingredients the cauldron holds.
const MaxCauldron = 8

// Jar is a bottled batch of jam.
type Jar struct {
	Ingredients []Ingredient `yaml:"ingredients"`
	Effects     []Effect     `yaml:"effects"`
	Colour      jamjar.Color `yaml:"colour"`
}

// Label returns a short label listing the jar's effects.
func (j Jar) Label() string {
	if len(j.Effects) == 0 {
		return "Plain jam"
	}
	names := make([]string, len(j.Effects))
	for i, e := range j.Effects {
		names[i] = e.Name()
	}
	return strings.Join(names, ", ")
}

// Short returns the effect codes, or "--" for a plain jar.
func (j Jar) Short() string {
	if len(j.Effects) == 0 {
		return "--"
	}
	codes := make([]string, len(j.Effects))
	for i, e := range j.Effects {
		codes[i] = e.Short()
	}
	return strings.Join(codes, " ")
}

// Has reports whether the jar carries e.
func (j Jar) Has(e Effect) bool {
	return slices.Contains(j.Effects, e)
}

// Cauldron collects ingredients until they are bottled.
type Cauldron struct {
	contents []Ingredient
}

// Add puts an ingredient in. It reports false when the cauldron is full.
func (c *Cauldron) Add(i Ingredient) bool {
	if len(c.contents) >= MaxCauldron || !i.Valid() {
		return false
	}
	c.contents = append(c.contents, i)
	return true
}

// Contents returns a copy of what is in the cauldron, in the order added.
func (c *Cauldron) Contents() []Ingredient {
	return slices.Clone(c.contents)
}

// Len returns the number of ingredients in the cauldron.
func (c *Cauldron) Len() int { return len(c.contents) }

// Colour returns the current mix colour.
func (c *Cauldron) Colour() jamjar.Color {
	cs := make([]jamjar.Color, len(c.contents))
	for i, ing := range c.contents {
		cs[i] = ing.Colour()
	}
	return AverageColours(cs)
}

// Clear empties the cauldron.
func (c *Cauldron) Clear() { c.contents = c.contents[:0] }

// Bottle turns the contents into a jar and empties the cauldron.
func (c *Cauldron) Bottle() (Jar, error) {
	if len(c.contents) == 0 {
		return Jar{}, ErrEmptyCauldron
	}
	j := Jar{
		Ingredients: slices.Clone(c.contents),
		Effects:     CalculateEffects(c.contents),
		Colour:      c.Colour(),
	}
	c.Clear()
	return j, nil
}
