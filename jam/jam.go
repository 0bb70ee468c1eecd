// Package jam holds the shop's content: ingredients, the effects they
// carry, how a cauldron full of ingredients turns into a jar, and the
// customer stories that ask for those effects.
package jam

import (
	"math"

	"github.com/phanxgames/jamjar"
)

// Ingredient is something that can go into the cauldron.
type Ingredient int

const (
	Petrol Ingredient = iota
	Urine
	GunPowder
	BathWater
	AppleSeeds
	Strawberries
	Lemons
	Damsons
	HumanFlesh
	MotorOil
	Absinth
	Bleach
	Sand
	Sugar
	Salt
	Sakura

	ingredientCount
)

// Effect is a property a finished jar can have.
type Effect int

const (
	NightVision Effect = iota
	SuperHumanStrength
	Poison
	Hunger
	GreaterHeal
	CureAll
	Speed
	Flight
	HideousLaughter

	effectCount
)

type ingredientInfo struct {
	name    string
	colour  jamjar.Color
	effects []Effect
}

var ingredients = [ingredientCount]ingredientInfo{
	Petrol:       {"Petrol", jamjar.Color{R: 0.55, G: 0.42, B: 0.12, A: 1}, []Effect{SuperHumanStrength, Flight}},
	Urine:        {"Urine", jamjar.Color{R: 0.93, G: 0.86, B: 0.25, A: 1}, []Effect{NightVision}},
	GunPowder:    {"Gun powder", jamjar.Color{R: 0.2, G: 0.2, B: 0.22, A: 1}, []Effect{Flight, Speed}},
	BathWater:    {"Bath water", jamjar.Color{R: 0.62, G: 0.75, B: 0.8, A: 1}, []Effect{GreaterHeal, CureAll}},
	AppleSeeds:   {"Apple seeds", jamjar.Color{R: 0.4, G: 0.25, B: 0.12, A: 1}, []Effect{Poison}},
	Strawberries: {"Strawberries", jamjar.Color{R: 0.86, G: 0.1, B: 0.2, A: 1}, []Effect{CureAll}},
	Lemons:       {"Lemons", jamjar.Color{R: 0.98, G: 0.92, B: 0.2, A: 1}, []Effect{GreaterHeal}},
	Damsons:      {"Damsons", jamjar.Color{R: 0.35, G: 0.12, B: 0.4, A: 1}, []Effect{Speed}},
	HumanFlesh:   {"Human flesh", jamjar.Color{R: 0.9, G: 0.6, B: 0.55, A: 1}, []Effect{Hunger}},
	MotorOil:     {"Motor oil", jamjar.Color{R: 0.1, G: 0.08, B: 0.05, A: 1}, []Effect{Speed, Poison}},
	Absinth:      {"Absinth", jamjar.Color{R: 0.5, G: 0.85, B: 0.3, A: 1}, []Effect{SuperHumanStrength, HideousLaughter}},
	Bleach:       {"Bleach", jamjar.Color{R: 0.95, G: 0.97, B: 1, A: 1}, []Effect{Hunger, CureAll}},
	Sand:         {"Sand", jamjar.Color{R: 0.87, G: 0.78, B: 0.55, A: 1}, nil},
	Sugar:        {"Sugar", jamjar.Color{R: 1, G: 1, B: 0.97, A: 1}, nil},
	Salt:         {"Salt", jamjar.Color{R: 0.92, G: 0.92, B: 0.92, A: 1}, nil},
	Sakura:       {"Sakura", jamjar.Color{R: 1, G: 0.72, B: 0.8, A: 1}, []Effect{GreaterHeal, CureAll}},
}

type effectInfo struct {
	name        string
	short       string
	description string
}

var effects = [effectCount]effectInfo{
	NightVision:        {"Night vision", "NV", "See, in the dark"},
	SuperHumanStrength: {"Super human strength", "ST", "HULK! SMASH!"},
	Poison:             {"Poison", "PO", "You feel ill"},
	Hunger:             {"Hunger", "HU", "I am very hungry, give me the butter"},
	GreaterHeal:        {"Greater heal", "GH", "Your wounds heal and your body feels light"},
	CureAll:            {"Cure all", "CA", "You are granted temporary relief from the radiation poisoning"},
	Speed:              {"Speed", "SP", "Radiation mutates the cells in your body, you become faster"},
	Flight:             {"Flight", "FL", "Your body fills with energy, so much that you fly?"},
	HideousLaughter:    {"Hideous laughter", "HL", "You perceive everything as hilariously funny and fall into fits of laughter."},
}

// Ingredients returns every ingredient in shelf order.
func Ingredients() []Ingredient {
	out := make([]Ingredient, ingredientCount)
	for i := range out {
		out[i] = Ingredient(i)
	}
	return out
}

// Effects returns every effect in book order.
func Effects() []Effect {
	out := make([]Effect, effectCount)
	for i := range out {
		out[i] = Effect(i)
	}
	return out
}

// Valid reports whether i names a known ingredient.
func (i Ingredient) Valid() bool { return i >= 0 && i < ingredientCount }

// Name returns the display name.
func (i Ingredient) Name() string {
	if !i.Valid() {
		return "Unknown"
	}
	return ingredients[i].name
}

func (i Ingredient) String() string { return i.Name() }

// Colour returns the colour the ingredient lends to a jar.
func (i Ingredient) Colour() jamjar.Color {
	if !i.Valid() {
		return jamjar.Color{}
	}
	return ingredients[i].colour
}

// Effects returns the effects the ingredient contributes. Some have none.
func (i Ingredient) Effects() []Effect {
	if !i.Valid() {
		return nil
	}
	return ingredients[i].effects
}

// Valid reports whether e names a known effect.
func (e Effect) Valid() bool { return e >= 0 && e < effectCount }

// Name returns the display name.
func (e Effect) Name() string {
	if !e.Valid() {
		return "Unknown"
	}
	return effects[e].name
}

func (e Effect) String() string { return e.Name() }

// Short returns a two-letter code for jar labels.
func (e Effect) Short() string {
	if !e.Valid() {
		return "??"
	}
	return effects[e].short
}

// Description returns the jam-book flavour text.
func (e Effect) Description() string {
	if !e.Valid() {
		return ""
	}
	return effects[e].description
}

// EffectThreshold is the number of contributions above which an effect
// makes it into the jar.
const EffectThreshold = 2

// CalculateEffects returns the effects named by more than EffectThreshold
// ingredient contributions, in book order. Duplicated ingredients count once
// per copy.
func CalculateEffects(in []Ingredient) []Effect {
	var counts [effectCount]int
	for _, ing := range in {
		for _, e := range ing.Effects() {
			counts[e]++
		}
	}
	var out []Effect
	for e, n := range counts {
		if n > EffectThreshold {
			out = append(out, Effect(e))
		}
	}
	return out
}

// AverageColours mixes colours by root mean square per channel. The result
// is opaque; no colours at all yields transparent black.
func AverageColours(cs []jamjar.Color) jamjar.Color {
	if len(cs) == 0 {
		return jamjar.Color{}
	}
	var r, g, b float64
	for _, c := range cs {
		r += c.R * c.R
		g += c.G * c.G
		b += c.B * c.B
	}
	n := float64(len(cs))
	return jamjar.Color{R: math.Sqrt(r / n), G: math.Sqrt(g / n), B: math.Sqrt(b / n), A: 1}
}
