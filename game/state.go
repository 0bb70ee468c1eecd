package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/phanxgames/jamjar/jam"
)

var (
	// ErrNoJar is returned when serving an inventory slot that holds nothing.
	ErrNoJar = errors.New("no such jar")
	// ErrRefused is returned when the customer has no use for the jar.
	ErrRefused = errors.New("customer refused the jar")
	// ErrInventoryFull is returned when bottling with no shelf space left.
	ErrInventoryFull = errors.New("inventory full")
)

// MaxInventory is the number of jars the counter holds.
const MaxInventory = 20

// State is the running shop: saved progress, the customer at the counter
// and the cauldron contents.
type State struct {
	Progress
	Customer jam.Story
	Cauldron jam.Cauldron

	price int
	rng   *rand.Rand
}

// NewState starts a shop from p with a first customer drawn from rng.
func NewState(p Progress, pricePerNeed int, rng *rand.Rand) *State {
	s := &State{Progress: p, price: pricePerNeed, rng: rng}
	s.NextCustomer()
	return s
}

// NextCustomer replaces the customer with a new one.
func (s *State) NextCustomer() {
	s.Customer = jam.GenerateStory(s.rng)
}

// Quote returns what the customer would pay for j, or ErrRefused. A customer
// with no particular need takes any jar at the single-need price.
func (s *State) Quote(j jam.Jar) (int, error) {
	if len(s.Customer.Needs) == 0 {
		return s.price, nil
	}
	n := s.Customer.Satisfied(j)
	if n == 0 {
		return 0, ErrRefused
	}
	return n * s.price, nil
}

// Serve sells inventory jar i to the customer, who is then replaced.
func (s *State) Serve(i int) (int, error) {
	if i < 0 || i >= len(s.Inventory) {
		return 0, fmt.Errorf("serve jar %d: %w", i, ErrNoJar)
	}
	paid, err := s.Quote(s.Inventory[i])
	if err != nil {
		return 0, fmt.Errorf("serve jar %d: %w", i, err)
	}
	s.Inventory = slices.Delete(s.Inventory, i, i+1)
	s.Coins += paid
	s.Served++
	s.NextCustomer()
	return paid, nil
}

// Bottle turns the cauldron into a jar on the counter and writes its effects
// into the jam book.
func (s *State) Bottle() (jam.Jar, error) {
	if len(s.Inventory) >= MaxInventory {
		return jam.Jar{}, fmt.Errorf("bottle: %w", ErrInventoryFull)
	}
	j, err := s.Cauldron.Bottle()
	if err != nil {
		return jam.Jar{}, fmt.Errorf("bottle: %w", err)
	}
	s.Inventory = append(s.Inventory, j)
	s.Discover(j.Effects)
	return j, nil
}
