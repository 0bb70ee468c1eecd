package game

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/phanxgames/jamjar/jam"
)

func newTestState(needs ...jam.Effect) *State {
	s := NewState(Progress{}, 5, rand.New(rand.NewPCG(1, 1)))
	s.Customer = jam.Story{Text: "x", Needs: needs}
	return s
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name    string
		needs   []jam.Effect
		jar     jam.Jar
		want    int
		wantErr error
	}{
		{"one need met", []jam.Effect{jam.Speed}, jam.Jar{Effects: []jam.Effect{jam.Speed}}, 5, nil},
		{"two needs met", []jam.Effect{jam.Speed, jam.Flight}, jam.Jar{Effects: []jam.Effect{jam.Flight, jam.Speed}}, 10, nil},
		{"refused", []jam.Effect{jam.Hunger}, jam.Jar{Effects: []jam.Effect{jam.Speed}}, 0, ErrRefused},
		{"no needs", nil, jam.Jar{}, 5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestState(tt.needs...).Quote(tt.jar)
			if got != tt.want || !errors.Is(err, tt.wantErr) {
				t.Errorf("Quote = %d, %v; want %d, %v", got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestServe(t *testing.T) {
	s := newTestState(jam.Poison)
	s.Inventory = []jam.Jar{{}, {Effects: []jam.Effect{jam.Poison}}}

	if _, err := s.Serve(5); !errors.Is(err, ErrNoJar) {
		t.Errorf("err = %v, want ErrNoJar", err)
	}
	if _, err := s.Serve(0); !errors.Is(err, ErrRefused) {
		t.Errorf("err = %v, want ErrRefused", err)
	}
	paid, err := s.Serve(1)
	if err != nil || paid != 5 {
		t.Fatalf("Serve = %d, %v", paid, err)
	}
	if s.Coins != 5 || s.Served != 1 || len(s.Inventory) != 1 {
		t.Errorf("progress = %+v", s.Progress)
	}
	if s.Customer.Text == "x" {
		t.Error("customer not replaced")
	}
}

func TestStateBottle(t *testing.T) {
	s := newTestState()
	if _, err := s.Bottle(); !errors.Is(err, jam.ErrEmptyCauldron) {
		t.Errorf("err = %v, want ErrEmptyCauldron", err)
	}
	for range 3 {
		s.Cauldron.Add(jam.Urine)
	}
	j, err := s.Bottle()
	if err != nil {
		t.Fatal(err)
	}
	if !j.Has(jam.NightVision) || !s.Knows(jam.NightVision) || len(s.Inventory) != 1 {
		t.Errorf("jar %+v, state %+v", j, s.Progress)
	}

	s.Inventory = make([]jam.Jar, MaxInventory)
	s.Cauldron.Add(jam.Salt)
	if _, err := s.Bottle(); !errors.Is(err, ErrInventoryFull) {
		t.Errorf("err = %v, want ErrInventoryFull", err)
	}
	if s.Cauldron.Len() != 1 {
		t.Error("full counter emptied the cauldron")
	}
}
