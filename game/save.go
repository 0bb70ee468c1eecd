package game

import (
	"fmt"
	"log"
	"slices"

	"github.com/phanxgames/jamjar/jam"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	saveObject   = "shop"
	saveProperty = "progress"
)

// Progress is the part of the game that survives a restart.
type Progress struct {
	Coins      int          `yaml:"coins"`
	Served     int          `yaml:"served"`
	Discovered []jam.Effect `yaml:"discovered"`
	Inventory  []jam.Jar    `yaml:"inventory"`
}

// Knows reports whether e is in the jam book.
func (p *Progress) Knows(e jam.Effect) bool { return slices.Contains(p.Discovered, e) }

// Discover adds effects to the jam book, keeping book order. It returns the
// number of new entries.
func (p *Progress) Discover(effects []jam.Effect) int {
	added := 0
	for _, e := range effects {
		if e.Valid() && !p.Knows(e) {
			p.Discovered = append(p.Discovered, e)
			added++
		}
	}
	slices.Sort(p.Discovered)
	return added
}

// Store persists Progress through gdata. A Store without a manager keeps
// nothing: Load returns the fallback and Save succeeds.
type Store struct {
	manager *gdata.Manager
}

// OpenStore opens the save data for appName. Failure to open is logged and
// yields a Store that keeps nothing; an empty appName does the same.
func OpenStore(appName string) *Store {
	if appName == "" {
		return &Store{}
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Store] Warning: save data unavailable: %v (progress will not be kept)", err)
		return &Store{}
	}
	return &Store{manager: m}
}

// NewStore wraps an open manager. m may be nil.
func NewStore(m *gdata.Manager) *Store { return &Store{manager: m} }

// Persistent reports whether saves reach disk.
func (s *Store) Persistent() bool { return s != nil && s.manager != nil }

// Load returns the saved progress, or fallback when nothing is saved.
func (s *Store) Load(fallback Progress) (Progress, error) {
	if !s.Persistent() || !s.manager.ObjectPropExists(saveObject, saveProperty) {
		return fallback, nil
	}
	data, err := s.manager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return fallback, fmt.Errorf("load progress: %w", err)
	}
	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fallback, fmt.Errorf("unmarshal progress: %w", err)
	}
	return p, nil
}

// Save writes p.
func (s *Store) Save(p Progress) error {
	if !s.Persistent() {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.manager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
