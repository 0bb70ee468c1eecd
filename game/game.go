// Package game is the jam shop: a shop front where customers tell their
// stories and buy jars, and a cauldron room where ingredients are brewed
// into new jars. It runs on the jamjar engine and implements ebiten.Game.
package game

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/jamjar"
)

// Scene ids.
const (
	SceneShop jamjar.SceneID = iota
	SceneCauldron
)

var background = jamjar.Color{R: 0.16, G: 0.12, B: 0.1, A: 1}

// palette warms hovered items and brightens the jar being carried.
var palette = jamjar.Palette{
	Normal:        jamjar.ColorWhite,
	Hovered:       jamjar.Color{R: 1, G: 0.8, B: 0.55, A: 1},
	Dragged:       jamjar.Color{R: 1, G: 1, B: 0.75, A: 1},
	ButtonNormal:  jamjar.Color{R: 0.85, G: 0.85, B: 0.85, A: 1},
	ButtonHovered: jamjar.ColorWhite,
	ButtonPressed: jamjar.Color{R: 0.6, G: 0.6, B: 0.6, A: 1},
}

// Game wires the engine, the scenes and the shop state together.
type Game struct {
	cfg    Config
	layout *Layout
	engine *jamjar.Engine
	scenes *jamjar.SceneMachine
	state  *State
	store  *Store

	shop     *shopScene
	cauldron *cauldronScene

	watcher    *LayoutWatcher
	runner     *jamjar.TestRunner
	exitOnDone bool
}

// New builds a game. Progress is loaded from store, which may keep nothing.
// The shop scene is active when New returns.
func New(cfg Config, store *Store) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if store == nil {
		store = &Store{}
	}
	layout := DefaultLayout()
	if cfg.LayoutPath != "" {
		l, err := LoadLayout(cfg.LayoutPath)
		if err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
		layout = l
	}

	engine, err := jamjar.NewEngine(cfg.Engine())
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	engine.Camera().SetPosition(cfg.WindowWidth/2, cfg.WindowHeight/2)
	engine.SetPalette(palette)

	progress, err := store.Load(Progress{Coins: cfg.StartCoins})
	if err != nil {
		log.Printf("[Game] Warning: %v (starting fresh)", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	g := &Game{
		cfg:    cfg,
		layout: layout,
		engine: engine,
		scenes: jamjar.NewSceneMachine(),
		state:  NewState(progress, cfg.PricePerNeed, rand.New(rand.NewPCG(seed, seed>>1|1))),
		store:  store,
	}
	g.scenes.SetDebugMode(cfg.Debug)
	g.shop = &shopScene{g: g}
	g.cauldron = &cauldronScene{g: g}
	if err := g.scenes.Register(SceneShop, "shop", g.shop); err != nil {
		return nil, err
	}
	if err := g.scenes.Register(SceneCauldron, "cauldron", g.cauldron); err != nil {
		return nil, err
	}
	if err := g.scenes.Start(SceneShop); err != nil {
		return nil, err
	}

	if cfg.Debug && cfg.LayoutPath != "" {
		w, err := WatchLayout(cfg.LayoutPath)
		if err != nil {
			log.Printf("[Game] Warning: layout hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// Engine returns the interaction engine.
func (g *Game) Engine() *jamjar.Engine { return g.engine }

// Scenes returns the scene machine.
func (g *Game) Scenes() *jamjar.SceneMachine { return g.scenes }

// State returns the running shop state.
func (g *Game) State() *State { return g.state }

// SceneLayout returns the active scene layout.
func (g *Game) SceneLayout() *Layout { return g.layout }

// RunScript plays a scripted session. With exitWhenDone the game loop ends
// once the script has run.
func (g *Game) RunScript(r *jamjar.TestRunner, exitWhenDone bool) {
	g.runner = r
	g.exitOnDone = exitWhenDone
	g.engine.SetTestRunner(r)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if err := g.Step(1 / float64(ebiten.TPS())); err != nil {
		return err
	}
	if g.exitOnDone && g.runner != nil && g.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

// Step advances the game by dt seconds: the engine first, so scene code sees
// this frame's events, then the active scene.
func (g *Game) Step(dt float64) error {
	if err := g.engine.Update(dt); err != nil {
		return err
	}
	g.pollLayout()
	return g.scenes.Update(dt)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background.RGBA())
	g.engine.Draw(screen)
}

// Layout implements ebiten.Game. The logical screen keeps the configured
// size so layouts stay in window pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := int(g.cfg.WindowWidth), int(g.cfg.WindowHeight)
	g.engine.SetWindowSize(float64(w), float64(h))
	return w, h
}

// Close saves progress and stops the layout watcher.
func (g *Game) Close() error {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	return g.store.Save(g.state.Progress)
}

// save writes progress, logging failures.
func (g *Game) save() {
	if err := g.store.Save(g.state.Progress); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
}

// Reload replaces the layout and rebuilds the active scene.
func (g *Game) Reload(l *Layout) {
	g.layout = l
	id, ok := g.scenes.Current()
	if !ok {
		return
	}
	s := g.sceneFor(id)
	s.Exit()
	s.Enter()
	g.logf("layout reloaded")
}

func (g *Game) sceneFor(id jamjar.SceneID) jamjar.Scene {
	if id == SceneCauldron {
		return g.cauldron
	}
	return g.shop
}

func (g *Game) pollLayout() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		log.Printf("[Game] Warning: layout watch: %v", err)
	}
	if !changed {
		return
	}
	l, err := LoadLayout(g.cfg.LayoutPath)
	if err != nil {
		log.Printf("[Game] Warning: keeping old layout: %v", err)
		return
	}
	g.Reload(l)
}

func (g *Game) logf(format string, args ...any) {
	if g.cfg.Debug {
		log.Printf("[Game] "+format, args...)
	}
}
