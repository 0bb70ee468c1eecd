package jamjar

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ClearColor fills the screen before entities are drawn.
	ClearColor Color
	// Update runs after Engine.Update every frame. It may be nil.
	Update func(dt float64) error
}

// runGame adapts an Engine to ebiten.Game.
type runGame struct {
	engine *Engine
	cfg    RunConfig
}

func (g *runGame) Update() error {
	dt := 1 / float64(ebiten.TPS())
	if err := g.engine.Update(dt); err != nil {
		return err
	}
	if g.cfg.Update != nil {
		return g.cfg.Update(dt)
	}
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != (Color{}) {
		screen.Fill(g.cfg.ClearColor.RGBA())
	}
	g.engine.Draw(screen)
}

func (g *runGame) Layout(_, _ int) (int, int) {
	g.engine.SetWindowSize(float64(g.cfg.Width), float64(g.cfg.Height))
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives e until the window closes or Update returns
// an error. Zero sizes take the engine's window size.
func Run(e *Engine, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(e.winW), int(e.winH)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&runGame{engine: e, cfg: cfg})
}
