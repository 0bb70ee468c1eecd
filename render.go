package jamjar

import (
	"cmp"
	"image/color"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// WhitePixel is a 1x1 white image used for solid color rectangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}

var drawQuery = donburi.NewQuery(filter.Contains(Body, Appearance))

// RenderCommand is a single draw instruction collected from the world.
type RenderCommand struct {
	// Transform maps the unit square of Image onto the window.
	Transform [6]float64
	Image     *ebiten.Image
	Color     Color
	Label     string
	LabelX    int
	LabelY    int

	z   int
	seq uint64
}

// collect appends one command per visible entity and sorts them back to
// front: ascending Z, then spawn order. World-space entities outside the
// camera view are skipped.
func (e *Engine) collect(cmds []RenderCommand) []RenderCommand {
	view := identityTransform
	visible := Rect{Width: e.winW, Height: e.winH}
	if e.camera != nil {
		view = e.camera.ViewMatrix(e.winW, e.winH)
		visible = e.camera.VisibleBounds(e.winW, e.winH)
	}
	drawQuery.Each(e.world, func(entry *donburi.Entry) {
		app := Appearance.Get(entry)
		if app.Hidden {
			return
		}
		body := Body.Get(entry)
		if body.Space == SpaceWorld && !overlaps(body.Box, visible) {
			return
		}
		img := app.Image
		if img == nil {
			img = WhitePixel
		}
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		size := body.Box.HalfExtent.Scale(2)
		origin := body.Box.Min()

		m := [6]float64{size.X / float64(iw), 0, 0, size.Y / float64(ih), origin.X, origin.Y}
		if body.Space == SpaceWorld {
			m = multiplyAffine(view, m)
		}
		lx, ly := transformPoint(m, 0, 0)
		cmds = append(cmds, RenderCommand{
			Transform: m,
			Image:     img,
			Color:     app.Color.Mul(app.Tint),
			Label:     app.Label,
			LabelX:    int(lx) + 4,
			LabelY:    int(ly) + 4,
			z:         body.Z,
			seq:       body.seq,
		})
	})
	slices.SortStableFunc(cmds, func(a, b RenderCommand) int {
		if c := cmp.Compare(a.z, b.z); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	return cmds
}

// overlaps reports whether b and r share any area.
func overlaps(b Box, r Rect) bool {
	lo, hi := b.Min(), b.Max()
	return hi.X > r.X && lo.X < r.X+r.Width && hi.Y > r.Y && lo.Y < r.Y+r.Height
}

// Draw renders every visible entity to screen.
func (e *Engine) Draw(screen *ebiten.Image) {
	var start time.Time
	if e.debug {
		start = time.Now()
	}
	e.commands = e.collect(e.commands[:0])

	var op ebiten.DrawImageOptions
	for i := range e.commands {
		cmd := &e.commands[i]
		op.GeoM.Reset()
		op.GeoM.Concat(commandGeoM(cmd.Transform))
		op.ColorScale.Reset()
		a := float32(cmd.Color.A)
		op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
		screen.DrawImage(cmd.Image, &op)
		if cmd.Label != "" {
			ebitenutil.DebugPrintAt(screen, cmd.Label, cmd.LabelX, cmd.LabelY)
		}
	}
	if e.debug {
		e.stats.drawTime = time.Since(start)
		e.drawDebug(screen)
	}
	e.flushScreenshots(screen)
}

func commandGeoM(t [6]float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}
