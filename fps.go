package jamjar

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawDebug renders the debug overlay: FPS/TPS, the cursor in both spaces
// and the drag state, on a translucent panel in the top-left corner.
func (e *Engine) drawDebug(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, 220, 64, color.RGBA{0, 0, 0, 128}, false)

	drag := "-"
	if ent, ok := e.drag.Active(); ok {
		drag = fmt.Sprint(ent)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nscreen: %.0f,%.0f\nworld:  %.1f,%.1f\ndrag: %s  hovered: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		e.cursor.Screen.X, e.cursor.Screen.Y,
		e.cursor.World.X, e.cursor.World.Y,
		drag, e.stats.hovered,
	))
}
