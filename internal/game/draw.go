package game

import (
	"fmt"
	"image/color"

	"github.com/39bytes/cloth-sim/internal/cloth"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	stickColor     = color.RGBA{235, 235, 235, 255}
	highlightColor = color.RGBA{220, 60, 60, 255}
)

// scratch segment buffer, reused across frames
var segments []cloth.Segment

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{10, 10, 12, 255})

	if bg := g.assets.Get("backdrop"); bg != nil {
		screen.DrawImage(bg, nil)
	}

	segments = segments[:0]
	for _, c := range g.scene.Cloths {
		segments = c.AppendSegments(segments)
	}

	for _, seg := range segments {
		clr := stickColor
		if seg.Selected {
			clr = highlightColor
		}
		vector.StrokeLine(
			screen,
			float32(seg.A.X), float32(seg.A.Y),
			float32(seg.B.X), float32(seg.B.Y),
			1, // line width
			clr,
			false,
		)
	}

	stats := g.scene.Stats()
	hud := fmt.Sprintf(
		"Sticks: %d\nBroken: %d  Torn: %d\nLMB drag  RMB tear\nSpace pause  R reset",
		len(segments),
		stats.SticksBroken, stats.PointsTorn,
	)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	if g.scene.Paused {
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.FillRect(
			screen,
			0, 0,
			float32(sw), float32(sh),
			color.RGBA{0, 0, 0, 140},
			false,
		)
		ebitenutil.DebugPrintAt(screen, "PAUSED", 8, 90)
		ebitenutil.DebugPrintAt(screen, "Press the space bar to resume", 8, 110)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", 8, 130)
	}
}
