package quatviz

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const antiAliasLines = true

// LineDrawer receives projected segments in screen coordinates.
type LineDrawer interface {
	DrawLine(x0, y0, x1, y1 float32, width float32, clr color.RGBA)
}

// ScreenDrawer draws onto an ebiten image.
type ScreenDrawer struct {
	Screen *ebiten.Image
}

func (d ScreenDrawer) DrawLine(x0, y0, x1, y1 float32, width float32, clr color.RGBA) {
	vector.StrokeLine(d.Screen, x0, y0, x1, y1, width, clr, antiAliasLines)
}

func fillRect(screen *ebiten.Image, x, y, w, h float32, clr color.RGBA) {
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, clr color.RGBA) {
	vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
}
