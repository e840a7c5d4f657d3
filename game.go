package quatviz

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tandukion/quaternion-visualization/log"
	"github.com/tandukion/quaternion-visualization/orient"
)

const (
	panelWidth   = 280
	rowTop       = 40
	rowHeight    = 60
	trackOffsetX = 30
	trackWidth   = 150
	trackHeight  = 8
	textOffsetX  = 196
	textWidth    = 70
	textHeight   = 20
	nudgeStep    = 0.01
	orbitSpeed   = 1.0 / 200
	zoomStep     = 0.9
)

var (
	colorPanel      = color.RGBA{R: 30, G: 30, B: 36, A: 255}
	colorTrack      = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	colorKnob       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colorTextBox    = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	colorFocusedBox = color.RGBA{R: 255, G: 200, B: 0, A: 255}
)

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type hitPart int

const (
	hitNone hitPart = iota
	hitSlider
	hitText
	hitViewport
)

// panelLayout places the control rows to the right of the 3D viewport.
type panelLayout struct {
	width, height int
}

func (l panelLayout) viewport() Viewport {
	w := l.width - panelWidth
	if w < 1 {
		w = 1
	}
	return Viewport{Width: float64(w), Height: float64(l.height)}
}

func (l panelLayout) panelX() float64 {
	return float64(l.width - panelWidth)
}

func (l panelLayout) track(row int) rect {
	y := float64(rowTop + row*rowHeight)
	return rect{x: l.panelX() + trackOffsetX, y: y, w: trackWidth, h: trackHeight}
}

// trackHitbox is the track grown vertically so it is easy to grab.
func (l panelLayout) trackHitbox(row int) rect {
	t := l.track(row)
	return rect{x: t.x - 6, y: t.y - 8, w: t.w + 12, h: t.h + 16}
}

func (l panelLayout) textBox(row int) rect {
	y := float64(rowTop + row*rowHeight)
	return rect{x: l.panelX() + textOffsetX, y: y - 6, w: textWidth, h: textHeight}
}

func (l panelLayout) hit(x, y float64) (int, hitPart) {
	for row := range orient.Components {
		if l.trackHitbox(row).contains(x, y) {
			return row, hitSlider
		}
		if l.textBox(row).contains(x, y) {
			return row, hitText
		}
	}
	vp := l.viewport()
	if x >= 0 && x < vp.Width && y >= 0 && y < vp.Height {
		return -1, hitViewport
	}
	return -1, hitNone
}

// fraction converts a cursor x into a position along row's track.
func (l panelLayout) fraction(row int, x float64) float64 {
	t := l.track(row)
	return (x - t.x) / t.w
}

// Game is the ebiten front end: a 3D view on the left, four slider and
// text box rows on the right. Update is the only place the engine is
// edited; Draw only reads.
type Game struct {
	cfg      Config
	layout   panelLayout
	scene    *Scene
	controls *Controls
	logger   log.Logger
	bg       color.RGBA

	dragRow      int
	orbiting     bool
	lastX, lastY int
}

func NewGame(cfg Config, engine Editor) *Game {
	logger := log.New("viewer")
	g := &Game{
		cfg:      cfg,
		layout:   panelLayout{width: cfg.Width, height: cfg.Height},
		scene:    NewScene(cfg, engine),
		controls: NewControls(engine, logger),
		logger:   logger,
		bg:       cfg.BackgroundColor(),
		dragRow:  -1,
	}
	logger.Noticef("viewer ready, %dx%d", cfg.Width, cfg.Height)
	return g
}

func (g *Game) Update() error {
	g.updateMouse()
	g.updateKeyboard()
	return nil
}

func (g *Game) updateMouse() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		row, part := g.layout.hit(x, y)
		switch part {
		case hitSlider:
			g.dragRow = row
			g.controls.SetFocus(orient.Components[row])
		case hitText:
			g.controls.SetFocus(orient.Components[row])
		case hitViewport:
			g.orbiting = true
		}
		g.lastX, g.lastY = cx, cy
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragRow >= 0 {
			g.controls.SlideFraction(orient.Components[g.dragRow], g.layout.fraction(g.dragRow, x))
		} else if g.orbiting {
			dx := float64(cx - g.lastX)
			dy := float64(cy - g.lastY)
			g.scene.Camera().AddAngle(-dx*orbitSpeed, dy*orbitSpeed)
		}
		g.lastX, g.lastY = cx, cy
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragRow = -1
		g.orbiting = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scene.Camera().Zoom(math.Pow(zoomStep, wy))
	}
}

func (g *Game) updateKeyboard() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if (r == 'r' || r == 'R') && !g.controls.Editing() {
			g.controls.Reset()
			continue
		}
		g.controls.Type(r)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.controls.Backspace()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if _, err := g.controls.Commit(); err != nil {
			g.logger.Warning(err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.controls.Cancel()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab), inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.controls.MoveFocus(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.controls.MoveFocus(-1)
	case isKeyRepeating(ebiten.KeyArrowRight):
		g.controls.Nudge(nudgeStep)
	case isKeyRepeating(ebiten.KeyArrowLeft):
		g.controls.Nudge(-nudgeStep)
	}
}

// isKeyRepeating fires on press and then every few ticks while held.
func isKeyRepeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 20 && d%4 == 0)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.scene.Paint(ScreenDrawer{Screen: screen}, g.layout.viewport())
	g.drawPanel(screen)

	vp := g.layout.viewport()
	ebitenutil.DebugPrintAt(screen, g.controls.Status(), 8, int(vp.Height)-20)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	px := g.layout.panelX()
	fillRect(screen, float32(px), 0, panelWidth, float32(g.cfg.Height), colorPanel)

	focus := g.controls.Focus()
	for row, d := range g.controls.Displays() {
		t := g.layout.track(row)
		ebitenutil.DebugPrintAt(screen, d.Component.String(), int(px)+10, int(t.y)-6)
		fillRect(screen, float32(t.x), float32(t.y), float32(t.w), float32(t.h), colorTrack)

		kx := t.x + d.Fraction()*t.w
		fillRect(screen, float32(kx-4), float32(t.y-4), 8, float32(t.h+8), colorKnob)

		ebitenutil.DebugPrintAt(screen, FormatValue(d.Min), int(t.x), int(t.y)+10)
		ebitenutil.DebugPrintAt(screen, FormatValue(d.Max), int(t.x+t.w)-36, int(t.y)+10)

		box := g.layout.textBox(row)
		boxColor := colorTextBox
		if d.Component == focus {
			boxColor = colorFocusedBox
		}
		strokeRect(screen, float32(box.x), float32(box.y), float32(box.w), float32(box.h), boxColor)
		text := d.Text
		if d.Editing {
			text += "_"
		}
		ebitenutil.DebugPrintAt(screen, text, int(box.x)+4, int(box.y)+2)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
