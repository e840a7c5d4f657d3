// Package tui is a terminal front end for the orientation editor, built on
// tcell. It shares the scene and controls with the windowed viewer.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	quatviz "github.com/tandukion/quaternion-visualization"
	"github.com/tandukion/quaternion-visualization/log"
	"github.com/tandukion/quaternion-visualization/orient"
)

const (
	panelCols   = 34
	redrawEvery = time.Second / 30
	fineStep    = 0.01
	coarseStep  = 0.1
	orbitStep   = 0.1
)

// App drives one engine from a tcell screen. All engine edits happen on the
// goroutine running Run.
type App struct {
	screen   tcell.Screen
	scene    *quatviz.Scene
	controls *quatviz.Controls
	logger   log.Logger
}

func New(screen tcell.Screen, cfg quatviz.Config, engine quatviz.Editor) *App {
	logger := log.New("tui")
	return &App{
		screen:   screen,
		scene:    quatviz.NewScene(cfg, engine),
		controls: quatviz.NewControls(engine, logger),
		logger:   logger,
	}
}

// Run draws and handles input until the user quits or ctx is done. The
// screen must already be initialized; Run does not finalize it.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(redrawEvery)
	defer ticker.Stop()

	a.logger.Notice("terminal front end started")
	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.HandleEvent(ev) {
				a.logger.Notice("terminal front end stopped")
				return nil
			}
		case <-ticker.C:
			a.Draw()
		}
	}
}

// HandleEvent applies one input event and reports whether the app should
// exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	c := a.controls
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		if !c.Editing() {
			return true
		}
		c.Cancel()
	case tcell.KeyEnter:
		if _, err := c.Commit(); err != nil {
			a.logger.Warning(err)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		c.Backspace()
	case tcell.KeyUp, tcell.KeyBacktab:
		c.MoveFocus(-1)
	case tcell.KeyDown, tcell.KeyTab:
		c.MoveFocus(1)
	case tcell.KeyRight:
		c.Nudge(fineStep)
	case tcell.KeyLeft:
		c.Nudge(-fineStep)
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return false
}

func (a *App) handleRune(r rune) bool {
	c := a.controls
	if c.Editing() {
		c.Type(r)
		return false
	}
	switch r {
	case 'q':
		return true
	case 'r':
		c.Reset()
	case ']':
		c.Nudge(coarseStep)
	case '[':
		c.Nudge(-coarseStep)
	case 'h':
		a.scene.Camera().AddAngle(orbitStep, 0)
	case 'l':
		a.scene.Camera().AddAngle(-orbitStep, 0)
	case 'k':
		a.scene.Camera().AddAngle(0, orbitStep)
	case 'j':
		a.scene.Camera().AddAngle(0, -orbitStep)
	case 'x', 'y', 'z', 'w':
		comp, _ := orient.ParseComponent(string(r))
		c.SetFocus(comp)
	default:
		c.Type(r)
	}
	return false
}

// Draw renders the controls on the left and the scene on the right.
func (a *App) Draw() {
	a.screen.Clear()
	cols, rows := a.screen.Size()

	a.drawControls(rows)

	if cols > panelCols+2 && rows > 2 {
		canvas := &cellCanvas{screen: a.screen, originX: panelCols, cols: cols - panelCols, rows: rows - 1}
		a.scene.Paint(canvas, canvas.viewport())
	}

	a.drawText(0, rows-1, a.controls.Status(), tcell.StyleDefault.Foreground(tcell.ColorSilver))
	a.screen.Show()
}

func (a *App) drawControls(rows int) {
	focus := a.controls.Focus()
	a.drawText(1, 0, "quaternion", tcell.StyleDefault.Bold(true))
	for i, d := range a.controls.Displays() {
		y := 2 + i*2
		if y >= rows-1 {
			return
		}
		style := tcell.StyleDefault
		marker := " "
		if d.Component == focus {
			style = style.Foreground(tcell.ColorYellow)
			marker = ">"
		}
		text := d.Text
		if d.Editing {
			text += "_"
		}
		line := fmt.Sprintf("%s %s %s %-8s", marker, d.Component, sliderBar(d.Fraction(), 14), text)
		a.drawText(0, y, line, style)
	}
	help := []string{"←/→ [/]   nudge", "x y z w   focus", "0-9 enter set", "h j k l   orbit", "r reset   q quit"}
	for i, line := range help {
		if y := 11 + i; y < rows-1 {
			a.drawText(1, y, line, tcell.StyleDefault.Dim(true))
		}
	}
}

// sliderBar draws a track of width cells with a knob at fraction.
func sliderBar(fraction float64, width int) string {
	knob := int(math.Round(fraction * float64(width-1)))
	bar := make([]rune, width)
	for i := range bar {
		bar[i] = '-'
	}
	if knob >= 0 && knob < width {
		bar[knob] = '|'
	}
	return "[" + string(bar) + "]"
}

func (a *App) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// cellCanvas rasterizes lines into terminal cells. Cells are about twice
// as tall as wide, so the scene is projected at double vertical
// resolution and halved when plotting.
type cellCanvas struct {
	screen     tcell.Screen
	originX    int
	cols, rows int
}

func (c *cellCanvas) viewport() quatviz.Viewport {
	return quatviz.Viewport{Width: float64(c.cols), Height: float64(c.rows * 2)}
}

func (c *cellCanvas) DrawLine(x0, y0, x1, y1 float32, width float32, clr color.RGBA) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
	ch := lineRune(float64(x1-x0), float64(y1-y0)/2)
	plotLine(int(math.Round(float64(x0))), int(math.Round(float64(y0)/2)),
		int(math.Round(float64(x1))), int(math.Round(float64(y1)/2)),
		func(x, y int) {
			if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
				return
			}
			c.screen.SetContent(c.originX+x, y, ch, nil, style)
		})
}

// lineRune picks a character that follows the direction of a line in cell
// space.
func lineRune(dx, dy float64) rune {
	if dx == 0 && dy == 0 {
		return '*'
	}
	angle := math.Atan2(-dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 180
	}
	switch {
	case angle < 22.5 || angle >= 157.5:
		return '-'
	case angle < 67.5:
		return '/'
	case angle < 112.5:
		return '|'
	default:
		return '\\'
	}
}

// plotLine walks the cells between two points with Bresenham's algorithm.
func plotLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
