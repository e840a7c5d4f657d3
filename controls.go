package quatviz

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tandukion/quaternion-visualization/log"
	"github.com/tandukion/quaternion-visualization/orient"
)

// Display is what one row of controls shows: a slider and a text box
// mirroring the same component.
type Display struct {
	Component orient.Component
	Value     float64
	Min, Max  float64
	Text      string
	Editing   bool
}

// Fraction returns where the slider knob sits on its track, in [0, 1].
func (d Display) Fraction() float64 {
	return SliderFraction(d.Value, d.Min, d.Max)
}

// SliderFraction maps value in [min, max] onto [0, 1]. An empty range puts
// the knob in the middle.
func SliderFraction(value, min, max float64) float64 {
	if max <= min {
		return 0.5
	}
	f := (value - min) / (max - min)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// SliderValue is the inverse of SliderFraction.
func SliderValue(fraction, min, max float64) float64 {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	return min + fraction*(max-min)
}

// FormatValue renders a component the way the text boxes show it.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// Editor is the part of orient.Engine the controls drive.
type Editor interface {
	orient.SnapshotSource
	Apply(c orient.Component, raw float64) orient.Snapshot
	ApplyString(name, raw string) (orient.Snapshot, error)
	Reset() orient.Snapshot
}

// Controls routes slider and text box edits through the engine and keeps
// all eight displays in step with the committed state.
type Controls struct {
	engine   Editor
	logger   log.Logger
	rows     [4]Display
	focus    int
	editing  bool
	buffer   strings.Builder
	lastErr  error
	lastSnap orient.Snapshot
}

func NewControls(engine Editor, logger log.Logger) *Controls {
	c := &Controls{
		engine: engine,
		logger: logger,
	}
	c.Refresh(engine.Snapshot())
	return c
}

// Refresh rewrites every display from s. A text box being typed into keeps
// its buffer.
func (c *Controls) Refresh(s orient.Snapshot) {
	c.lastSnap = s
	for i, comp := range orient.Components {
		min, max := s.Range(comp)
		v := s.Component(comp)
		c.rows[i] = Display{
			Component: comp,
			Value:     v,
			Min:       min,
			Max:       max,
			Text:      FormatValue(v),
		}
	}
	if c.editing {
		c.rows[c.focus].Text = c.buffer.String()
		c.rows[c.focus].Editing = true
	}
}

func (c *Controls) Displays() [4]Display {
	return c.rows
}

func (c *Controls) Snapshot() orient.Snapshot {
	return c.lastSnap
}

// Focus is the row that keyboard input goes to.
func (c *Controls) Focus() orient.Component {
	return orient.Components[c.focus]
}

// SetFocus moves keyboard focus, dropping any uncommitted text.
func (c *Controls) SetFocus(comp orient.Component) {
	c.Cancel()
	for i, v := range orient.Components {
		if v == comp {
			c.focus = i
		}
	}
	c.Refresh(c.lastSnap)
}

// MoveFocus moves keyboard focus by delta rows, wrapping around.
func (c *Controls) MoveFocus(delta int) {
	n := len(orient.Components)
	c.SetFocus(orient.Components[((c.focus+delta)%n+n)%n])
}

// Slide applies a slider value for comp.
func (c *Controls) Slide(comp orient.Component, value float64) orient.Snapshot {
	c.lastErr = nil
	s := c.engine.Apply(comp, value)
	c.Refresh(s)
	return s
}

// SlideFraction applies the value at fraction of comp's slider track.
func (c *Controls) SlideFraction(comp orient.Component, fraction float64) orient.Snapshot {
	min, max := c.lastSnap.Range(comp)
	return c.Slide(comp, SliderValue(fraction, min, max))
}

// Nudge moves the focused slider by delta.
func (c *Controls) Nudge(delta float64) orient.Snapshot {
	comp := c.Focus()
	return c.Slide(comp, c.lastSnap.Component(comp)+delta)
}

// Type appends r to the focused text box.
func (c *Controls) Type(r rune) {
	if !strings.ContainsRune("0123456789.-+eE", r) {
		return
	}
	if !c.editing {
		c.editing = true
		c.buffer.Reset()
	}
	c.buffer.WriteRune(r)
	c.Refresh(c.lastSnap)
}

// Backspace removes the last typed rune.
func (c *Controls) Backspace() {
	if !c.editing {
		c.editing = true
		c.buffer.Reset()
		c.buffer.WriteString(c.rows[c.focus].Text)
	}
	text := []rune(c.buffer.String())
	if len(text) > 0 {
		text = text[:len(text)-1]
	}
	c.buffer.Reset()
	c.buffer.WriteString(string(text))
	c.Refresh(c.lastSnap)
}

// Commit applies the typed text. Text that does not parse is dropped and
// the error kept for display.
func (c *Controls) Commit() (orient.Snapshot, error) {
	if !c.editing {
		return c.lastSnap, nil
	}
	text := c.buffer.String()
	c.editing = false
	c.buffer.Reset()

	s, err := c.engine.ApplyString(c.Focus().String(), text)
	c.lastErr = err
	if err != nil {
		c.logger.Infof("rejected input: %v", err)
	}
	c.Refresh(s)
	return s, err
}

// Cancel drops uncommitted text.
func (c *Controls) Cancel() {
	if !c.editing {
		return
	}
	c.editing = false
	c.buffer.Reset()
	c.Refresh(c.lastSnap)
}

func (c *Controls) Editing() bool {
	return c.editing
}

// Reset returns the engine to its initial state.
func (c *Controls) Reset() orient.Snapshot {
	c.Cancel()
	c.lastErr = nil
	s := c.engine.Reset()
	c.Refresh(s)
	return s
}

// Status is a one-line summary of the committed state.
func (c *Controls) Status() string {
	s := c.lastSnap
	status := fmt.Sprintf("angle %.1f°  axis (%.3f, %.3f, %.3f)  len %.3f  %s",
		mgl64.RadToDeg(s.RotationAngle()), s.Axis[0], s.Axis[1], s.Axis[2], s.AxisLength, s.Outcome)
	if c.lastErr != nil {
		status += "  error: " + c.lastErr.Error()
	}
	return status
}
