package quatviz

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the viewer settings.
type Config struct {
	Width      int
	Height     int
	Background string

	LineLength float64
	LineWidth  float32

	CameraPosition mgl64.Vec3
	FieldOfView    float64 // degrees, vertical

	GridSize      float64
	GridDivisions int

	InitialW    float64
	InitialAxis mgl64.Vec3
}

func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		Background:     "#000000",
		LineLength:     3,
		LineWidth:      3,
		CameraPosition: mgl64.Vec3{5, 5, 5},
		FieldOfView:    40,
		GridSize:       10,
		GridDivisions:  10,
		InitialW:       1,
		InitialAxis:    mgl64.Vec3{1, 0, 0},
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.LineLength <= 0 || c.LineWidth <= 0 {
		return fmt.Errorf("%w: line length %v width %v", ErrInvalidConfig, c.LineLength, c.LineWidth)
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		return fmt.Errorf("%w: field of view %v", ErrInvalidConfig, c.FieldOfView)
	}
	if c.GridDivisions < 0 || c.GridSize < 0 {
		return fmt.Errorf("%w: grid %v/%d", ErrInvalidConfig, c.GridSize, c.GridDivisions)
	}
	if c.CameraPosition.Len() == 0 {
		return fmt.Errorf("%w: camera at the origin", ErrInvalidConfig)
	}
	if math.IsNaN(c.InitialW) || math.IsInf(c.InitialW, 0) {
		return fmt.Errorf("%w: initial w %v", ErrInvalidConfig, c.InitialW)
	}
	if !usableAxis(c.InitialAxis) {
		return fmt.Errorf("%w: initial axis %v", ErrInvalidConfig, c.InitialAxis)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed background, black if it does not parse.
func (c Config) BackgroundColor() color.RGBA {
	clr, err := ParseColor(c.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return clr
}

// minAxisComponent is the smallest largest-component an initial axis may
// have and still be taken as a direction.
const minAxisComponent = 1e-9

func usableAxis(v mgl64.Vec3) bool {
	m := 0.0
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
		m = math.Max(m, math.Abs(f))
	}
	return m >= minAxisComponent
}

// ParseColor parses "#rrggbb", "#rgb" or the same digits behind "0x" or
// no prefix at all.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimSpace(s)
	hex = "#" + strings.TrimPrefix(strings.TrimPrefix(hex, "#"), "0x")
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q: %w", ErrInvalidConfig, s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// ParseAxis parses a vector written as "x,y,z".
func ParseAxis(s string) (mgl64.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("%w: axis %q, want x,y,z", ErrInvalidConfig, s)
	}
	var v mgl64.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("%w: axis %q: %w", ErrInvalidConfig, s, err)
		}
		v[i] = f
	}
	return v, nil
}
