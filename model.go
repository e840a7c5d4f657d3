package quatviz

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	colorRed    = color.RGBA{R: 255, G: 40, B: 40, A: 255}
	colorGreen  = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	colorBlue   = color.RGBA{R: 60, G: 90, B: 255, A: 255}
	colorGrid   = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	colorGridC  = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	colorArrow  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorAxisIn = color.RGBA{R: 255, G: 200, B: 0, A: 255}
)

// Segment is a coloured line in world space.
type Segment struct {
	From, To mgl64.Vec3
	Color    color.RGBA
	Width    float32
}

// LineModel is a set of segments drawn together.
type LineModel struct {
	Segments []Segment
}

func (m *LineModel) add(from, to mgl64.Vec3, clr color.RGBA, width float32) {
	m.Segments = append(m.Segments, Segment{From: from, To: to, Color: clr, Width: width})
}

// Transformed returns a copy of the segments with f applied to each end.
func (m *LineModel) Transformed(f func(mgl64.Vec3) mgl64.Vec3) []Segment {
	out := make([]Segment, len(m.Segments))
	for i, s := range m.Segments {
		s.From = f(s.From)
		s.To = f(s.To)
		out[i] = s
	}
	return out
}

// NewArrow builds the orientation arrow: a shaft along +X and one barb.
func NewArrow(length float64, width float32) *LineModel {
	m := &LineModel{}
	tip := mgl64.Vec3{length, 0, 0}
	m.add(mgl64.Vec3{}, tip, colorArrow, width)
	m.add(tip, mgl64.Vec3{length - 0.5, 0.5, 0}, colorArrow, width)
	return m
}

// NewAxesHelper builds the world X (red), Y (green) and Z (blue) axes.
func NewAxesHelper(length float64, width float32) *LineModel {
	m := &LineModel{}
	m.add(mgl64.Vec3{}, mgl64.Vec3{length, 0, 0}, colorRed, width)
	m.add(mgl64.Vec3{}, mgl64.Vec3{0, length, 0}, colorGreen, width)
	m.add(mgl64.Vec3{}, mgl64.Vec3{0, 0, length}, colorBlue, width)
	return m
}

// NewGrid builds a size×size grid on the XZ plane centred on the origin.
func NewGrid(size float64, divisions int) *LineModel {
	m := &LineModel{}
	if divisions <= 0 {
		return m
	}
	half := size / 2
	step := size / float64(divisions)
	for i := 0; i <= divisions; i++ {
		k := -half + float64(i)*step
		clr := colorGrid
		if i*2 == divisions {
			clr = colorGridC
		}
		m.add(mgl64.Vec3{-half, 0, k}, mgl64.Vec3{half, 0, k}, clr, 1)
		m.add(mgl64.Vec3{k, 0, -half}, mgl64.Vec3{k, 0, half}, clr, 1)
	}
	return m
}
