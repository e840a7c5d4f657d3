package quatviz

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tandukion/quaternion-visualization/orient"
)

// Scene is the world shown around the orientation: grid, world axes, the
// arrow rotated by the committed quaternion and the rotation axis. It only
// reads from its source.
type Scene struct {
	source orient.SnapshotSource
	camera *Camera

	lineLength float64
	lineWidth  float32

	grid  *LineModel
	axes  *LineModel
	arrow *LineModel
}

func NewScene(cfg Config, source orient.SnapshotSource) *Scene {
	return &Scene{
		source:     source,
		camera:     NewCamera(cfg.CameraPosition, cfg.FieldOfView),
		lineLength: cfg.LineLength,
		lineWidth:  cfg.LineWidth,
		grid:       NewGrid(cfg.GridSize, cfg.GridDivisions),
		axes:       NewAxesHelper(cfg.LineLength, cfg.LineWidth),
		arrow:      NewArrow(cfg.LineLength, cfg.LineWidth),
	}
}

func (s *Scene) Camera() *Camera {
	return s.camera
}

// Segments returns every world-space segment of the current frame, back
// to front: grid, world axes, axis indicator, arrow.
func (s *Scene) Segments() []Segment {
	snap := s.source.Snapshot()

	out := make([]Segment, 0, len(s.grid.Segments)+len(s.axes.Segments)+len(s.arrow.Segments)+1)
	out = append(out, s.grid.Segments...)
	out = append(out, s.axes.Segments...)
	out = append(out, Segment{
		To:    snap.Axis.Mul(s.lineLength),
		Color: colorAxisIn,
		Width: s.lineWidth / 2,
	})
	out = append(out, s.arrow.Transformed(snap.Rotate)...)
	return out
}

// Paint projects the frame into vp and hands the visible lines to d.
func (s *Scene) Paint(d LineDrawer, vp Viewport) {
	p := NewProjector(s.camera, vp)
	for _, seg := range s.Segments() {
		x0, y0, x1, y1, ok := p.ProjectSegment(seg.From, seg.To)
		if !ok {
			continue
		}
		d.DrawLine(float32(x0), float32(y0), float32(x1), float32(y1), seg.Width, seg.Color)
	}
}

// ArrowTip returns the world position of the arrow tip.
func (s *Scene) ArrowTip() mgl64.Vec3 {
	return s.source.Snapshot().Rotate(mgl64.Vec3{s.lineLength, 0, 0})
}
