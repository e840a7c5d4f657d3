package quatviz

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tandukion/quaternion-visualization/orient"
)

type fixedSource struct {
	snap orient.Snapshot
}

func (f fixedSource) Snapshot() orient.Snapshot {
	return f.snap
}

func identitySource() fixedSource {
	return fixedSource{snap: orient.Snapshot{Quat: mgl64.QuatIdent(), Axis: orient.DefaultAxis}}
}

func TestSceneSegments(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScene(cfg, identitySource())

	segments := s.Segments()
	expected := (cfg.GridDivisions+1)*2 + 3 + 1 + 2
	if len(segments) != expected {
		t.Fatalf("len(Segments()) = %d, want %d", len(segments), expected)
	}

	indicator := segments[len(segments)-3]
	if !indicator.To.ApproxEqualThreshold(mgl64.Vec3{cfg.LineLength, 0, 0}, float64EqualityThreshold) {
		t.Errorf("axis indicator ends at %v, want %v", indicator.To, mgl64.Vec3{cfg.LineLength, 0, 0})
	}
}

func TestSceneArrowFollowsQuaternion(t *testing.T) {
	testCases := []struct {
		name     string
		quat     mgl64.Quat
		expected mgl64.Vec3
	}{
		{"Identity", mgl64.QuatIdent(), mgl64.Vec3{3, 0, 0}},
		{"Quarter turn around Z", mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}), mgl64.Vec3{0, 3, 0}},
		{"Half turn around Y", mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{-3, 0, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := fixedSource{snap: orient.Snapshot{Quat: tc.quat, Axis: orient.DefaultAxis}}
			s := NewScene(DefaultConfig(), src)
			if got := s.ArrowTip(); !got.ApproxEqualThreshold(tc.expected, float64EqualityThreshold) {
				t.Errorf("ArrowTip() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestScenePaint(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScene(cfg, identitySource())

	rec := &lineRecorder{}
	vp := Viewport{Width: 520, Height: 600}
	s.Paint(rec, vp)

	if len(rec.lines) != len(s.Segments()) {
		t.Errorf("painted %d lines, want all %d visible from the default camera", len(rec.lines), len(s.Segments()))
	}

	arrow := rec.lines[len(rec.lines)-2]
	if arrow.clr != colorArrow || arrow.width != cfg.LineWidth {
		t.Errorf("arrow shaft drawn as %+v", arrow)
	}
	// The shaft starts at the origin, which the camera looks at.
	if !almostEqual(float64(arrow.x0), 260) || !almostEqual(float64(arrow.y0), 300) {
		t.Errorf("arrow starts at (%v, %v), want the viewport centre", arrow.x0, arrow.y0)
	}
}

func TestNewGrid(t *testing.T) {
	if got := len(NewGrid(10, 0).Segments); got != 0 {
		t.Errorf("NewGrid(10, 0) has %d segments, want 0", got)
	}
	g := NewGrid(4, 2)
	if got := len(g.Segments); got != 6 {
		t.Fatalf("NewGrid(4, 2) has %d segments, want 6", got)
	}
	if g.Segments[0].From != (mgl64.Vec3{-2, 0, -2}) {
		t.Errorf("first grid line starts at %v", g.Segments[0].From)
	}
	if g.Segments[2].Color != colorGridC {
		t.Errorf("centre line colour = %v, want %v", g.Segments[2].Color, colorGridC)
	}
}
