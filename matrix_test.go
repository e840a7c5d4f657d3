package quatviz

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestProjectPoint(t *testing.T) {
	vp := Viewport{X: 10, Y: 20, Width: 400, Height: 300}
	p := NewProjector(NewCamera(mgl64.Vec3{0, 0, 10}, 40), vp)

	x, y, ok := p.ProjectPoint(mgl64.Vec3{})
	if !ok || !almostEqual(x, 210) || !almostEqual(y, 170) {
		t.Errorf("ProjectPoint(origin) = %v, %v, %v, want the viewport centre", x, y, ok)
	}

	x, y, ok = p.ProjectPoint(mgl64.Vec3{1, 1, 0})
	if !ok || x <= 210 || y >= 170 {
		t.Errorf("ProjectPoint(1, 1, 0) = %v, %v, want right of and above centre", x, y)
	}

	if _, _, ok := p.ProjectPoint(mgl64.Vec3{0, 0, 20}); ok {
		t.Errorf("ProjectPoint() of a point behind the camera reported visible")
	}
}

func TestClipNear(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     mgl64.Vec4
		expected [2]mgl64.Vec4
		ok       bool
	}{
		{
			name:     "Both in front",
			a:        mgl64.Vec4{0, 0, 0, 1},
			b:        mgl64.Vec4{1, 1, 1, 2},
			expected: [2]mgl64.Vec4{{0, 0, 0, 1}, {1, 1, 1, 2}},
			ok:       true,
		},
		{
			name: "Both behind",
			a:    mgl64.Vec4{0, 0, -3, 1},
			b:    mgl64.Vec4{0, 0, -4, 1},
			ok:   false,
		},
		{
			name:     "First behind",
			a:        mgl64.Vec4{0, 0, -3, 1},
			b:        mgl64.Vec4{2, 0, 1, 1},
			expected: [2]mgl64.Vec4{{1, 0, -1, 1}, {2, 0, 1, 1}},
			ok:       true,
		},
		{
			name:     "Second behind",
			a:        mgl64.Vec4{2, 0, 1, 1},
			b:        mgl64.Vec4{0, 0, -3, 1},
			expected: [2]mgl64.Vec4{{2, 0, 1, 1}, {1, 0, -1, 1}},
			ok:       true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b, ok := clipNear(tc.a, tc.b)
			if ok != tc.ok {
				t.Fatalf("clipNear() ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if !a.ApproxEqualThreshold(tc.expected[0], float64EqualityThreshold) ||
				!b.ApproxEqualThreshold(tc.expected[1], float64EqualityThreshold) {
				t.Errorf("clipNear() = %v, %v, want %v", a, b, tc.expected)
			}
		})
	}
}
