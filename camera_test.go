package quatviz

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func TestCameraPosition(t *testing.T) {
	testCases := []struct {
		name     string
		position mgl64.Vec3
		expected mgl64.Vec3
	}{
		{"Default viewer position", mgl64.Vec3{5, 5, 5}, mgl64.Vec3{5, 5, 5}},
		{"On the Z axis", mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 10}},
		{"Below the grid", mgl64.Vec3{-3, -4, 2}, mgl64.Vec3{-3, -4, 2}},
		{"Too close is pushed out", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{minCameraDistance, 0, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(tc.position, 40)
			if got := c.Position(); !got.ApproxEqualThreshold(tc.expected, float64EqualityThreshold) {
				t.Errorf("Position() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestCameraAddAngleStopsAtPole(t *testing.T) {
	c := NewCamera(mgl64.Vec3{5, 5, 5}, 40)
	c.AddAngle(0, 10)
	if c.pitch != maxPitch {
		t.Errorf("pitch = %v, want %v", c.pitch, maxPitch)
	}
	c.AddAngle(0, -20)
	if c.pitch != -maxPitch {
		t.Errorf("pitch = %v, want %v", c.pitch, -maxPitch)
	}
}

func TestCameraOrbitKeepsDistance(t *testing.T) {
	c := NewCamera(mgl64.Vec3{5, 5, 5}, 40)
	before := c.Position().Len()
	c.AddAngle(1.3, -0.4)
	if after := c.Position().Len(); !almostEqual(before, after) {
		t.Errorf("distance changed from %v to %v", before, after)
	}
}

func TestCameraZoom(t *testing.T) {
	c := NewCamera(mgl64.Vec3{0, 0, 10}, 40)
	c.Zoom(0.5)
	if !almostEqual(c.distance, 5) {
		t.Errorf("distance = %v, want 5", c.distance)
	}
	c.Zoom(100)
	if c.distance != maxCameraDistance {
		t.Errorf("distance = %v, want %v", c.distance, maxCameraDistance)
	}
	c.Zoom(0)
	if c.distance != maxCameraDistance {
		t.Errorf("Zoom(0) changed distance to %v", c.distance)
	}
}
