package quatviz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	minCameraDistance = 2
	maxCameraDistance = 50
	maxPitch          = math.Pi/2 - 0.01
	nearPlane         = 0.1
	farPlane          = 1000
)

// Camera orbits a target point, like orbit controls on a web viewer.
type Camera struct {
	target   mgl64.Vec3
	distance float64
	yaw      float64
	pitch    float64
	fovy     float64
}

// NewCamera places a camera at position looking at the origin with the
// given vertical field of view in degrees.
func NewCamera(position mgl64.Vec3, fovDegrees float64) *Camera {
	c := &Camera{
		fovy: mgl64.DegToRad(fovDegrees),
	}
	c.SetPosition(position)
	return c
}

// SetPosition moves the camera, keeping it pointed at its target.
func (c *Camera) SetPosition(position mgl64.Vec3) {
	dir := position.Sub(c.target)
	c.distance = mgl64.Clamp(dir.Len(), minCameraDistance, maxCameraDistance)
	c.yaw = math.Atan2(dir.X(), dir.Z())
	c.pitch = angleUp(dir)
}

// angleUp returns the elevation of dir above the XZ plane.
func angleUp(dir mgl64.Vec3) float64 {
	hypot := dir.Len()
	if hypot == 0 {
		return 0
	}
	return mgl64.Clamp(math.Asin(dir.Y()/hypot), -maxPitch, maxPitch)
}

func (c *Camera) Position() mgl64.Vec3 {
	cp := math.Cos(c.pitch)
	offset := mgl64.Vec3{
		cp * math.Sin(c.yaw),
		math.Sin(c.pitch),
		cp * math.Cos(c.yaw),
	}
	return c.target.Add(offset.Mul(c.distance))
}

// AddAngle orbits the camera by yaw radians around Y and pitch radians
// up or down. Pitch stops short of the poles.
func (c *Camera) AddAngle(yaw, pitch float64) {
	c.yaw += yaw
	c.pitch = mgl64.Clamp(c.pitch+pitch, -maxPitch, maxPitch)
}

// Zoom scales the distance to the target by factor.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.distance = mgl64.Clamp(c.distance*factor, minCameraDistance, maxCameraDistance)
}

func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), c.target, mgl64.Vec3{0, 1, 0})
}

func (c *Camera) ProjectionMatrix(width, height int) mgl64.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return mgl64.Perspective(c.fovy, aspect, nearPlane, farPlane)
}
