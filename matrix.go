package quatviz

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Viewport is a rectangle of the target surface, in pixels.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// Projector maps world-space points onto a viewport.
type Projector struct {
	viewProj mgl64.Mat4
	vp       Viewport
}

func NewProjector(cam *Camera, vp Viewport) Projector {
	proj := cam.ProjectionMatrix(int(vp.Width), int(vp.Height))
	return Projector{
		viewProj: proj.Mul4(cam.ViewMatrix()),
		vp:       vp,
	}
}

func (p Projector) toClip(v mgl64.Vec3) mgl64.Vec4 {
	return p.viewProj.Mul4x1(v.Vec4(1))
}

// toScreen performs the perspective divide and maps NDC to pixels with Y
// pointing down.
func (p Projector) toScreen(clip mgl64.Vec4) (float64, float64) {
	x := clip.X() / clip.W()
	y := clip.Y() / clip.W()
	sx := p.vp.X + (x+1)/2*p.vp.Width
	sy := p.vp.Y + (1-y)/2*p.vp.Height
	return sx, sy
}

// ProjectPoint returns the screen position of v; ok is false when v is
// behind the near plane.
func (p Projector) ProjectPoint(v mgl64.Vec3) (x, y float64, ok bool) {
	clip := p.toClip(v)
	if nearDistance(clip) < 0 || clip.W() <= 0 {
		return 0, 0, false
	}
	x, y = p.toScreen(clip)
	return x, y, true
}

// ProjectSegment clips the segment a-b against the near plane and returns
// its screen endpoints; ok is false when nothing of it is visible.
func (p Projector) ProjectSegment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	ca, cb := p.toClip(a), p.toClip(b)
	ca, cb, ok = clipNear(ca, cb)
	if !ok {
		return 0, 0, 0, 0, false
	}
	x0, y0 = p.toScreen(ca)
	x1, y1 = p.toScreen(cb)
	return x0, y0, x1, y1, true
}

// nearDistance is positive in front of the near plane (z >= -w in clip
// space).
func nearDistance(clip mgl64.Vec4) float64 {
	return clip.Z() + clip.W()
}

func clipNear(a, b mgl64.Vec4) (mgl64.Vec4, mgl64.Vec4, bool) {
	da, db := nearDistance(a), nearDistance(b)
	switch {
	case da < 0 && db < 0:
		return a, b, false
	case da >= 0 && db >= 0:
		return a, b, true
	}

	t := da / (da - db)
	cut := a.Add(b.Sub(a).Mul(t))
	if da < 0 {
		return cut, b, true
	}
	return a, cut, true
}
