package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// degenerateLength is the AxisLength below which the axis can no longer be
// recovered from x, y and z.
const degenerateLength = 1e-12

// AxisLength returns |sin(acos(w))|, the largest magnitude x, y or z can
// have for the given w. w is clamped first so acos is always defined.
func AxisLength(w float64) float64 {
	return math.Abs(math.Sin(math.Acos(mgl64.Clamp(w, -1, 1))))
}

// state is the engine's committed orientation.
type state struct {
	quat       mgl64.Quat
	axis       mgl64.Vec3
	axisLength float64
	branch     Sign
}

func initialState() state {
	return state{
		quat:   mgl64.QuatIdent(),
		axis:   DefaultAxis,
		branch: Positive,
	}
}

// updateFromW sets w and rescales the current axis into x, y, z. The axis
// direction is never derived from w.
func (s *state) updateFromW(rawW float64) Outcome {
	outcome := Applied
	w := rawW
	if w > 1 || w < -1 {
		w = mgl64.Clamp(w, -1, 1)
		outcome = Clamped
	}

	s.axisLength = AxisLength(w)
	s.quat = mgl64.Quat{W: w, V: s.axis.Mul(s.axisLength)}
	return outcome
}

// updateFromAxisComponent sets x, y or z to raw (clamped to the current
// AxisLength), repairs the axis and derives the two other components from
// it. w is left alone.
func (s *state) updateFromAxisComponent(c Component, raw float64) Outcome {
	if s.axisLength < degenerateLength {
		return Degenerate
	}

	outcome := Applied
	l := s.axisLength
	if raw > l || raw < -l {
		raw = mgl64.Clamp(raw, -l, l)
		outcome = Clamped
	}

	// raw/l can land a rounding step outside [-1, 1]; UpdateAxis clamps it
	// back without that counting as a user-visible clamp.
	axis, branch, axisOutcome := UpdateAxis(c, raw/l, s.axis, s.branch)
	if axisOutcome == Unsolvable {
		return Unsolvable
	}

	i := c.index()
	if axis == s.axis {
		s.quat.V[i] = raw
		return outcome
	}

	s.axis = axis
	s.branch = branch
	v := axis.Mul(l)
	v[i] = raw
	s.quat.V = v
	return outcome
}
