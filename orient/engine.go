package orient

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tandukion/quaternion-visualization/log"
	"gonum.org/v1/gonum/num/quat"
)

// Snapshot is a committed, consistent view of the engine state.
type Snapshot struct {
	Quat       mgl64.Quat
	Axis       mgl64.Vec3
	AxisLength float64
	// Outcome describes the edit that produced this snapshot.
	Outcome Outcome
}

// Component returns the committed value of c.
func (s Snapshot) Component(c Component) float64 {
	if c == W {
		return s.Quat.W
	}
	return s.Quat.V[c.index()]
}

// Range returns the interval the UI should offer for c.
func (s Snapshot) Range(c Component) (min, max float64) {
	if c == W {
		return -1, 1
	}
	return -s.AxisLength, s.AxisLength
}

// Angle returns acos(w), half of the rotation angle encoded by the
// quaternion.
func (s Snapshot) Angle() float64 {
	return math.Acos(mgl64.Clamp(s.Quat.W, -1, 1))
}

// RotationAngle returns the full angle of rotation around Axis.
func (s Snapshot) RotationAngle() float64 {
	return 2 * s.Angle()
}

// Number returns the quaternion as a gonum quaternion.
func (s Snapshot) Number() quat.Number {
	return quat.Number{Real: s.Quat.W, Imag: s.Quat.V[0], Jmag: s.Quat.V[1], Kmag: s.Quat.V[2]}
}

// Rotate rotates v by the committed quaternion.
func (s Snapshot) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return s.Quat.Rotate(v)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("q=(x=%.3f y=%.3f z=%.3f w=%.3f) axis=(%.3f %.3f %.3f) len=%.3f %s",
		s.Quat.V[0], s.Quat.V[1], s.Quat.V[2], s.Quat.W,
		s.Axis[0], s.Axis[1], s.Axis[2], s.AxisLength, s.Outcome)
}

// SnapshotSource is what renderers need from the engine.
type SnapshotSource interface {
	Snapshot() Snapshot
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger replaces the engine's logger.
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithInitial starts the engine at w with the given axis instead of the
// identity. The axis is normalized; a zero or non-finite axis falls back to
// DefaultAxis.
func WithInitial(w float64, axis mgl64.Vec3) Option {
	return func(e *Engine) {
		e.initW = &w
		e.initAxis = axis
	}
}

// Engine owns the orientation and is the only thing that mutates it. It
// is not safe for concurrent use; callers drive it from a single loop.
type Engine struct {
	st       state
	last     Outcome
	logger   log.Logger
	initW    *float64
	initAxis mgl64.Vec3
}

// New returns an engine at the identity rotation with axis (1, 0, 0), or
// at the state given by WithInitial.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: log.New("orient"),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// Reset re-initializes the engine to its starting state. An initial w that
// is NaN is ignored and the engine stays at the identity; an initial axis
// that cannot be normalized falls back to DefaultAxis.
func (e *Engine) Reset() Snapshot {
	e.st = initialState()
	e.last = Applied
	if e.initW == nil {
		return e.Snapshot()
	}

	if axis, ok := normalize(e.initAxis); ok {
		e.st.axis = axis
	} else {
		e.logger.Infof("ignoring initial axis %v", e.initAxis)
	}

	if math.IsNaN(*e.initW) {
		e.logger.Infof("ignoring NaN initial w")
		e.last = Unsolvable
		return e.Snapshot()
	}
	e.last = e.st.updateFromW(*e.initW)
	return e.Snapshot()
}

// unitTolerance bounds how far a normalized vector may be from unit length.
const unitTolerance = 1e-9

// normalize returns v scaled to unit length. v is first divided by its
// largest component so that tiny and huge vectors survive the square root.
func normalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	m := math.Max(math.Abs(v[0]), math.Max(math.Abs(v[1]), math.Abs(v[2])))
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return mgl64.Vec3{}, false
	}
	v = mgl64.Vec3{v[0] / m, v[1] / m, v[2] / m}
	n := v.Mul(1 / v.Len())
	if math.Abs(n.Len()-1) > unitTolerance {
		return mgl64.Vec3{}, false
	}
	return n, true
}

// Snapshot returns the latest committed state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Quat:       e.st.quat,
		Axis:       e.st.axis,
		AxisLength: e.st.axisLength,
		Outcome:    e.last,
	}
}

// Apply edits component c to raw and returns the resulting state. Out of
// range values are clamped; edits that cannot be satisfied leave the state
// valid and are reported through Snapshot.Outcome.
func (e *Engine) Apply(c Component, raw float64) Snapshot {
	if math.IsNaN(raw) {
		e.logger.Infof("ignoring NaN edit of %s", c)
		e.last = Unsolvable
		return e.Snapshot()
	}

	switch c {
	case W:
		e.last = e.st.updateFromW(raw)
	case X, Y, Z:
		e.last = e.st.updateFromAxisComponent(c, raw)
	default:
		e.logger.Warningf("ignoring edit of %s", c)
		return e.Snapshot()
	}

	snap := e.Snapshot()
	if e.last != Applied {
		e.logger.Infof("edit %s=%g %s", c, raw, e.last)
	}
	e.logger.Debugf("edit %s=%g -> %s", c, raw, snap)
	return snap
}

// ApplyString parses a component name and decimal value, as typed into a
// text box, and applies them. Parse errors leave the state untouched.
func (e *Engine) ApplyString(name, raw string) (Snapshot, error) {
	c, err := ParseComponent(name)
	if err != nil {
		return e.Snapshot(), err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return e.Snapshot(), fmt.Errorf("%w for %s: %q", ErrInvalidValue, c, raw)
	}
	return e.Apply(c, v), nil
}
