// Package orient keeps a unit quaternion and a unit Euler rotation axis in
// sync while single components of either are edited.
package orient

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownComponent = errors.New("unknown component")
	ErrInvalidValue     = errors.New("invalid value")
)

// Component names one editable scalar of the orientation.
type Component int

const (
	X Component = iota
	Y
	Z
	W
)

// Components lists X, Y, Z and W in display order.
var Components = []Component{X, Y, Z, W}

func (c Component) String() string {
	switch c {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	case W:
		return "w"
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

// index returns the position of c inside a Vec3; W has none.
func (c Component) index() int {
	return int(c)
}

// others returns the two axis components that are not c.
func (c Component) others() (Component, Component) {
	switch c {
	case X:
		return Y, Z
	case Y:
		return X, Z
	default:
		return X, Y
	}
}

// ParseComponent accepts x, y, z or w in any case.
func ParseComponent(name string) (Component, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	case "w":
		return W, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
}

// Sign selects between the two roots of the repair quadratic when they
// have the same magnitude.
type Sign int

const (
	Positive Sign = 1
	Negative Sign = -1
)

func signOf(v float64, fallback Sign) Sign {
	switch {
	case v > 0:
		return Positive
	case v < 0:
		return Negative
	}
	return fallback
}

// Outcome reports how an edit was handled. None of them is an error: every
// outcome leaves a valid state behind.
type Outcome int

const (
	// Applied means the value was used as given.
	Applied Outcome = iota
	// Clamped means the value was outside its legal range and was moved to
	// the nearest bound.
	Clamped
	// Unsolvable means no unit-length repair exists; the axis is unchanged.
	Unsolvable
	// Degenerate means AxisLength is zero so axis edits are ignored until w
	// moves away from ±1.
	Degenerate
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Clamped:
		return "clamped"
	case Unsolvable:
		return "unsolvable"
	case Degenerate:
		return "degenerate"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}
