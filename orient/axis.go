package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// snapEpsilon is how close an edit has to be to the current value to count
// as a re-submission of it.
const snapEpsilon = 1e-12

// DefaultAxis is the axis a fresh engine starts with.
var DefaultAxis = mgl64.Vec3{1, 0, 0}

// UpdateAxis sets component c of the unit axis current to value and
// repairs the two remaining components so the axis stays unit length.
//
// value is clamped to [-1, 1]. prefer breaks ties between equally small
// repairs and is the sign used when a remaining component starts at zero.
// The returned sign is the branch that was taken, to be fed back as prefer
// on the next edit of a drag.
func UpdateAxis(c Component, value float64, current mgl64.Vec3, prefer Sign) (mgl64.Vec3, Sign, Outcome) {
	outcome := Applied
	if value > 1 || value < -1 {
		value = mgl64.Clamp(value, -1, 1)
		outcome = Clamped
	}

	i := c.index()
	o1, o2 := c.others()
	j, k := o1.index(), o2.index()

	if math.Abs(value-current[i]) <= snapEpsilon {
		return current, prefer, outcome
	}

	next := current
	next[i] = value
	rest := 1 - value*value

	if rest <= 0 {
		next[j], next[k] = 0, 0
		return next, prefer, outcome
	}

	delta, ok := SolveDelta(value-current[i], value, current[j], current[k], prefer)
	if ok {
		next[j] = current[j] + delta
		next[k] = current[k] + delta
		if delta != 0 {
			prefer = signOf(delta, prefer)
		}
	} else {
		var solved bool
		next, solved = dropOne(next, j, k, rest, prefer)
		if !solved {
			return current, prefer, Unsolvable
		}
	}

	return renormalizePair(next, j, k, rest), prefer, outcome
}

// dropOne keeps one of the components j, k fixed and solves the other
// straight from the constraint, keeping the sign of its previous value.
// The candidate closest to the current state is used.
func dropOne(next mgl64.Vec3, j, k int, rest float64, prefer Sign) (mgl64.Vec3, bool) {
	best := next
	bestCost := math.Inf(1)

	for _, pair := range [2][2]int{{j, k}, {k, j}} {
		keep, solve := pair[0], pair[1]
		r2 := rest - next[keep]*next[keep]
		if r2 < 0 {
			continue
		}
		candidate := next
		candidate[solve] = float64(signOf(next[solve], prefer)) * math.Sqrt(r2)
		cost := math.Abs(candidate[solve] - next[solve])
		if cost < bestCost {
			best, bestCost = candidate, cost
		}
	}

	return best, !math.IsInf(bestCost, 1)
}

// renormalizePair scales components j and k so that their squares sum to
// rest, leaving the edited component bit-for-bit as it is.
func renormalizePair(v mgl64.Vec3, j, k int, rest float64) mgl64.Vec3 {
	sum := v[j]*v[j] + v[k]*v[k]
	if sum == 0 {
		return v
	}
	scale := math.Sqrt(rest / sum)
	v[j] *= scale
	v[k] *= scale
	return v
}
