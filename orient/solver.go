package orient

import "math"

// SolveDelta finds the delta that, added to both other1 and other2, brings
// (editedValue, other1+delta, other2+delta) back to unit length.
//
// The constraint expands to 2·d² + 2b·d + c = 0 with b = other1+other2 and
// c = editedValue²+other1²+other2²−1. The smaller-magnitude root is
// returned so a continuous drag produces a continuous repair. When b is
// zero both roots are equally small and prefer picks one.
//
// ok is false when the discriminant is negative; delta is then 0.
func SolveDelta(editedDelta, editedValue, other1, other2 float64, prefer Sign) (delta float64, ok bool) {
	if editedDelta == 0 {
		return 0, true
	}

	b := other1 + other2
	c := editedValue*editedValue + other1*other1 + other2*other2 - 1
	d := b*b - 2*c
	if d < 0 {
		return 0, false
	}

	sq := math.Sqrt(d)
	if b == 0 {
		return float64(prefer) * sq / 2, true
	}

	// -c / (b + sign(b)·√D) equals (-b + sign(b)·√D)/2 without cancellation.
	denom := b + math.Copysign(sq, b)
	return -c / denom, true
}
