package echomath

import "golang.org/x/exp/constraints"

// AngleRange is an axis-aligned box spanned by two bound vectors. It holds
// references, not copies: moving a bound moves the box. The bounds must
// stay valid for as long as the range is in use.
type AngleRange struct {
	v1, v2 *Vector3
}

// NewAngleRange creates a range over the vectors v1 and v2 point to.
func NewAngleRange(v1, v2 *Vector3) AngleRange {
	return AngleRange{v1: v1, v2: v2}
}

// Bounds returns the current values of both bounds.
func (r AngleRange) Bounds() (v1, v2 Vector3) {
	return *r.v1, *r.v2
}

// Contains reports whether every component of v lies between the matching
// components of the two bounds, inclusive. Each axis is tested on its own
// and either bound may be the smaller one.
func (r AngleRange) Contains(v Vector3) bool {
	return between(r.v1.X, v.X, r.v2.X) &&
		between(r.v1.Y, v.Y, r.v2.Y) &&
		between(r.v1.Z, v.Z, r.v2.Z)
}

// between reports whether b lies in [a, c] or [c, a].
func between[T constraints.Ordered](a, b, c T) bool {
	return (a <= b && b <= c) || (c <= b && b <= a)
}
