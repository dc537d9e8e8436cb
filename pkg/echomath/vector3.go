package echomath

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the per-axis tolerance used by Vector3 comparisons.
const Epsilon float32 = 0.01

// Vector3 is a 3D vector. It is used both for points and for angle pairs,
// where X holds elevation and Y holds azimuth in degrees.
type Vector3 struct {
	X, Y, Z float32
}

// V3 creates a new Vector3.
func V3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vector3 {
	return Vector3{}
}

// FromVec3 converts an mgl32 vector.
func FromVec3(v mgl32.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

// Vec3 returns the vector as an mgl32 vector.
func (a Vector3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{a.X, a.Y, a.Z}
}

// Equals reports whether every axis differs by less than Epsilon.
func (a Vector3) Equals(b Vector3) bool {
	return math32.Abs(a.X-b.X) < Epsilon &&
		math32.Abs(a.Y-b.Y) < Epsilon &&
		math32.Abs(a.Z-b.Z) < Epsilon
}

// NotEquals is the negation of Equals.
func (a Vector3) NotEquals(b Vector3) bool {
	return !a.Equals(b)
}

// AngleSimilar is Equals with Y treated as an angle, so Y values a full
// turn apart also match. X and Z get no wraparound.
func (a Vector3) AngleSimilar(b Vector3) bool {
	dy := math32.Abs(a.Y - b.Y)
	return math32.Abs(a.X-b.X) < Epsilon &&
		(dy < Epsilon || math32.Abs(dy-360) < Epsilon) &&
		math32.Abs(a.Z-b.Z) < Epsilon
}

// IsZero reports whether all three components are exactly zero.
func (a Vector3) IsZero() bool {
	return a.X == 0 && a.Y == 0 && a.Z == 0
}

// Add returns the vector sum a + b.
func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vector3) Scale(s float32) Vector3 {
	return Vector3{a.X * s, a.Y * s, a.Z * s}
}

// Negate returns the negated vector.
func (a Vector3) Negate() Vector3 {
	return Vector3{-a.X, -a.Y, -a.Z}
}

// Length returns the Euclidean length of the vector.
func (a Vector3) Length() float32 {
	return math32.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Dist returns the distance between two points.
func (a Vector3) Dist(b Vector3) float32 {
	return a.Sub(b).Length()
}

// Set copies b into a.
func (a *Vector3) Set(b Vector3) {
	*a = b
}

// SetXYZ overwrites all three components.
func (a *Vector3) SetXYZ(x, y, z float32) {
	a.X = x
	a.Y = y
	a.Z = z
}

// RotateXY rotates a about the X axis by rot.X degrees, then about the Y
// axis by rot.Y degrees. rot.Z is ignored except that an all-zero rot
// returns a unchanged.
func (a Vector3) RotateXY(rot Vector3) Vector3 {
	if rot.IsZero() {
		return a
	}
	cx, sx := CosF(rot.X), SinF(rot.X)
	cy, sy := CosF(rot.Y), SinF(rot.Y)

	y := a.Y*cx - a.Z*sx
	z := a.Y*sx + a.Z*cx
	return Vector3{
		X: z*sy + a.X*cy,
		Y: y,
		Z: z*cy - a.X*sy,
	}
}

// NegRotateYX undoes RotateXY: it rotates about Y by -rot.Y, then about X
// by -rot.X.
func (a Vector3) NegRotateYX(rot Vector3) Vector3 {
	if rot.IsZero() {
		return a
	}
	cy, sy := CosF(-rot.Y), SinF(-rot.Y)
	cx, sx := CosF(-rot.X), SinF(-rot.X)

	x := a.Z*sy + a.X*cy
	z := a.Z*cy - a.X*sy
	return Vector3{
		X: x,
		Y: a.Y*cx - z*sx,
		Z: a.Y*sx + z*cx,
	}
}

// RotateAboutY rotates a in the XZ plane by angle degrees.
func (a Vector3) RotateAboutY(angle float32) Vector3 {
	c, s := CosF(angle), SinF(angle)
	return Vector3{
		X: a.Z*s + a.X*c,
		Y: a.Y,
		Z: a.Z*c - a.X*s,
	}
}

// AngleXY converts a direction into an angle pair (elevation, azimuth, 0).
// AngleToReal is its inverse for directions with positive Z.
func (a Vector3) AngleXY() Vector3 {
	// float64 keeps whole-degree results whole after conversion, which
	// matters because lookups truncate.
	x, y, z := float64(a.X), float64(a.Y), float64(a.Z)
	azimuth := float32(mgl64.RadToDeg(math.Atan2(x, z)))
	if a.Z == 0 {
		return Vector3{0, azimuth, 0}
	}
	h := math.Sqrt(x*x + z*z)
	if z < 0 {
		h = -h
	}
	return Vector3{
		X: -float32(mgl64.RadToDeg(math.Atan2(y, h))),
		Y: azimuth,
	}
}

// AngleToReal turns an angle pair back into a direction of length 10.
func (a Vector3) AngleToReal() Vector3 {
	return Vector3{0, 0, 10}.RotateXY(a)
}

// String returns the platform diagnostic form of the vector.
func (a Vector3) String() string {
	return formatVector(a)
}

// Dump writes the vector to the diagnostic output.
func (a Vector3) Dump() {
	printLine(formatVector(a))
}
