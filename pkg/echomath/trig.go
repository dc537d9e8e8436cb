package echomath

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Trig supplies cosine and sine for angles in degrees.
type Trig interface {
	CosInt(deg int) float32
	CosFloat(deg float32) float32
	SinInt(deg int) float32
	SinFloat(deg float32) float32
}

type backend interface {
	Trig
	prepare()
}

var (
	active   backend = newPlatform()
	initOnce sync.Once
)

// InitMath prepares the trig table. It runs once per process; later calls
// are no-ops. Every lookup also calls it, so explicit use is optional.
func InitMath() {
	initOnce.Do(active.prepare)
}

// Backend returns the trig provider selected at build time.
func Backend() Trig {
	InitMath()
	return active
}

// CosI returns the cosine of a whole-degree angle.
func CosI(deg int) float32 {
	InitMath()
	return active.CosInt(deg)
}

// CosF returns the cosine of deg truncated to a whole degree.
func CosF(deg float32) float32 {
	InitMath()
	return active.CosFloat(deg)
}

// SinI returns the sine of a whole-degree angle.
func SinI(deg int) float32 {
	InitMath()
	return active.SinInt(deg)
}

// SinF returns the sine of deg truncated to a whole degree.
func SinF(deg float32) float32 {
	InitMath()
	return active.SinFloat(deg)
}

// wrapDegree folds deg onto [0, 360) by absolute value then modulo.
// Negative angles land on their mirror, not on deg+360. Taking the
// remainder first keeps math.MinInt, which NaN and Inf convert to, in range.
func wrapDegree(deg int) int {
	return abs(deg % 360)
}

func abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
