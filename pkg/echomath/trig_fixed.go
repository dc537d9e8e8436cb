//go:build echo_fixed || (tinygo && baremetal)

package echomath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Platform names the trig backend compiled into this build.
const Platform = "fixed"

// LUTSize is the number of entries covering one full turn in the firmware
// cosine table.
const LUTSize = 512

const (
	fixedShift = 12
	fixedOne   = 1 << fixedShift
)

// cosLUT mirrors the firmware table layout: signed values with 12 fractional
// bits, index i covering angle 2*Pi*i/LUTSize.
var cosLUT [LUTSize]int16

func init() {
	for i := range cosLUT {
		rad := 2 * math32.Pi * float32(i) / LUTSize
		cosLUT[i] = int16(math32.Round(math32.Cos(rad) * fixedOne))
	}
}

func fixedToFloat(v int16) float32 {
	return float32(v) / fixedOne
}

// fixedTrig is the console backend. The table ships with the firmware, so
// there is nothing to prepare.
type fixedTrig struct{}

func newPlatform() backend {
	return fixedTrig{}
}

func (fixedTrig) prepare() {}

func (fixedTrig) CosInt(deg int) float32 {
	idx := int(float32(wrapDegree(deg)) / 360 * LUTSize)
	return fixedToFloat(cosLUT[idx])
}

func (f fixedTrig) CosFloat(deg float32) float32 {
	return f.CosInt(int(deg))
}

func (f fixedTrig) SinInt(deg int) float32 {
	return f.CosInt(90 - deg)
}

func (f fixedTrig) SinFloat(deg float32) float32 {
	return f.SinInt(int(deg))
}

// The console text layer has no float formatting; components are shown
// scaled by 100 and truncated.
func formatVector(v Vector3) string {
	return fmt.Sprintf("vector3f (* 100): [%d,%d,%d]", int(v.X*100), int(v.Y*100), int(v.Z*100))
}
