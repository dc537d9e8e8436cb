//go:build !echo_fixed && !(tinygo && baremetal)

package echomath

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Platform names the trig backend compiled into this build.
const Platform = "desktop"

// tableTrig is the desktop backend: one float32 cosine per whole degree.
type tableTrig struct {
	cos [360]float32
}

func newPlatform() backend {
	return &tableTrig{}
}

func (t *tableTrig) prepare() {
	for deg := range t.cos {
		t.cos[deg] = math32.Cos(mgl32.DegToRad(float32(deg)))
	}
}

func (t *tableTrig) CosInt(deg int) float32 {
	return t.cos[wrapDegree(deg)]
}

func (t *tableTrig) CosFloat(deg float32) float32 {
	return t.CosInt(int(deg))
}

func (t *tableTrig) SinInt(deg int) float32 {
	return t.CosInt(90 - deg)
}

func (t *tableTrig) SinFloat(deg float32) float32 {
	return t.SinInt(int(deg))
}

func formatVector(v Vector3) string {
	return fmt.Sprintf("vector3f: [%f,%f,%f]", v.X, v.Y, v.Z)
}
