package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/l-echo/echo/pkg/echomath"
	"github.com/l-echo/echo/pkg/models"
)

// CullingStats tracks model culling.
type CullingStats struct {
	ModelsTested int
	ModelsCulled int
	ModelsDrawn  int
}

// Model is a mesh prepared for wireframe drawing: its unique edges and a
// bounding sphere, both computed once.
type Model struct {
	Mesh   *models.Mesh
	Edges  []echomath.Line3
	Center echomath.Vector3
	Radius float32
}

// NewModel prepares mesh for drawing. Call it again after changing the
// mesh's vertices.
func NewModel(mesh *models.Mesh) *Model {
	mesh.CalculateBounds()
	return &Model{
		Mesh:   mesh,
		Edges:  mesh.Edges(),
		Center: mesh.Center(),
		Radius: mesh.Size().Length() / 2,
	}
}

// SphereVisible reports whether any part of the sphere may be in view. It
// errs on the side of drawing: spheres straddling the camera's XY plane
// always pass.
func (c *Camera) SphereVisible(center echomath.Vector3, radius float32) bool {
	v := c.ToView(center)
	dist := v.Length()
	if dist <= radius {
		return true
	}
	if v.Z+radius < c.Near {
		return false
	}
	if v.Z <= 0 {
		return true
	}

	// Widen the field of view by the sphere's angular radius.
	half := c.FOV/2 + mgl32.RadToDeg(math32.Asin(radius/dist))
	lo := echomath.V3(-half, -half, 0)
	hi := echomath.V3(half, half, 0)
	return echomath.NewAngleRange(&lo, &hi).Contains(v.AngleXY())
}
