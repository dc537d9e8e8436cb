package render

import (
	"github.com/l-echo/echo/pkg/echomath"
	"github.com/l-echo/echo/pkg/models"
)

// Wireframe draws lines in world space through a camera.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer

	CullingStats CullingStats
}

// NewWireframe creates a wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// DrawLine3 draws l if at least one endpoint is in view. Lines with an
// endpoint behind the near plane are skipped rather than clipped.
func (w *Wireframe) DrawLine3(l echomath.Line3, color Color) bool {
	if !w.camera.Visible(l.P1) && !w.camera.Visible(l.P2) {
		return false
	}
	x1, y1, ok1 := w.camera.Project(l.P1, w.fb.Width, w.fb.Height)
	x2, y2, ok2 := w.camera.Project(l.P2, w.fb.Width, w.fb.Height)
	if !ok1 || !ok2 {
		return false
	}

	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), color)
	return true
}

// DrawEdges draws edges after rotating them about the origin by rot, and
// returns how many were drawn.
func (w *Wireframe) DrawEdges(edges []echomath.Line3, rot echomath.Vector3, color Color) int {
	drawn := 0
	for _, e := range edges {
		l := echomath.L3(e.P1.RotateXY(rot), e.P2.RotateXY(rot))
		if w.DrawLine3(l, color) {
			drawn++
		}
	}
	return drawn
}

// DrawModel draws m rotated about the origin by rot. Models whose bounding
// sphere is out of view are skipped. It returns the number of edges drawn.
func (w *Wireframe) DrawModel(m *Model, rot echomath.Vector3, color Color) int {
	w.CullingStats.ModelsTested++
	if !w.camera.SphereVisible(m.Center.RotateXY(rot), m.Radius) {
		w.CullingStats.ModelsCulled++
		return 0
	}
	w.CullingStats.ModelsDrawn++
	return w.DrawEdges(m.Edges, rot, color)
}

// DrawMesh draws every unique edge of mesh rotated by rot.
func (w *Wireframe) DrawMesh(mesh *models.Mesh, rot echomath.Vector3, color Color) int {
	return w.DrawModel(NewModel(mesh), rot, color)
}

// ResetCullingStats zeroes the culling counters.
func (w *Wireframe) ResetCullingStats() {
	w.CullingStats = CullingStats{}
}

// DrawAxes draws the coordinate axes from the origin in red, green and blue.
func (w *Wireframe) DrawAxes(length float32) {
	origin := echomath.Zero3()
	w.DrawLine3(echomath.L3(origin, echomath.V3(length, 0, 0)), ColorRed)
	w.DrawLine3(echomath.L3(origin, echomath.V3(0, length, 0)), ColorGreen)
	w.DrawLine3(echomath.L3(origin, echomath.V3(0, 0, length)), ColorBlue)
}
