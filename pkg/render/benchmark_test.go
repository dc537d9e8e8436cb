package render

import (
	"testing"

	"github.com/l-echo/echo/pkg/echomath"
	"github.com/l-echo/echo/pkg/models"
)

func BenchmarkSphereVisible(b *testing.B) {
	c := NewCamera()

	b.Run("visible", func(b *testing.B) {
		for b.Loop() {
			_ = c.SphereVisible(echomath.V3(1, 1, 10), 2)
		}
	})

	b.Run("culled", func(b *testing.B) {
		for b.Loop() {
			_ = c.SphereVisible(echomath.V3(0, 0, -10), 2)
		}
	})
}

func BenchmarkProject(b *testing.B) {
	c := NewCamera()
	c.Orbit(echomath.Zero3(), echomath.V3(20, 30, 0), 5)
	p := echomath.V3(0.5, -0.25, 1)

	for b.Loop() {
		_, _, _ = c.Project(p, 160, 96)
	}
}

func BenchmarkDrawModel(b *testing.B) {
	c := NewCamera()
	c.Orbit(echomath.Zero3(), echomath.Zero3(), 5)
	fb := NewFramebuffer(160, 96)
	w := NewWireframe(c, fb)
	m := NewModel(models.Cube(2))
	rot := echomath.V3(20, 30, 0)

	for b.Loop() {
		fb.Clear(ColorBlack)
		w.DrawModel(m, rot, ColorWhite)
	}
}

func BenchmarkDrawLine(b *testing.B) {
	fb := NewFramebuffer(160, 96)
	for b.Loop() {
		fb.DrawLine(0, 0, 159, 95, ColorWhite)
	}
}
