package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/l-echo/echo/pkg/echomath"
)

func TestNewCamera(t *testing.T) {
	c := NewCamera()
	if c.FOV != 60 {
		t.Errorf("FOV = %v, want 60", c.FOV)
	}
	if !c.Forward().Equals(echomath.V3(0, 0, 1)) {
		t.Errorf("Forward = %v, want +Z", c.Forward())
	}
	if p := echomath.V3(1, 2, 3); !c.ToView(p).Equals(p) {
		t.Errorf("ToView(%v) = %v at the identity pose", p, c.ToView(p))
	}
}

func TestCameraVisible(t *testing.T) {
	c := NewCamera()

	tests := []struct {
		name string
		p    echomath.Vector3
		want bool
	}{
		{"ahead", echomath.V3(0, 0, 5), true},
		{"behind", echomath.V3(0, 0, -5), false},
		{"on camera", echomath.Zero3(), false},
		{"slightly right", echomath.V3(1, 0, 5), true},
		{"slightly up", echomath.V3(0, 1, 5), true},
		{"far right", echomath.V3(10, 0, 1), false},
		{"far down", echomath.V3(0, -10, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Visible(tt.p); got != tt.want {
				t.Errorf("Visible(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	// Widening the field of view updates the range in place.
	c.SetFOV(170)
	if !c.Visible(echomath.V3(10, 0, 1)) {
		t.Error("point at 84 degrees not visible with a 170 degree FOV")
	}
}

func TestCameraProject(t *testing.T) {
	c := NewCamera()
	c.Orbit(echomath.Zero3(), echomath.Zero3(), 5)

	x, y, ok := c.Project(echomath.Zero3(), 64, 48)
	if !ok || x != 32 || y != 24 {
		t.Errorf("Project(origin) = (%v, %v, %v), want (32, 24, true)", x, y, ok)
	}

	x, _, _ = c.Project(echomath.V3(1, 0, 0), 64, 48)
	if x <= 32 {
		t.Errorf("+X projected to x=%v, want right of center", x)
	}
	_, y, _ = c.Project(echomath.V3(0, 1, 0), 64, 48)
	if y >= 24 {
		t.Errorf("+Y projected to y=%v, want above center", y)
	}

	if _, _, ok := c.Project(echomath.V3(0, 0, -6), 64, 48); ok {
		t.Error("point behind the camera projected")
	}

	// Zooming pushes off-center points further out.
	near, _, _ := c.Project(echomath.V3(1, 0, 0), 64, 48)
	c.Scale = 2
	far, _, _ := c.Project(echomath.V3(1, 0, 0), 64, 48)
	if far-32 <= near-32 {
		t.Errorf("Scale 2 projected x=%v, want beyond %v", far, near)
	}
}

func TestCameraLookAt(t *testing.T) {
	tests := []struct {
		name   string
		target echomath.Vector3
		angle  *echomath.Vector3
	}{
		{"ahead", echomath.V3(0, 0, 5), &echomath.Vector3{}},
		{"diagonal", echomath.V3(5, 0, 5), &echomath.Vector3{Y: 45}},
		{"behind", echomath.V3(0, 0, -5), &echomath.Vector3{Y: 180}},
		{"left", echomath.V3(-5, 0, 0), &echomath.Vector3{Y: -90}},
		{"up", echomath.V3(0, 5, 0), &echomath.Vector3{X: -90}},
		{"down", echomath.V3(0, -5, 0), &echomath.Vector3{X: 90}},
		{"raised diagonal", echomath.V3(5, 5, 5), nil},
		{"behind and below", echomath.V3(-3, -4, -6), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera()
			c.LookAt(tt.target)

			if tt.angle != nil && !c.Angle.AngleSimilar(*tt.angle) {
				t.Errorf("Angle = %v, want %v", c.Angle, *tt.angle)
			}

			// The target ends up straight ahead.
			v := c.ToView(tt.target)
			dist := tt.target.Length()
			tol := 0.05 * dist
			if math32.Abs(v.X) > tol || math32.Abs(v.Y) > tol || math32.Abs(v.Z-dist) > tol {
				t.Errorf("ToView(target) = %v, want (0, 0, %v)", v, dist)
			}
			if !c.Visible(tt.target) {
				t.Error("target not visible after LookAt")
			}
		})
	}
}

func TestCameraLookAtSelf(t *testing.T) {
	c := NewCamera()
	c.Angle = echomath.V3(10, 20, 0)
	c.LookAt(c.Position)
	if !c.Angle.Equals(echomath.V3(10, 20, 0)) {
		t.Errorf("LookAt(position) changed Angle to %v", c.Angle)
	}
}

func TestCameraOrbit(t *testing.T) {
	c := NewCamera()
	c.Orbit(echomath.Zero3(), echomath.V3(0, 90, 0), 5)

	if !c.Position.Equals(echomath.V3(-5, 0, 0)) {
		t.Errorf("Position = %v, want (-5,0,0)", c.Position)
	}
	if !c.ToView(echomath.Zero3()).Equals(echomath.V3(0, 0, 5)) {
		t.Errorf("ToView(origin) = %v, want (0,0,5)", c.ToView(echomath.Zero3()))
	}
}
