package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/l-echo/echo/pkg/echomath"
)

// Camera is a pinhole camera looking down its local +Z axis.
//
// Angle is an angle pair in degrees: X pitches (positive looks down) and Y
// yaws, the same convention as Vector3.RotateXY. A Camera must not be
// copied once created since its field of view range points into it.
type Camera struct {
	Position echomath.Vector3
	Angle    echomath.Vector3

	// FOV is the full field of view in degrees, applied to both axes.
	FOV float32
	// Scale multiplies the focal length; above 1 zooms in.
	Scale float32
	// Near is the closest view-space depth that is projected.
	Near float32

	fovMin, fovMax echomath.Vector3
	view           echomath.AngleRange
}

// NewCamera creates a camera at the origin looking down +Z with a 60 degree
// field of view.
func NewCamera() *Camera {
	c := &Camera{
		Scale: 1,
		Near:  0.1,
	}
	c.view = echomath.NewAngleRange(&c.fovMin, &c.fovMax)
	c.SetFOV(60)
	return c
}

// SetFOV sets the full field of view in degrees.
func (c *Camera) SetFOV(deg float32) {
	c.FOV = deg
	c.fovMin.SetXYZ(-deg/2, -deg/2, 0)
	c.fovMax.SetXYZ(deg/2, deg/2, 0)
}

// Forward returns the unit view direction in world space.
func (c *Camera) Forward() echomath.Vector3 {
	return echomath.V3(0, 0, 1).RotateXY(c.Angle)
}

// LookAt points the camera at target. Yaw comes from the direction's
// projection onto the XZ plane and pitch from the direction once that yaw
// is undone, so targets behind the camera are handled too.
func (c *Camera) LookAt(target echomath.Vector3) {
	dir := target.Sub(c.Position)
	if dir.IsZero() {
		return
	}

	yaw := echomath.V3(dir.X, 0, dir.Z).AngleXY().Y
	d := dir.RotateAboutY(-yaw)

	var pitch float32
	switch {
	case d.Z > 0:
		pitch = d.AngleXY().X
	case dir.Y > 0:
		pitch = -90
	default:
		pitch = 90
	}
	c.Angle = echomath.V3(pitch, yaw, 0)
}

// Orbit places the camera dist units from target along the direction given
// by angle and points it back at the target.
func (c *Camera) Orbit(target echomath.Vector3, angle echomath.Vector3, dist float32) {
	c.Angle = angle
	c.Position = target.Sub(c.Forward().Scale(dist))
}

// ToView moves p from world space into camera space.
func (c *Camera) ToView(p echomath.Vector3) echomath.Vector3 {
	return p.Sub(c.Position).NegRotateYX(c.Angle)
}

// Visible reports whether p lies in front of the camera and inside the
// field of view.
func (c *Camera) Visible(p echomath.Vector3) bool {
	v := c.ToView(p)
	if v.Z < c.Near {
		return false
	}
	return c.view.Contains(v.AngleXY())
}

// focal returns the focal length in pixels for a width x height target.
func (c *Camera) focal(width, height int) float32 {
	half := float32(min(width, height)) / 2
	return half * c.Scale / math32.Tan(mgl32.DegToRad(c.FOV/2))
}

// Project maps p to pixel coordinates on a width x height target. ok is
// false when p is closer than Near; points outside the frame still project.
func (c *Camera) Project(p echomath.Vector3, width, height int) (x, y float32, ok bool) {
	v := c.ToView(p)
	if v.Z < c.Near {
		return 0, 0, false
	}
	f := c.focal(width, height)
	x = float32(width)/2 + v.X*f/v.Z
	y = float32(height)/2 - v.Y*f/v.Z
	return x, y, true
}
