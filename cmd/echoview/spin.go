package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/l-echo/echo/pkg/echomath"
)

// RotationAxis tracks one angle in degrees and its per-frame velocity. A
// critically damped spring pulls the velocity back to rest.
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // spring velocity of Velocity itself
}

// NewRotationAxis creates an axis at rest.
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances Position by one frame and decays Velocity.
func (a *RotationAxis) Update() {
	a.Position = math.Mod(a.Position+a.Velocity, 360)
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// Spin is the model's angle pair, animated per axis.
type Spin struct {
	Pitch, Yaw RotationAxis
	fps        int
}

func NewSpin(fps int) *Spin {
	s := &Spin{fps: fps}
	s.Reset()
	return s
}

func (s *Spin) Update() {
	s.Pitch.Update()
	s.Yaw.Update()
}

// ApplyImpulse adds to the velocities, in degrees per frame.
func (s *Spin) ApplyImpulse(pitch, yaw float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
}

// Set places the spin at rest at angle.
func (s *Spin) Set(angle echomath.Vector3) {
	s.Reset()
	s.Pitch.Position = float64(angle.X)
	s.Yaw.Position = float64(angle.Y)
}

func (s *Spin) Reset() {
	s.Pitch = NewRotationAxis(s.fps)
	s.Yaw = NewRotationAxis(s.fps)
}

// Angle returns the current angle pair.
func (s *Spin) Angle() echomath.Vector3 {
	return echomath.V3(float32(s.Pitch.Position), float32(s.Yaw.Position), 0)
}
