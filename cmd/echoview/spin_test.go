package main

import (
	"math"
	"testing"

	"github.com/l-echo/echo/pkg/echomath"
)

func TestSpinDecays(t *testing.T) {
	s := NewSpin(30)
	s.ApplyImpulse(2, -3)

	s.Update()
	if s.Pitch.Position != 2 || s.Yaw.Position != -3 {
		t.Fatalf("after one frame: %v, want (2,-3)", s.Angle())
	}

	for range 300 {
		s.Update()
	}
	if math.Abs(s.Pitch.Velocity) > 0.01 || math.Abs(s.Yaw.Velocity) > 0.01 {
		t.Errorf("velocity did not settle: pitch %v yaw %v", s.Pitch.Velocity, s.Yaw.Velocity)
	}
	if s.Pitch.Position <= 2 || s.Yaw.Position >= -3 {
		t.Errorf("position did not keep moving: %v", s.Angle())
	}
}

func TestSpinWraps(t *testing.T) {
	s := NewSpin(30)
	s.Yaw.Position = 350
	s.Yaw.Velocity = 20
	s.Update()

	if got := s.Yaw.Position; math.Abs(got-10) > 1e-9 {
		t.Errorf("Yaw = %v, want 10", got)
	}
}

func TestSpinSetAndReset(t *testing.T) {
	s := NewSpin(30)
	s.ApplyImpulse(5, 5)
	s.Set(echomath.V3(20, 30, 0))

	if !s.Angle().Equals(echomath.V3(20, 30, 0)) {
		t.Errorf("Angle = %v, want (20,30,0)", s.Angle())
	}
	if s.Pitch.Velocity != 0 || s.Yaw.Velocity != 0 {
		t.Error("Set kept velocity")
	}

	s.Reset()
	if !s.Angle().IsZero() {
		t.Errorf("Angle after Reset = %v, want zero", s.Angle())
	}
}
