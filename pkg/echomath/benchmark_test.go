package echomath

import (
	"testing"
)

func BenchmarkRotateXY(b *testing.B) {
	v := V3(1, 2, 3)
	rot := V3(30, 45, 0)

	for b.Loop() {
		_ = v.RotateXY(rot)
	}
}

func BenchmarkNegRotateYX(b *testing.B) {
	v := V3(1, 2, 3)
	rot := V3(30, 45, 0)

	for b.Loop() {
		_ = v.NegRotateYX(rot)
	}
}

func BenchmarkAngleXY(b *testing.B) {
	v := V3(3, -4, 5)

	for b.Loop() {
		_ = v.AngleXY()
	}
}

func BenchmarkCosF(b *testing.B) {
	for b.Loop() {
		_ = CosF(123.4)
	}
}

func BenchmarkAngleRangeContains(b *testing.B) {
	lo := V3(-45, -45, 0)
	hi := V3(45, 45, 0)
	r := NewAngleRange(&lo, &hi)
	v := V3(10, -20, 0)

	for b.Loop() {
		_ = r.Contains(v)
	}
}
