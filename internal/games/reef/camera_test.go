package reef

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestCameraFOV(t *testing.T) {
	tests := []struct {
		speed float64
		want  float64
	}{
		{0.5, 80},
		{1.5, 80},
		{2.0, 80},
		{3.0, 85},
	}

	for _, tc := range tests {
		s := newBareSession()
		s.Player.Speed = tc.speed
		updateCamera(s)
		if math.Abs(s.Camera.FOV-tc.want) > 1e-12 {
			t.Errorf("speed %v: FOV = %v, expected %v", tc.speed, s.Camera.FOV, tc.want)
		}
	}
}

func TestCameraLookAt(t *testing.T) {
	s := newBareSession()
	s.Player.Pos = r3.Vec{X: 5, Y: -5}

	updateCamera(s)

	want := r3.Vec{X: 0.5, Y: -0.5, Z: -10}
	if r3.Norm(r3.Sub(s.Camera.LookAt, want)) > 1e-12 {
		t.Errorf("LookAt = %v, expected %v", s.Camera.LookAt, want)
	}
}

func TestCameraFollow(t *testing.T) {
	s := newBareSession()
	s.Player.Pos = r3.Vec{X: 10}

	updateCamera(s)

	// Target x is 3; the lerp closes 5% of the gap and sway is zero at t=0
	if math.Abs(s.Camera.Pos.X-0.15) > 1e-12 {
		t.Errorf("camera x = %v, expected 0.15", s.Camera.Pos.X)
	}
	if s.Camera.Pos.Z != s.Cfg.Camera.Distance {
		t.Errorf("camera z = %v, expected %v", s.Camera.Pos.Z, s.Cfg.Camera.Distance)
	}
}

func TestCameraShakeDecays(t *testing.T) {
	s := newBareSession()
	shake(s, 1)

	updateCamera(s)
	if s.Camera.Shake == (r3.Vec{}) {
		t.Fatal("expected a shake offset")
	}
	if s.Camera.Eye() == s.Camera.Pos {
		t.Error("Eye() should include the shake offset")
	}

	s.Effects.advance(s.Cfg.Camera.ShakeDuration, s.Cfg.Effects, s.Cfg.Camera.ShakeDuration)
	updateCamera(s)
	if s.Camera.Shake != (r3.Vec{}) {
		t.Errorf("shake = %v, expected none after the shake duration", s.Camera.Shake)
	}
}
