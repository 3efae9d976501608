package reef

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
)

// Camera is the chase camera pose.
type Camera struct {
	Pos    r3.Vec // Smoothed position, including sway and speed jitter
	Shake  r3.Vec // Offset from active shakes, not fed back into Pos
	LookAt r3.Vec
	FOV    float64 // Vertical field of view in degrees
}

func newCamera(cfg config.CameraConfig) Camera {
	return Camera{
		Pos:    r3.Vec{Y: cfg.Height, Z: cfg.Distance},
		LookAt: r3.Vec{Z: -cfg.LookAhead},
		FOV:    cfg.BaseFOV,
	}
}

// Eye returns the rendered camera position.
func (c Camera) Eye() r3.Vec {
	return r3.Add(c.Pos, c.Shake)
}

// updateCamera eases the camera behind the player and applies sway,
// high-speed jitter, field of view widening and shake.
func updateCamera(s *Session) {
	c := &s.Camera
	cfg := s.Cfg.Camera
	p := s.Player
	e := s.Elapsed

	target := r3.Vec{
		X: p.Pos.X * cfg.Follow,
		Y: p.Pos.Y*cfg.Follow + cfg.Height,
		Z: cfg.Distance,
	}
	alpha := smoothAlpha(s.Cfg.Movement.Smoothing, cfg.Lerp, s.Dt)
	c.Pos = core.LerpVec(c.Pos, target, alpha)

	c.Pos.X += math.Sin(e*0.5) * cfg.Sway
	c.Pos.Y += math.Cos(e*0.3) * cfg.Sway

	if excess := p.Speed - cfg.JitterThreshold; excess > 0 {
		jitter := excess * cfg.JitterScale
		c.Pos.X += (s.fx.Float64() - 0.5) * jitter
		c.Pos.Y += (s.fx.Float64() - 0.5) * jitter
		c.FOV = cfg.BaseFOV + excess*cfg.FOVPerSpeed
	} else {
		c.FOV = cfg.BaseFOV
	}

	c.Shake = s.Effects.shakeOffset(s.fx, cfg.ShakeDuration)
	c.LookAt = r3.Vec{
		X: p.Pos.X * cfg.LookFollow,
		Y: p.Pos.Y * cfg.LookFollow,
		Z: -cfg.LookAhead,
	}
}
