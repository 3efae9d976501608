package reef

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/world"
)

func countEvents(s *Session, kind EventKind) int {
	n := 0
	for _, e := range s.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestPowerupLifecycle(t *testing.T) {
	tests := []struct {
		kind     world.PowerupKind
		duration float64
		during   func(*Session) bool
		after    func(*Session) bool
	}{
		{
			kind:     world.PowerupSpeed,
			duration: 10,
			during:   func(s *Session) bool { return s.Player.MaxSpeed == 4.0 && s.Player.Speed == 1.5 },
			after:    func(s *Session) bool { return s.Player.MaxSpeed == 3.0 },
		},
		{
			kind:     world.PowerupShield,
			duration: 8,
			during:   func(s *Session) bool { return s.invulnerable() },
			after:    func(s *Session) bool { return !s.invulnerable() },
		},
		{
			kind:     world.PowerupMagnet,
			duration: 12,
			during:   func(s *Session) bool { return s.Powerups.Active(world.PowerupMagnet, s.Elapsed) },
			after:    func(s *Session) bool { return !s.Powerups.Active(world.PowerupMagnet, s.Elapsed) },
		},
		{
			kind:     world.PowerupMultiplier,
			duration: 15,
			during:   func(s *Session) bool { return s.Progress.Multiplier == 2 },
			after:    func(s *Session) bool { return s.Progress.Multiplier == 1 },
		},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			s := newBareSession()
			activatePowerup(s, tc.kind)
			if !tc.during(s) {
				t.Fatalf("%v not applied", tc.kind)
			}

			s.Elapsed = tc.duration - 0.01
			expirePowerups(s)
			if !tc.during(s) {
				t.Fatalf("%v expired early", tc.kind)
			}

			s.Elapsed = tc.duration
			expirePowerups(s)
			if !tc.after(s) {
				t.Errorf("%v not reverted at expiry", tc.kind)
			}

			s.Elapsed += 1
			expirePowerups(s)
			if n := countEvents(s, EventPowerupExpired); n != 1 {
				t.Errorf("expiry fired %d times, expected 1", n)
			}
		})
	}
}

func TestPowerupRefreshDoesNotStack(t *testing.T) {
	s := newBareSession()
	activatePowerup(s, world.PowerupMultiplier)

	s.Elapsed = 5
	activatePowerup(s, world.PowerupMultiplier)

	if s.Progress.Multiplier != 2 {
		t.Errorf("multiplier = %d, expected 2", s.Progress.Multiplier)
	}
	if rem := s.Powerups.Remaining(world.PowerupMultiplier, s.Elapsed); rem != 15 {
		t.Errorf("remaining = %v, expected a fresh 15", rem)
	}

	// The first deadline no longer applies
	s.Elapsed = 16
	expirePowerups(s)
	if s.Progress.Multiplier != 2 {
		t.Error("refreshed multiplier expired at the original deadline")
	}

	s.Elapsed = 20
	expirePowerups(s)
	if s.Progress.Multiplier != 1 || countEvents(s, EventPowerupExpired) != 1 {
		t.Errorf("multiplier = %d after refreshed deadline, expected 1 with one expiry", s.Progress.Multiplier)
	}
}

func TestSpeedPowerupCap(t *testing.T) {
	s := newBareSession()
	s.Player.Speed = 3.5
	activatePowerup(s, world.PowerupSpeed)

	if s.Player.Speed != 4.0 {
		t.Errorf("speed = %v, expected the 4.0 power-up cap", s.Player.Speed)
	}

	s.Elapsed = 10
	expirePowerups(s)
	if s.Player.MaxSpeed != 3.0 {
		t.Errorf("max speed = %v, expected 3.0 after expiry", s.Player.MaxSpeed)
	}

	// The progression clamp pulls speed back under the normal ceiling
	updateProgression(s)
	if s.Player.Speed > 3.0 {
		t.Errorf("speed = %v, expected at most 3.0", s.Player.Speed)
	}
}

func TestPowerupsClear(t *testing.T) {
	s := newBareSession()
	for _, kind := range world.PowerupKinds() {
		activatePowerup(s, kind)
	}
	s.Powerups.clear()

	for _, kind := range world.PowerupKinds() {
		if s.Powerups.Active(kind, s.Elapsed) {
			t.Errorf("%v still active after clear", kind)
		}
	}
	if s.Powerups.Remaining(world.PowerupShield, 0) != 0 {
		t.Error("cleared shield should have no time left")
	}
}

func TestMagnetPullsDuringProgression(t *testing.T) {
	s := newBareSession()
	c := world.NewCollectible(r3.Vec{X: 5}, 100)
	s.World.AddCollectible(c)
	activatePowerup(s, world.PowerupMagnet)

	updateProgression(s)
	if c.Pos.X >= 5 {
		t.Errorf("magnet did not pull the pearl: x = %v", c.Pos.X)
	}
}
