package reef

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/world"
)

func TestDistanceAccumulates(t *testing.T) {
	s := newBareSession()
	s.Dt = 0.1
	s.Player.Speed = 1

	updateProgression(s)

	if math.Abs(s.Progress.Distance-1.0) > 1e-12 {
		t.Errorf("distance = %v, expected 1.0", s.Progress.Distance)
	}
}

func TestSpeedDecaysTowardBase(t *testing.T) {
	s := newBareSession()
	s.Dt = 0.1
	s.Player.Speed = 2

	updateProgression(s)

	if math.Abs(s.Player.Speed-1.98) > 1e-12 {
		t.Errorf("speed = %v, expected 1.98", s.Player.Speed)
	}

	// Boosting suspends the decay
	s.Player.Speed = 2
	s.Player.Boosting = true
	updateProgression(s)
	if s.Player.Speed != 2 {
		t.Errorf("speed = %v while boosting, expected 2", s.Player.Speed)
	}
}

func TestSpeedNeverBelowFloor(t *testing.T) {
	s := newBareSession()
	s.Player.Speed = 0.01

	updateProgression(s)

	if floor := s.Player.BaseSpeed * s.Cfg.Player.MinSpeedFactor; s.Player.Speed < floor {
		t.Errorf("speed = %v, expected at least %v", s.Player.Speed, floor)
	}
}

func TestSpeedReturnsToBaseAfterHit(t *testing.T) {
	s := newBareSession()
	s.Player.Speed = s.Player.BaseSpeed
	s.World.AddObstacle(world.NewObstacle(world.ObstacleShipwreck, r3.Vec{}))

	checkCollisions(s)
	if s.Player.Speed >= s.Player.BaseSpeed {
		t.Fatalf("speed = %v after the hit, expected below base %v", s.Player.Speed, s.Player.BaseSpeed)
	}

	for i := range 4 {
		updateProgression(s)
		if s.Player.Boosting {
			t.Fatalf("tick %d: unexpected boost", i)
		}
		if s.Player.Speed < s.Player.BaseSpeed {
			t.Errorf("tick %d: speed %v below base %v", i, s.Player.Speed, s.Player.BaseSpeed)
		}
	}
}

func TestComboTimerExpires(t *testing.T) {
	s := newBareSession()
	s.Dt = 0.1
	s.Progress.Combo = 5
	s.Progress.ComboTimer = 0.15

	updateProgression(s)
	if s.Progress.Combo != 5 {
		t.Fatalf("combo = %d, expected 5 while the timer runs", s.Progress.Combo)
	}

	updateProgression(s)
	if s.Progress.Combo != 1 || s.Progress.ComboTimer != 0 {
		t.Errorf("combo = %d timer = %v, expected a reset", s.Progress.Combo, s.Progress.ComboTimer)
	}
}

func TestSegmentStreaming(t *testing.T) {
	s := newBareSession()
	s.Dt = 0.1
	s.Player.Speed = 3

	streamSegments(s)
	if n := len(s.World.Segments); n != s.Cfg.World.SegmentCount {
		t.Fatalf("segments = %d, expected %d", n, s.Cfg.World.SegmentCount)
	}
	if s.World.Segments[0].Z != s.Cfg.World.SegmentLength {
		t.Errorf("first segment at %v, expected %v", s.World.Segments[0].Z, s.Cfg.World.SegmentLength)
	}

	for i := range 500 {
		updateProgression(s)
		if n := len(s.World.Segments); n != s.Cfg.World.SegmentCount {
			t.Fatalf("tick %d: segments = %d, expected %d", i, n, s.Cfg.World.SegmentCount)
		}
		for _, seg := range s.World.Segments {
			if seg.Z > s.Cfg.World.CleanupMax {
				t.Fatalf("tick %d: segment at %v past the cleanup line", i, seg.Z)
			}
		}
	}
}

func TestCleanupWindow(t *testing.T) {
	s := newBareSession()
	s.World.AddObstacle(world.NewObstacle(world.ObstacleRock, r3.Vec{Z: -150}))
	s.World.AddObstacle(world.NewObstacle(world.ObstacleRock, r3.Vec{Z: -250}))
	s.World.AddCollectible(world.NewCollectible(r3.Vec{Z: 60}, 100))

	removed := s.World.Cleanup(s.Cfg.World.CleanupMin, s.Cfg.World.CleanupMax)
	if removed != 2 {
		t.Errorf("removed = %d, expected 2", removed)
	}
	if again := s.World.Cleanup(s.Cfg.World.CleanupMin, s.Cfg.World.CleanupMax); again != 0 {
		t.Errorf("second cleanup removed %d, expected 0", again)
	}
	if s.World.Obstacles.Len() != 1 {
		t.Errorf("obstacles = %d, expected 1", s.World.Obstacles.Len())
	}
}

func TestApplyMagnet(t *testing.T) {
	player := r3.Vec{}
	c := world.NewCollectible(r3.Vec{X: 10}, 100)

	prev := r3.Norm(r3.Sub(player, c.Pos))
	for i := range 60 {
		applyMagnet(c, player, testDt, 15, 20)
		d := r3.Norm(r3.Sub(player, c.Pos))
		if d >= prev {
			t.Fatalf("tick %d: distance %v did not shrink from %v", i, d, prev)
		}
		if c.Pos.X < 0 {
			t.Fatalf("tick %d: pearl overshot to %v", i, c.Pos.X)
		}
		prev = d
	}
}

func TestApplyMagnetOutOfRange(t *testing.T) {
	c := world.NewCollectible(r3.Vec{X: 20}, 100)
	applyMagnet(c, r3.Vec{}, testDt, 15, 20)
	if c.Pos.X != 20 {
		t.Errorf("x = %v, expected a pearl out of range to stay put", c.Pos.X)
	}
}

func TestApplyMagnetNeverOvershoots(t *testing.T) {
	// A huge pull still stops on the player
	c := world.NewCollectible(r3.Vec{X: 0.5}, 100)
	applyMagnet(c, r3.Vec{}, 1, 15, 1000)
	if c.Pos.X < 0 {
		t.Errorf("x = %v, expected no overshoot", c.Pos.X)
	}
}

func TestBubbleCap(t *testing.T) {
	s := newBareSession()
	s.Dt = 0.1
	s.Cfg.World.BubbleInterval = 0.01
	s.Cfg.World.MaxBubbles = 3

	updateBubbles(s)

	if n := s.World.Bubbles.Len(); n != 3 {
		t.Errorf("bubbles = %d, expected the cap of 3", n)
	}
}

func TestBubblesRiseAndPop(t *testing.T) {
	s := newBareSession()
	s.Dt = 0.1
	s.World.AddBubble(&world.Bubble{
		Body: world.Body{Pos: r3.Vec{Y: -20}, Scale: 0.2},
		Vel:  r3.Vec{Y: 1},
	})
	s.Cfg.World.BubbleInterval = 1000

	updateBubbles(s)
	b := s.World.Bubbles.All()[0]
	if math.Abs(b.Pos.Y-(-14)) > 1e-9 {
		t.Errorf("y = %v, expected -14 after 6 frames of rise", b.Pos.Y)
	}

	for range 10 {
		updateBubbles(s)
	}
	if s.World.Bubbles.Len() != 0 {
		t.Error("bubble should pop above the ceiling")
	}
}

func TestParticleDecay(t *testing.T) {
	s := newBareSession()
	s.Dt = 0.1
	s.World.AddParticle(&world.Particle{
		Body:  world.Body{Scale: 1},
		Vel:   r3.Vec{X: 0.1},
		Life:  1,
		Decay: 2,
	})

	updateParticles(s)
	pt := s.World.Particles.All()[0]
	if math.Abs(pt.Life-0.8) > 1e-12 {
		t.Errorf("life = %v, expected 0.8", pt.Life)
	}
	if want := math.Pow(0.98, 6); math.Abs(pt.Scale-want) > 1e-12 {
		t.Errorf("scale = %v, expected %v", pt.Scale, want)
	}
	if math.Abs(pt.Pos.X-0.6) > 1e-12 {
		t.Errorf("x = %v, expected 0.6", pt.Pos.X)
	}

	for range 5 {
		updateParticles(s)
	}
	if s.World.Particles.Len() != 0 {
		t.Error("expired particle should be removed")
	}
}
