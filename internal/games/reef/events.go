package reef

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/world"
)

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventObstacleHit EventKind = iota
	EventExplosion
	EventCollectiblePicked
	EventComboPopup
	EventPowerupActivated
	EventPowerupExpired
	EventSharkHit
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventObstacleHit:
		return "obstacle_hit"
	case EventExplosion:
		return "explosion"
	case EventCollectiblePicked:
		return "collectible_picked"
	case EventComboPopup:
		return "combo_popup"
	case EventPowerupActivated:
		return "powerup_activated"
	case EventPowerupExpired:
		return "powerup_expired"
	case EventSharkHit:
		return "shark_hit"
	default:
		return "unknown"
	}
}

// Event is emitted by the tick phases for the host and the UI.
type Event struct {
	Kind     EventKind
	Pos      r3.Vec
	EntityID uint64
	Value    int // Points gained or damage dealt
	Combo    int
	Powerup  world.PowerupKind
}
