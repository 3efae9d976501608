// Package telemetry aggregates per-tick run statistics into fixed windows of
// simulated time and writes them as CSV. It is a diagnostics sink only;
// nothing it writes is ever read back into a run.
package telemetry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/reef-runner/internal/world"
)

// Sample is the state observed after one tick.
type Sample struct {
	Tick     uint64
	Dt       float64
	Elapsed  float64
	Speed    float64
	Score    int
	Distance float64
	Combo    int
	Hits     int // Cumulative
	Pickups  int // Cumulative
	Counts   world.Counts
}

// WindowStats holds aggregated statistics for one window.
type WindowStats struct {
	WindowEndTick uint64  `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`
	Ticks         int     `csv:"ticks"`
	MeanFPS       float64 `csv:"mean_fps"`

	// Speed distribution over the window
	SpeedMean float64 `csv:"speed_mean"`
	SpeedMax  float64 `csv:"speed_max"`
	SpeedStd  float64 `csv:"speed_std"`

	// Progression at window end
	Score    int     `csv:"score"`
	Distance float64 `csv:"distance"`
	MaxCombo int     `csv:"max_combo"`

	// Events during the window
	Hits    int `csv:"hits"`
	Pickups int `csv:"pickups"`

	// Registry sizes at window end
	Segments     int `csv:"segments"`
	Obstacles    int `csv:"obstacles"`
	Collectibles int `csv:"collectibles"`
	Powerups     int `csv:"powerups"`
	Creatures    int `csv:"creatures"`
	Particles    int `csv:"particles"`
}

// Collector accumulates samples within windows and produces WindowStats.
type Collector struct {
	windowSec float64

	// Current window tracking
	start    float64
	speeds   []float64
	dts      []float64
	maxCombo int
	hits     int // Cumulative count at window start
	pickups  int
}

// NewCollector creates a collector emitting one row every windowSec
// simulated seconds. Non-positive windows default to one second.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 1
	}
	return &Collector{windowSec: windowSec}
}

// Observe records one tick. When the sample closes a window it returns the
// window's stats and true.
func (c *Collector) Observe(s Sample) (WindowStats, bool) {
	// Paused or clamped-to-zero ticks carry no information
	if s.Dt <= 0 {
		return WindowStats{}, false
	}
	c.speeds = append(c.speeds, s.Speed)
	c.dts = append(c.dts, s.Dt)
	c.maxCombo = max(c.maxCombo, s.Combo)

	if s.Elapsed-c.start < c.windowSec {
		return WindowStats{}, false
	}
	stats := c.flush(s)
	c.start = s.Elapsed
	return stats, true
}

// Flush closes the current window early, for example at the end of a run.
// It returns false when the window holds no samples.
func (c *Collector) Flush(last Sample) (WindowStats, bool) {
	if len(c.speeds) == 0 {
		return WindowStats{}, false
	}
	stats := c.flush(last)
	c.start = last.Elapsed
	return stats, true
}

func (c *Collector) flush(s Sample) WindowStats {
	mean, std := stat.MeanStdDev(c.speeds, nil)
	if len(c.speeds) < 2 {
		std = 0
	}
	stats := WindowStats{
		WindowEndTick: s.Tick,
		SimTimeSec:    s.Elapsed,
		Ticks:         len(c.speeds),
		MeanFPS:       float64(len(c.dts)) / floats.Sum(c.dts),
		SpeedMean:     mean,
		SpeedMax:      floats.Max(c.speeds),
		SpeedStd:      std,
		Score:         s.Score,
		Distance:      math.Round(s.Distance*100) / 100,
		MaxCombo:      c.maxCombo,
		Hits:          s.Hits - c.hits,
		Pickups:       s.Pickups - c.pickups,
		Segments:      s.Counts.Segments,
		Obstacles:     s.Counts.Obstacles,
		Collectibles:  s.Counts.Collectibles,
		Powerups:      s.Counts.Powerups,
		Creatures:     s.Counts.Creatures,
		Particles:     s.Counts.Particles,
	}

	c.speeds = c.speeds[:0]
	c.dts = c.dts[:0]
	c.maxCombo = 0
	c.hits = s.Hits
	c.pickups = s.Pickups
	return stats
}

// Reset starts over for a new run.
func (c *Collector) Reset() {
	c.start = 0
	c.speeds = c.speeds[:0]
	c.dts = c.dts[:0]
	c.maxCombo = 0
	c.hits = 0
	c.pickups = 0
}
