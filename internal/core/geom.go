// Package core provides fundamental types and utilities for the reef runner.
// It contains no Bubble Tea dependency to keep the simulation pure and testable.
package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Rect represents an axis-aligned rectangle in screen cells.
// Used for HUD panels and screen-space layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// BoxAround returns the axis-aligned box centered on c with the given half extents.
func BoxAround(c, half r3.Vec) r3.Box {
	return r3.Box{
		Min: r3.Sub(c, half),
		Max: r3.Add(c, half),
	}
}

// BoxesOverlap reports whether two axis-aligned boxes intersect.
// Boxes that only touch on a face count as overlapping, matching the
// inclusive test used by the collision engine.
func BoxesOverlap(a, b r3.Box) bool {
	if a.Max.X < b.Min.X || b.Max.X < a.Min.X {
		return false
	}
	if a.Max.Y < b.Min.Y || b.Max.Y < a.Min.Y {
		return false
	}
	if a.Max.Z < b.Min.Z || b.Max.Z < a.Min.Z {
		return false
	}
	return true
}

// LerpVec moves a toward b by fraction t.
func LerpVec(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// Lerp moves a toward b by fraction t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Finite reports whether every component of v is a finite number.
func Finite(v r3.Vec) bool {
	return FiniteF(v.X) && FiniteF(v.Y) && FiniteF(v.Z)
}

// FiniteF reports whether f is neither NaN nor infinite.
func FiniteF(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
