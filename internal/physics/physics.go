// Package physics provides collision detection and distance utilities.
package physics

import "math"

// CellRadius is the collision radius of single-cell entities (ship, projectiles).
// A circle of radius √2 covers the cell and reaches its diagonal neighbours.
const CellRadius = math.Sqrt2

// Point is an integer grid coordinate. Velocities use the same type.
type Point struct {
	X, Y int
}

// Add returns p translated by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles overlap. Touching circles
// (distance exactly r1+r2) do not.
func CirclesOverlap(c1 Point, r1 float64, c2 Point, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(c1, c2) < minDist*minDist
}
