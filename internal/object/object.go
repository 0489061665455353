// Package object defines the simulated entities and their single-step kinematics.
package object

import "github.com/tomz197/textasteroids/internal/physics"

// Point is an alias for the physics package's grid coordinate.
type Point = physics.Point

// Screen represents the play area dimensions in grid cells.
type Screen struct {
	Width  int
	Height int
}

// NewScreen creates a play area of the given size.
func NewScreen(width, height int) Screen {
	return Screen{Width: width, Height: height}
}

// Center returns the middle cell of the play area.
func (s Screen) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (s Screen) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Wrap wraps p around the play area boundaries (toroidal topology).
func (s Screen) Wrap(p Point) Point {
	if s.Width > 0 {
		p.X %= s.Width
		if p.X < 0 {
			p.X += s.Width
		}
	}
	if s.Height > 0 {
		p.Y %= s.Height
		if p.Y < 0 {
			p.Y += s.Height
		}
	}
	return p
}

// Destructible is implemented by entities that can be marked for removal.
type Destructible interface {
	// MarkDestroyed marks the entity for removal on the next sweep.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is marked for destruction.
	IsDestroyed() bool
}
