package object

import (
	"math"

	"github.com/tomz197/textasteroids/internal/physics"
)

// ProjectileSpeed is the default projectile speed in cells per tick.
const ProjectileSpeed = 2.0

// ProjectileRadius is the collision radius of a projectile.
const ProjectileRadius = physics.CellRadius

// Projectile is a shot fired by the ship.
type Projectile struct {
	Position  Point
	Velocity  Point
	destroyed bool
}

// NewProjectile creates a projectile at p traveling in direction angle.
// Velocity components are truncated toward zero onto the grid.
func NewProjectile(p Point, angle, speed float64) *Projectile {
	return &Projectile{
		Position: p,
		Velocity: Point{
			X: int(speed * math.Cos(angle)),
			Y: int(speed * math.Sin(angle)),
		},
	}
}

// Step moves the projectile by its velocity. Projectiles never wrap.
func (p *Projectile) Step() {
	p.Position = p.Position.Add(p.Velocity)
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}

// GetPosition returns the projectile's cell.
func (p *Projectile) GetPosition() Point {
	return p.Position
}
